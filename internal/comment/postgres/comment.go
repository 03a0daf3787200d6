package postgres

import (
	"gorm.io/gorm"

	"github.com/frahmantamala/task-management/internal/comment"
	commentDatamodel "github.com/frahmantamala/task-management/internal/core/datamodel/comment"
)

const authorSelect = "c.id, c.todo_id, c.user_id, c.content, c.created_at, u.name AS user_name"

// CommentRepository implements the comment.Repository interface using GORM
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) joined() *gorm.DB {
	return r.db.Table("comments c").
		Select(authorSelect).
		Joins("JOIN users u ON c.user_id = u.id")
}

func (r *CommentRepository) ListByTodo(todoID int64) ([]*comment.Comment, error) {
	var recs []*commentDatamodel.CommentWithAuthor
	err := r.joined().
		Where("c.todo_id = ?", todoID).
		Order("c.created_at DESC").
		Scan(&recs).Error
	if err != nil {
		return nil, err
	}
	return comment.FromDataModelSlice(recs), nil
}

func (r *CommentRepository) Create(todoID, userID int64, content string) (*comment.Comment, error) {
	rec := &commentDatamodel.Comment{
		TodoID:  todoID,
		UserID:  userID,
		Content: content,
	}
	if err := r.db.Create(rec).Error; err != nil {
		return nil, err
	}

	var row commentDatamodel.CommentWithAuthor
	if err := r.joined().Where("c.id = ?", rec.ID).Scan(&row).Error; err != nil {
		return nil, err
	}
	return comment.FromDataModel(&row), nil
}
