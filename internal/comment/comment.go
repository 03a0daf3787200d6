package comment

import (
	"time"

	commentDatamodel "github.com/frahmantamala/task-management/internal/core/datamodel/comment"
)

// Comment is a single entry in a task's append-only discussion log.
type Comment struct {
	ID        int64     `json:"id"`
	TodoID    int64     `json:"todo_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDataModel(rec *commentDatamodel.CommentWithAuthor) *Comment {
	return &Comment{
		ID:        rec.ID,
		TodoID:    rec.TodoID,
		UserID:    rec.UserID,
		UserName:  rec.UserName,
		Content:   rec.Content,
		CreatedAt: rec.CreatedAt,
	}
}

func FromDataModelSlice(recs []*commentDatamodel.CommentWithAuthor) []*Comment {
	result := make([]*Comment, len(recs))
	for i, rec := range recs {
		result[i] = FromDataModel(rec)
	}
	return result
}
