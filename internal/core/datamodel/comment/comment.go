package comment

import "time"

// Comment is the persistence model for the comments table.
type Comment struct {
	ID        int64     `gorm:"primaryKey"`
	TodoID    int64     `gorm:"column:todo_id;not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentWithAuthor carries the comment row joined with the author's name.
type CommentWithAuthor struct {
	Comment
	UserName string `gorm:"column:user_name"`
}
