package comment

import "github.com/frahmantamala/task-management/internal"

// CreateCommentDTO is the request payload for posting a comment.
type CreateCommentDTO struct {
	Content string `json:"content"`
}

func (dto CreateCommentDTO) Validate() error {
	if dto.Content == "" {
		return internal.NewValidationError("content must not be empty", internal.ErrCodeEmptyContent)
	}
	return nil
}
