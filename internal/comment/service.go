package comment

import (
	"log/slog"

	"github.com/frahmantamala/task-management/internal"
)

type Repository interface {
	ListByTodo(todoID int64) ([]*Comment, error)
	Create(todoID, userID int64, content string) (*Comment, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListByTodo returns a task's comments newest first with author names resolved.
func (s *Service) ListByTodo(todoID int64) ([]*Comment, error) {
	comments, err := s.repo.ListByTodo(todoID)
	if err != nil {
		s.logger.Error("failed to list comments", "error", err, "todo_id", todoID)
		return nil, internal.NewInternalError("failed to list comments", err)
	}
	return comments, nil
}

func (s *Service) Create(todoID, userID int64, dto CreateCommentDTO) (*Comment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.Create(todoID, userID, dto.Content)
	if err != nil {
		s.logger.Error("failed to create comment", "error", err, "todo_id", todoID, "user_id", userID)
		return nil, internal.NewInternalError("failed to create comment", err)
	}

	s.logger.Info("comment created", "comment_id", c.ID, "todo_id", todoID, "user_id", userID)
	return c, nil
}
