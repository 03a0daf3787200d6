package user

import (
	"log/slog"

	"github.com/frahmantamala/task-management/internal/auth"
)

type Repository interface {
	GetByID(userID int64) (*User, error)
	ListByRole(role string) ([]*User, error)
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

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		s.logger.Error("failed to get user by id", "error", err, "user_id", userID)
		return nil, err
	}
	return u, nil
}

// ListEmployees returns every employee-role user, for assignment pickers.
func (s *Service) ListEmployees() ([]*User, error) {
	employees, err := s.repo.ListByRole(auth.RoleEmployee)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}
