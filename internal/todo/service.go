package todo

import (
	"log/slog"

	"github.com/frahmantamala/task-management/internal"
)

// Repository defines the data access methods for tasks. CreateWithAssignment
// and DeleteWithAssignments must be atomic: either every statement commits or
// none does.
type Repository interface {
	ListForCaller(c Caller) ([]*Todo, error)
	GetWithAssignee(id int64) (*Todo, error)
	Exists(id int64) (bool, error)
	GetAssignment(todoID int64) (*Assignment, error)
	CreateWithAssignment(t *Todo, assignedBy, assignedTo *int64) error
	UpdateStatus(id int64, status string) error
	DeleteWithAssignments(id int64) error
}

// Service enforces the task authorization policy around the repository.
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

// List returns the tasks visible to the caller, newest first, with the
// assignee name resolved.
func (s *Service) List(c Caller) ([]*Todo, error) {
	todos, err := s.repo.ListForCaller(c)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "user_id", c.ID, "role", c.Role)
		return nil, internal.NewInternalError("failed to list tasks", err)
	}
	return todos, nil
}

// Create validates the payload, checks assignment rights and persists the
// task together with its assignment in one transaction.
func (s *Service) Create(c Caller, dto CreateTodoDTO) (*Todo, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("task validation failed", "error", err, "user_id", c.ID)
		return nil, err
	}

	if dto.AssignedTo != nil && !CanAssign(c) {
		s.logger.Warn("task assignment denied", "user_id", c.ID, "role", c.Role, "assigned_to", *dto.AssignedTo)
		return nil, internal.ErrCannotAssignTask
	}

	t := &Todo{
		Title:       dto.Title,
		Description: dto.Description,
		DueDate:     dto.DueDate,
		Priority:    dto.Priority,
		Status:      StatusPending,
	}

	var assignedBy *int64
	if dto.AssignedTo != nil {
		assignedBy = &c.ID
	}

	if err := s.repo.CreateWithAssignment(t, assignedBy, dto.AssignedTo); err != nil {
		s.logger.Error("failed to create task", "error", err, "user_id", c.ID)
		return nil, internal.NewInternalError("failed to create task", err)
	}

	created, err := s.repo.GetWithAssignee(t.ID)
	if err != nil {
		s.logger.Error("failed to load created task", "error", err, "todo_id", t.ID)
		return nil, internal.NewInternalError("failed to load created task", err)
	}

	s.logger.Info("task created",
		"todo_id", created.ID,
		"user_id", c.ID,
		"assigned", dto.AssignedTo != nil)

	return created, nil
}

// UpdateStatus changes a task's status when the policy allows the caller to.
func (s *Service) UpdateStatus(c Caller, todoID int64, dto UpdateStatusDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	exists, err := s.repo.Exists(todoID)
	if err != nil {
		s.logger.Error("failed to check task", "error", err, "todo_id", todoID)
		return internal.NewInternalError("failed to load task", err)
	}
	if !exists {
		return internal.ErrTodoNotFound
	}

	assignment, err := s.repo.GetAssignment(todoID)
	if err != nil {
		s.logger.Error("failed to load assignment", "error", err, "todo_id", todoID)
		return internal.NewInternalError("failed to load assignment", err)
	}

	switch CanUpdateStatus(c, RelationshipOf(c, assignment)) {
	case DenyNotFound:
		return internal.ErrTodoNotFound
	case DenyForbidden:
		s.logger.Warn("status update denied", "todo_id", todoID, "user_id", c.ID, "role", c.Role)
		return internal.ErrCannotUpdateTask
	}

	if err := s.repo.UpdateStatus(todoID, dto.Status); err != nil {
		s.logger.Error("failed to update task status", "error", err, "todo_id", todoID)
		return internal.NewInternalError("failed to update task status", err)
	}

	s.logger.Info("task status updated", "todo_id", todoID, "user_id", c.ID, "status", dto.Status)
	return nil
}

// Delete removes a task and its assignment rows atomically when the policy
// allows the caller to.
func (s *Service) Delete(c Caller, todoID int64) error {
	exists, err := s.repo.Exists(todoID)
	if err != nil {
		s.logger.Error("failed to check task", "error", err, "todo_id", todoID)
		return internal.NewInternalError("failed to load task", err)
	}
	if !exists {
		return internal.ErrTodoNotFound
	}

	assignment, err := s.repo.GetAssignment(todoID)
	if err != nil {
		s.logger.Error("failed to load assignment", "error", err, "todo_id", todoID)
		return internal.NewInternalError("failed to load assignment", err)
	}

	switch CanDelete(c, RelationshipOf(c, assignment)) {
	case DenyNotFound:
		return internal.ErrTodoNotFound
	case DenyForbidden:
		s.logger.Warn("task delete denied", "todo_id", todoID, "user_id", c.ID, "role", c.Role)
		return internal.ErrCannotDeleteTask
	}

	if err := s.repo.DeleteWithAssignments(todoID); err != nil {
		s.logger.Error("failed to delete task", "error", err, "todo_id", todoID)
		return internal.NewInternalError("failed to delete task", err)
	}

	s.logger.Info("task deleted", "todo_id", todoID, "user_id", c.ID)
	return nil
}
