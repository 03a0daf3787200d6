package todo

import (
	"fmt"
	"time"

	"github.com/frahmantamala/task-management/internal"
)

// CreateTodoDTO is the request payload for creating a task.
type CreateTodoDTO struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	AssignedTo  *int64     `json:"assigned_to,omitempty"`
}

// Validate checks required fields and normalizes the priority default.
func (dto *CreateTodoDTO) Validate() error {
	if dto.Title == "" {
		return internal.NewValidationError("title must not be empty", internal.ErrCodeEmptyTitle)
	}
	if dto.Priority == "" {
		dto.Priority = PriorityMedium
	}
	if !ValidPriority(dto.Priority) {
		return internal.NewValidationError(
			fmt.Sprintf("priority must be one of %s, %s, %s", PriorityLow, PriorityMedium, PriorityHigh),
			internal.ErrCodeInvalidPriority)
	}
	if dto.AssignedTo != nil && *dto.AssignedTo <= 0 {
		return internal.NewValidationError("assigned_to must be a valid user id", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateStatusDTO is the request payload for a status change. The status is
// validated strictly against the canonical set.
type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateStatusDTO) Validate() error {
	if dto.Status == "" {
		return internal.NewValidationError("status is required", internal.ErrCodeInvalidStatus)
	}
	if !ValidStatus(dto.Status) {
		return internal.NewValidationError(
			fmt.Sprintf("status must be one of %s, %s, %s", StatusPending, StatusInProgress, StatusCompleted),
			internal.ErrCodeInvalidStatus)
	}
	return nil
}
