package todo

import (
	"time"

	todoDatamodel "github.com/frahmantamala/task-management/internal/core/datamodel/todo"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is the domain task, including the resolved assignment fields when the
// row was produced by the list/detail joins.
type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`

	AssignedBy     *int64  `json:"assigned_by,omitempty"`
	AssignedTo     *int64  `json:"assigned_to,omitempty"`
	AssignedToName *string `json:"assigned_to_name,omitempty"`
}

// Assignment binds a task to its assigner and assignee.
type Assignment struct {
	ID         int64     `json:"id"`
	TodoID     int64     `json:"todo_id"`
	AssignedBy int64     `json:"assigned_by"`
	AssignedTo int64     `json:"assigned_to"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromDataModel(rec *todoDatamodel.TodoWithAssignee) *Todo {
	return &Todo{
		ID:             rec.ID,
		Title:          rec.Title,
		Description:    rec.Description,
		DueDate:        rec.DueDate,
		Priority:       rec.Priority,
		Status:         rec.Status,
		CreatedAt:      rec.CreatedAt,
		AssignedBy:     rec.AssignedBy,
		AssignedTo:     rec.AssignedTo,
		AssignedToName: rec.AssignedToName,
	}
}

func FromDataModelSlice(recs []*todoDatamodel.TodoWithAssignee) []*Todo {
	result := make([]*Todo, len(recs))
	for i, rec := range recs {
		result[i] = FromDataModel(rec)
	}
	return result
}

func AssignmentFromDataModel(rec *todoDatamodel.TaskAssignment) *Assignment {
	return &Assignment{
		ID:         rec.ID,
		TodoID:     rec.TodoID,
		AssignedBy: rec.AssignedBy,
		AssignedTo: rec.AssignedTo,
		CreatedAt:  rec.CreatedAt,
	}
}
