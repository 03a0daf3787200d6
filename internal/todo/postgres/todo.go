package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/task-management/internal/auth"
	todoDatamodel "github.com/frahmantamala/task-management/internal/core/datamodel/todo"
	"github.com/frahmantamala/task-management/internal/todo"
)

const listSelect = "t.id, t.title, t.description, t.due_date, t.priority, t.status, t.created_at, " +
	"ta.assigned_by, ta.assigned_to, u.name AS assigned_to_name"

// TodoRepository implements the todo.Repository interface using GORM
type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) todo.Repository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) joined() *gorm.DB {
	return r.db.Table("todos t").
		Select(listSelect).
		Joins("LEFT JOIN task_assignments ta ON t.id = ta.todo_id").
		Joins("LEFT JOIN users u ON ta.assigned_to = u.id")
}

// ListForCaller shapes the query by role: admin sees everything, a manager
// sees tasks it assigned or was assigned, an employee only its own work.
// Unassigned tasks have no assignment row to match, so the WHERE clauses
// hide them from non-admins.
func (r *TodoRepository) ListForCaller(c todo.Caller) ([]*todo.Todo, error) {
	query := r.joined().Order("t.created_at DESC")

	if !c.IsAdmin() {
		if c.Role == auth.RoleManager {
			query = query.Where("ta.assigned_by = ? OR ta.assigned_to = ?", c.ID, c.ID)
		} else {
			query = query.Where("ta.assigned_to = ?", c.ID)
		}
	}

	var recs []*todoDatamodel.TodoWithAssignee
	if err := query.Scan(&recs).Error; err != nil {
		return nil, err
	}
	return todo.FromDataModelSlice(recs), nil
}

// GetWithAssignee loads a single task with its assignment resolved.
func (r *TodoRepository) GetWithAssignee(id int64) (*todo.Todo, error) {
	var rec todoDatamodel.TodoWithAssignee
	result := r.joined().Where("t.id = ?", id).Limit(1).Scan(&rec)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return todo.FromDataModel(&rec), nil
}

func (r *TodoRepository) Exists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&todoDatamodel.Todo{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAssignment returns the task's assignment, or nil when it has none.
func (r *TodoRepository) GetAssignment(todoID int64) (*todo.Assignment, error) {
	var rec todoDatamodel.TaskAssignment
	err := r.db.Where("todo_id = ?", todoID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return todo.AssignmentFromDataModel(&rec), nil
}

// CreateWithAssignment inserts the task and, when an assignee is given, its
// assignment row in one transaction. A failure on either insert rolls back
// both, so no task is ever visible half-created.
func (r *TodoRepository) CreateWithAssignment(t *todo.Todo, assignedBy, assignedTo *int64) error {
	rec := &todoDatamodel.Todo{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}

		if assignedTo != nil {
			if assignedBy == nil {
				return errors.New("assignment requires an assigner")
			}
			assignment := &todoDatamodel.TaskAssignment{
				TodoID:     rec.ID,
				AssignedBy: *assignedBy,
				AssignedTo: *assignedTo,
			}
			if err := tx.Create(assignment).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	t.ID = rec.ID
	t.CreatedAt = rec.CreatedAt
	return nil
}

func (r *TodoRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&todoDatamodel.Todo{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// DeleteWithAssignments removes assignment rows first, then the task, in one
// transaction.
func (r *TodoRepository) DeleteWithAssignments(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", id).Delete(&todoDatamodel.TaskAssignment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&todoDatamodel.Todo{}).Error
	})
}
