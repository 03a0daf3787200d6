package todo

import "time"

// Todo is the persistence model for the todos table.
type Todo struct {
	ID          int64      `gorm:"primaryKey"`
	Title       string     `gorm:"not null"`
	Description *string    `gorm:"column:description"`
	DueDate     *time.Time `gorm:"column:due_date;type:date"`
	Priority    string     `gorm:"not null;default:medium"`
	Status      string     `gorm:"not null;default:pending"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (Todo) TableName() string {
	return "todos"
}

// TaskAssignment binds a todo to the user who assigned it and the user who
// must perform it. A todo has at most one row here.
type TaskAssignment struct {
	ID         int64     `gorm:"primaryKey"`
	TodoID     int64     `gorm:"column:todo_id;uniqueIndex;not null"`
	AssignedBy int64     `gorm:"column:assigned_by;not null"`
	AssignedTo int64     `gorm:"column:assigned_to;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (TaskAssignment) TableName() string {
	return "task_assignments"
}

// TodoWithAssignee is the read model produced by the list/detail joins:
// the todo row plus its assignment and the resolved assignee name.
type TodoWithAssignee struct {
	ID             int64      `gorm:"column:id"`
	Title          string     `gorm:"column:title"`
	Description    *string    `gorm:"column:description"`
	DueDate        *time.Time `gorm:"column:due_date"`
	Priority       string     `gorm:"column:priority"`
	Status         string     `gorm:"column:status"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	AssignedBy     *int64     `gorm:"column:assigned_by"`
	AssignedTo     *int64     `gorm:"column:assigned_to"`
	AssignedToName *string    `gorm:"column:assigned_to_name"`
}
