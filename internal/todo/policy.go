package todo

import "github.com/frahmantamala/task-management/internal/auth"

// The authorization contract for tasks lives in this file and nowhere else.
// Every operation consults the same table:
//
//	operation     admin   manager              employee
//	list          all     assigner|assignee    assignee
//	assign        yes     yes                  no
//	update status yes     assignee only        assignee only
//	delete        yes     assigner only        assigner only
//
// Tasks without an assignment are visible and mutable only by admin; for
// everyone else they do not exist.

// Caller is the authenticated identity an operation runs as.
type Caller struct {
	ID   int64
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == auth.RoleAdmin
}

// Relationship captures how a caller relates to a task's assignment.
type Relationship struct {
	HasAssignment bool
	IsAssigner    bool
	IsAssignee    bool
}

// RelationshipOf derives the caller's relationship from the task's
// assignment, which may be nil.
func RelationshipOf(c Caller, a *Assignment) Relationship {
	if a == nil {
		return Relationship{}
	}
	return Relationship{
		HasAssignment: true,
		IsAssigner:    a.AssignedBy == c.ID,
		IsAssignee:    a.AssignedTo == c.ID,
	}
}

// Decision is the outcome of a mutation policy check. Denials distinguish
// "pretend it does not exist" from "exists but not yours".
type Decision int

const (
	Allow Decision = iota
	DenyNotFound
	DenyForbidden
)

// CanAssign reports whether the caller may hand a task to someone else.
func CanAssign(c Caller) bool {
	return c.Role == auth.RoleAdmin || c.Role == auth.RoleManager
}

// CanView mirrors the list scoping for a single task.
func CanView(c Caller, rel Relationship) bool {
	if c.IsAdmin() {
		return true
	}
	if !rel.HasAssignment {
		return false
	}
	switch c.Role {
	case auth.RoleManager:
		return rel.IsAssigner || rel.IsAssignee
	case auth.RoleEmployee:
		return rel.IsAssignee
	}
	return false
}

// CanUpdateStatus gates status changes: admin always, otherwise the assignee.
// An unassigned task is NotFound to anyone but admin.
func CanUpdateStatus(c Caller, rel Relationship) Decision {
	if c.IsAdmin() {
		return Allow
	}
	if !rel.HasAssignment {
		return DenyNotFound
	}
	if rel.IsAssignee {
		return Allow
	}
	return DenyForbidden
}

// CanDelete gates deletion: admin always, otherwise the assigner. Deletion
// authority follows who requested the work, not who performs it.
func CanDelete(c Caller, rel Relationship) Decision {
	if c.IsAdmin() {
		return Allow
	}
	if !rel.HasAssignment {
		return DenyNotFound
	}
	if rel.IsAssigner {
		return Allow
	}
	return DenyForbidden
}
