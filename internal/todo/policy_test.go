package todo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/task-management/internal/auth"
	"github.com/frahmantamala/task-management/internal/todo"
)

var _ = Describe("Policy", func() {
	var (
		admin    = todo.Caller{ID: 1, Role: auth.RoleAdmin}
		manager  = todo.Caller{ID: 7, Role: auth.RoleManager}
		employee = todo.Caller{ID: 42, Role: auth.RoleEmployee}
	)

	assignment := func(by, to int64) *todo.Assignment {
		return &todo.Assignment{ID: 1, TodoID: 10, AssignedBy: by, AssignedTo: to}
	}

	Describe("RelationshipOf", func() {
		It("should report no assignment for nil", func() {
			rel := todo.RelationshipOf(manager, nil)
			Expect(rel.HasAssignment).To(BeFalse())
			Expect(rel.IsAssigner).To(BeFalse())
			Expect(rel.IsAssignee).To(BeFalse())
		})

		It("should mark the assigner", func() {
			rel := todo.RelationshipOf(manager, assignment(manager.ID, employee.ID))
			Expect(rel.HasAssignment).To(BeTrue())
			Expect(rel.IsAssigner).To(BeTrue())
			Expect(rel.IsAssignee).To(BeFalse())
		})

		It("should mark the assignee", func() {
			rel := todo.RelationshipOf(employee, assignment(manager.ID, employee.ID))
			Expect(rel.IsAssigner).To(BeFalse())
			Expect(rel.IsAssignee).To(BeTrue())
		})

		It("should mark both when a caller assigned work to themselves", func() {
			rel := todo.RelationshipOf(manager, assignment(manager.ID, manager.ID))
			Expect(rel.IsAssigner).To(BeTrue())
			Expect(rel.IsAssignee).To(BeTrue())
		})
	})

	Describe("CanAssign", func() {
		It("should allow admin and manager", func() {
			Expect(todo.CanAssign(admin)).To(BeTrue())
			Expect(todo.CanAssign(manager)).To(BeTrue())
		})

		It("should deny employee", func() {
			Expect(todo.CanAssign(employee)).To(BeFalse())
		})
	})

	Describe("CanView", func() {
		It("should allow admin regardless of assignment", func() {
			Expect(todo.CanView(admin, todo.RelationshipOf(admin, nil))).To(BeTrue())
			Expect(todo.CanView(admin, todo.RelationshipOf(admin, assignment(7, 42)))).To(BeTrue())
		})

		It("should hide unassigned tasks from manager and employee", func() {
			Expect(todo.CanView(manager, todo.RelationshipOf(manager, nil))).To(BeFalse())
			Expect(todo.CanView(employee, todo.RelationshipOf(employee, nil))).To(BeFalse())
		})

		It("should allow a manager to see tasks they assigned or received", func() {
			Expect(todo.CanView(manager, todo.RelationshipOf(manager, assignment(manager.ID, 42)))).To(BeTrue())
			Expect(todo.CanView(manager, todo.RelationshipOf(manager, assignment(99, manager.ID)))).To(BeTrue())
		})

		It("should hide another manager's tasks", func() {
			Expect(todo.CanView(manager, todo.RelationshipOf(manager, assignment(99, 42)))).To(BeFalse())
		})

		It("should allow an employee to see only their own tasks", func() {
			Expect(todo.CanView(employee, todo.RelationshipOf(employee, assignment(7, employee.ID)))).To(BeTrue())
			Expect(todo.CanView(employee, todo.RelationshipOf(employee, assignment(7, 99)))).To(BeFalse())
		})
	})

	Describe("CanUpdateStatus", func() {
		It("should allow admin on any task", func() {
			Expect(todo.CanUpdateStatus(admin, todo.RelationshipOf(admin, nil))).To(Equal(todo.Allow))
			Expect(todo.CanUpdateStatus(admin, todo.RelationshipOf(admin, assignment(7, 42)))).To(Equal(todo.Allow))
		})

		It("should treat unassigned tasks as not found for non-admins", func() {
			Expect(todo.CanUpdateStatus(manager, todo.RelationshipOf(manager, nil))).To(Equal(todo.DenyNotFound))
			Expect(todo.CanUpdateStatus(employee, todo.RelationshipOf(employee, nil))).To(Equal(todo.DenyNotFound))
		})

		It("should allow the assignee", func() {
			Expect(todo.CanUpdateStatus(employee, todo.RelationshipOf(employee, assignment(7, employee.ID)))).To(Equal(todo.Allow))
		})

		It("should forbid the assigner who is not the assignee", func() {
			Expect(todo.CanUpdateStatus(manager, todo.RelationshipOf(manager, assignment(manager.ID, 42)))).To(Equal(todo.DenyForbidden))
		})

		It("should forbid an unrelated employee", func() {
			Expect(todo.CanUpdateStatus(employee, todo.RelationshipOf(employee, assignment(7, 99)))).To(Equal(todo.DenyForbidden))
		})
	})

	Describe("CanDelete", func() {
		It("should allow admin on any task", func() {
			Expect(todo.CanDelete(admin, todo.RelationshipOf(admin, nil))).To(Equal(todo.Allow))
			Expect(todo.CanDelete(admin, todo.RelationshipOf(admin, assignment(7, 42)))).To(Equal(todo.Allow))
		})

		It("should treat unassigned tasks as not found for non-admins", func() {
			Expect(todo.CanDelete(manager, todo.RelationshipOf(manager, nil))).To(Equal(todo.DenyNotFound))
		})

		It("should allow the assigner", func() {
			Expect(todo.CanDelete(manager, todo.RelationshipOf(manager, assignment(manager.ID, 42)))).To(Equal(todo.Allow))
		})

		It("should forbid the assignee who is not the assigner", func() {
			Expect(todo.CanDelete(employee, todo.RelationshipOf(employee, assignment(7, employee.ID)))).To(Equal(todo.DenyForbidden))
		})
	})
})
