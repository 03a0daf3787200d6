package todo_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/task-management/internal"
	"github.com/frahmantamala/task-management/internal/auth"
	"github.com/frahmantamala/task-management/internal/todo"
)

// Mock service for handler testing
type mockTodoService struct {
	listResult   []*todo.Todo
	listError    error
	createResult *todo.Todo
	createError  error
	updateError  error
	deleteError  error

	lastCaller todo.Caller
	lastTodoID int64
	lastStatus string
}

func (m *mockTodoService) List(c todo.Caller) ([]*todo.Todo, error) {
	m.lastCaller = c
	return m.listResult, m.listError
}

func (m *mockTodoService) Create(c todo.Caller, dto todo.CreateTodoDTO) (*todo.Todo, error) {
	m.lastCaller = c
	if m.createError != nil {
		return nil, m.createError
	}
	return m.createResult, nil
}

func (m *mockTodoService) UpdateStatus(c todo.Caller, todoID int64, dto todo.UpdateStatusDTO) error {
	m.lastCaller = c
	m.lastTodoID = todoID
	m.lastStatus = dto.Status
	return m.updateError
}

func (m *mockTodoService) Delete(c todo.Caller, todoID int64) error {
	m.lastCaller = c
	m.lastTodoID = todoID
	return m.deleteError
}

var _ = Describe("Todo Handler", func() {
	var (
		mockService *mockTodoService
		handler     *todo.Handler
		router      *chi.Mux

		adminUser = &auth.User{ID: 1, Name: "Admin", Email: "admin@example.com", Role: auth.RoleAdmin}
	)

	BeforeEach(func() {
		mockService = &mockTodoService{}
		handler = todo.NewHandler(mockService)

		router = chi.NewRouter()
		router.Get("/todos", handler.ListTodos)
		router.Post("/todos", handler.CreateTodo)
		router.Put("/todos/{id}", handler.UpdateTodoStatus)
		router.Delete("/todos/{id}", handler.DeleteTodo)
	})

	doRequest := func(method, target string, body []byte, u *auth.User) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, bytes.NewReader(body))
		if u != nil {
			req = req.WithContext(auth.ContextWithUser(req.Context(), u))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("GET /todos", func() {
		It("should return the caller's tasks as JSON", func() {
			mockService.listResult = []*todo.Todo{
				{ID: 1, Title: "First", Status: todo.StatusPending, Priority: todo.PriorityMedium},
			}

			w := doRequest(http.MethodGet, "/todos", nil, adminUser)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var result []*todo.Todo
			Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Title).To(Equal("First"))
			Expect(mockService.lastCaller.ID).To(Equal(adminUser.ID))
			Expect(mockService.lastCaller.Role).To(Equal(auth.RoleAdmin))
		})

		It("should return 401 without an authenticated user", func() {
			w := doRequest(http.MethodGet, "/todos", nil, nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("POST /todos", func() {
		It("should create a task and return 201", func() {
			mockService.createResult = &todo.Todo{ID: 5, Title: "New task", Status: todo.StatusPending}

			body, _ := json.Marshal(map[string]any{"title": "New task"})
			w := doRequest(http.MethodPost, "/todos", body, adminUser)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var result todo.Todo
			Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
			Expect(result.ID).To(Equal(int64(5)))
		})

		It("should return 400 for a malformed body", func() {
			w := doRequest(http.MethodPost, "/todos", []byte("{not json"), adminUser)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map a forbidden assignment to 403", func() {
			mockService.createError = internal.ErrCannotAssignTask

			body, _ := json.Marshal(map[string]any{"title": "Task", "assigned_to": 9})
			w := doRequest(http.MethodPost, "/todos", body, adminUser)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("should map a validation error to 400", func() {
			mockService.createError = internal.NewValidationError("title must not be empty", internal.ErrCodeEmptyTitle)

			body, _ := json.Marshal(map[string]any{"title": ""})
			w := doRequest(http.MethodPost, "/todos", body, adminUser)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /todos/{id}", func() {
		It("should pass the parsed id and status to the service", func() {
			body, _ := json.Marshal(map[string]any{"status": todo.StatusCompleted})
			w := doRequest(http.MethodPut, "/todos/42", body, adminUser)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(mockService.lastTodoID).To(Equal(int64(42)))
			Expect(mockService.lastStatus).To(Equal(todo.StatusCompleted))

			var ack map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&ack)).To(Succeed())
			Expect(ack["message"]).To(Equal("status updated"))
		})

		It("should return 400 for a non-numeric id", func() {
			body, _ := json.Marshal(map[string]any{"status": todo.StatusCompleted})
			w := doRequest(http.MethodPut, "/todos/abc", body, adminUser)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map not found to 404", func() {
			mockService.updateError = internal.ErrTodoNotFound

			body, _ := json.Marshal(map[string]any{"status": todo.StatusCompleted})
			w := doRequest(http.MethodPut, "/todos/999", body, adminUser)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should map a policy denial to 403", func() {
			mockService.updateError = internal.ErrCannotUpdateTask

			body, _ := json.Marshal(map[string]any{"status": todo.StatusCompleted})
			w := doRequest(http.MethodPut, "/todos/42", body, adminUser)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("DELETE /todos/{id}", func() {
		It("should delete and acknowledge", func() {
			w := doRequest(http.MethodDelete, "/todos/42", nil, adminUser)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(mockService.lastTodoID).To(Equal(int64(42)))

			var ack map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&ack)).To(Succeed())
			Expect(ack["message"]).To(Equal("task deleted"))
		})

		It("should map a policy denial to 403", func() {
			mockService.deleteError = internal.ErrCannotDeleteTask
			w := doRequest(http.MethodDelete, "/todos/42", nil, adminUser)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("should return 401 without an authenticated user", func() {
			w := doRequest(http.MethodDelete, "/todos/42", nil, nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
