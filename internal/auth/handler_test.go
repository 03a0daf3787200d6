package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Auth Handler", func() {
	var (
		handler  *Handler
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator("test-secret-that-is-long-enough-123", 24*time.Hour)
		service = NewService(mockRepo, tokenGen, 0)
		handler = NewHandler(service)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("should return the session for valid credentials", func() {
			body, _ := json.Marshal(LoginDTO{Email: "employee@example.com", Password: "correct_password"})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var session SessionResponse
			gomega.Expect(json.NewDecoder(w.Body).Decode(&session)).To(gomega.Succeed())
			gomega.Expect(session.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(session.User.Email).To(gomega.Equal("employee@example.com"))
		})

		ginkgo.It("should return 401 for a wrong password", func() {
			body, _ := json.Marshal(LoginDTO{Email: "employee@example.com", Password: "nope"})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should return 400 for a missing email", func() {
			body, _ := json.Marshal(LoginDTO{Password: "x"})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should create the account and return 201", func() {
			body, _ := json.Marshal(RegisterDTO{Name: "New", Email: "new@example.com", Password: "secret123"})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))

			var session SessionResponse
			gomega.Expect(json.NewDecoder(w.Body).Decode(&session)).To(gomega.Succeed())
			gomega.Expect(session.User.Role).To(gomega.Equal(RoleEmployee))
		})

		ginkgo.It("should return 409 for a duplicate email", func() {
			body, _ := json.Marshal(RegisterDTO{Name: "Dup", Email: "employee@example.com", Password: "secret123"})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusConflict))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var protected http.Handler

		ginkgo.BeforeEach(func() {
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				u, ok := UserFromContext(r.Context())
				gomega.Expect(ok).To(gomega.BeTrue())
				w.Header().Set("X-User-Role", u.Role)
				w.WriteHeader(http.StatusOK)
			}))
		})

		ginkgo.It("should inject the caller identity from a valid token", func() {
			token, err := tokenGen.GenerateToken(&User{ID: 2, Email: "employee@example.com", Role: RoleEmployee})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(w.Header().Get("X-User-Role")).To(gomega.Equal(RoleEmployee))
		})

		ginkgo.It("should return 401 without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should return 401 for a tampered token", func() {
			token, err := tokenGen.GenerateToken(&User{ID: 2, Email: "employee@example.com", Role: RoleEmployee})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			req.Header.Set("Authorization", "Bearer "+token+"x")
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("RequireAnyRole", func() {
		ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		requestAs := func(role string) *httptest.ResponseRecorder {
			gate := handler.RequireAnyRole(RoleAdmin, RoleManager)(ok)
			req := httptest.NewRequest(http.MethodGet, "/api/users/employees", nil)
			req = req.WithContext(ContextWithUser(req.Context(), &User{ID: 9, Role: role}))
			w := httptest.NewRecorder()
			gate.ServeHTTP(w, req)
			return w
		}

		ginkgo.It("should pass admin and manager through", func() {
			gomega.Expect(requestAs(RoleAdmin).Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(requestAs(RoleManager).Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should return 403 for an employee", func() {
			gomega.Expect(requestAs(RoleEmployee).Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("should return 401 without an authenticated user", func() {
			gate := handler.RequireAnyRole(RoleAdmin)(ok)
			req := httptest.NewRequest(http.MethodGet, "/api/users/employees", nil)
			w := httptest.NewRecorder()
			gate.ServeHTTP(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})
})
