package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/task-management/internal/auth"
	"github.com/frahmantamala/task-management/internal/comment"
	"github.com/frahmantamala/task-management/internal/todo"
	"github.com/frahmantamala/task-management/internal/transport/middleware"
	"github.com/frahmantamala/task-management/internal/transport/swagger"
	"github.com/frahmantamala/task-management/internal/user"
)

// RegisterAllRoutes wires every endpoint onto the router. Routing stays a
// thin adapter: every policy decision lives in the services behind it.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	todoHandler *todo.Handler,
	commentHandler *comment.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/register", authHandler.Register)

			sr.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)
				pr.Get("/me", authHandler.Me)
				pr.Post("/logout", authHandler.Logout)
			})
		})

		// Everything below requires a valid bearer token.
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/todos", func(tr chi.Router) {
				tr.Get("/", todoHandler.ListTodos)
				tr.Post("/", todoHandler.CreateTodo)
				tr.Put("/{id}", todoHandler.UpdateTodoStatus)
				tr.Delete("/{id}", todoHandler.DeleteTodo)

				tr.Get("/{id}/comments", commentHandler.ListComments)
				tr.Post("/{id}/comments", commentHandler.CreateComment)
			})

			pr.Group(func(mr chi.Router) {
				mr.Use(authHandler.RequireAnyRole(auth.RoleAdmin, auth.RoleManager))
				mr.Get("/users/employees", userHandler.GetEmployees)
			})
		})
	})
}
