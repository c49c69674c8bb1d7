// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planmate/planmate/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
	auditHandler *handlers.AuditHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Accounts and sessions.
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.Me)

		// Project CRUD.
		r.Get("/projects", projectHandler.ListProjects)
		r.Post("/projects", projectHandler.CreateProject)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Patch("/projects/{id}", projectHandler.UpdateProject)
		r.Delete("/projects/{id}", projectHandler.DeleteProject)

		// Nested workflow-state operations.
		r.Get("/projects/{projectId}/states", projectHandler.ListProjectStates)
		r.Post("/projects/{projectId}/states", projectHandler.AddProjectState)
		r.Patch("/projects/{projectId}/states/{stateId}", projectHandler.RenameProjectState)
		r.Delete("/projects/{projectId}/states/{stateId}", projectHandler.RemoveProjectState)

		// Flat task CRUD.
		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Patch("/tasks/{id}", taskHandler.UpdateTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)

		// Audit trail (read-only).
		r.Get("/audit/{entityType}/{entityId}", auditHandler.GetEntityLogs)
	})

	return r
}
