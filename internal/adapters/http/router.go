// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard/taskboard/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	taskHandler *handlers.TaskHandler,
	taskListHandler *handlers.TaskListHandler,
	taskGroupHandler *handlers.TaskGroupHandler,
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
		// Task CRUD and completion transitions.
		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Patch("/tasks/{id}", taskHandler.UpdateTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)
		r.Post("/tasks/{id}/complete", taskHandler.CompleteTask)
		r.Post("/tasks/{id}/uncomplete", taskHandler.UncompleteTask)

		// Task-list CRUD, group moves, and bulk reorder. The reorder route is
		// registered before {id} routes for readability; chi matches static
		// segments ahead of wildcards either way.
		r.Get("/task-lists", taskListHandler.ListTaskLists)
		r.Post("/task-lists", taskListHandler.CreateTaskList)
		r.Patch("/task-lists/reorder", taskListHandler.ReorderTaskLists)
		r.Get("/task-lists/{id}", taskListHandler.GetTaskList)
		r.Patch("/task-lists/{id}", taskListHandler.UpdateTaskList)
		r.Delete("/task-lists/{id}", taskListHandler.DeleteTaskList)
		r.Patch("/task-lists/{id}/move", taskListHandler.MoveTaskList)

		// Task-group CRUD and bulk reorder.
		r.Get("/task-groups", taskGroupHandler.ListTaskGroups)
		r.Post("/task-groups", taskGroupHandler.CreateTaskGroup)
		r.Patch("/task-groups/reorder", taskGroupHandler.ReorderTaskGroups)
		r.Get("/task-groups/{id}", taskGroupHandler.GetTaskGroup)
		r.Patch("/task-groups/{id}", taskGroupHandler.UpdateTaskGroup)
		r.Delete("/task-groups/{id}", taskGroupHandler.DeleteTaskGroup)
	})

	return r
}
