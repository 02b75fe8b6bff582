// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown paths and
// unsupported methods both answer 404 "Route not found".
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	// Health endpoints (outside /api prefix).
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/todos", func(r chi.Router) {
		r.Post("/", todoHandler.CreateTodo)
		r.Get("/", todoHandler.ListTodos)

		r.Route("/{"+middleware.IDParam+"}", func(r chi.Router) {
			r.Use(middleware.ObjectID(middleware.IDParam))

			r.Get("/", todoHandler.GetTodo)
			r.Patch("/", todoHandler.UpdateTodo)
			r.Delete("/", todoHandler.DeleteTodo)
			r.Patch("/toggle", todoHandler.ToggleTodo)
		})
	})

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteErrorResponse(w, r, dto.NewStatusError(http.StatusNotFound, dto.MsgRouteNotFound))
}
