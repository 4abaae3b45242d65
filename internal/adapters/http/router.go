// Package http provides the ops HTTP adapter: routing and server lifecycle
// for the liveness, readiness and status endpoints.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/clipdate/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clipdate/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with the ops routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	healthHandler *handlers.HealthHandler,
	statusHandler *handlers.StatusHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusNotFound, "no such endpoint"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusMethodNotAllowed, ""))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	r.Get("/status", statusHandler.Status)

	return r
}
