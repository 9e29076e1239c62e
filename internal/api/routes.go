package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/holidays                      current year
//	GET /api/v1/holidays/today
//	GET /api/v1/holidays/date/{date}          YYYY-MM-DD
//	GET /api/v1/holidays/{year}               ?order=table|date
//	GET /api/v1/easter/{year}
//	GET /api/v1/business-days/next/{date}
func SetupRoutes(handlers *Handlers, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		RecoveryMiddleware(log),
		LoggingMiddleware(log),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", handlers.ListCurrentYear)
			r.Get("/today", handlers.GetToday)
			r.Get("/date/{date}", handlers.GetDate)
			r.Get("/{year}", handlers.ListYear)
		})
		r.Get("/easter/{year}", handlers.GetEaster)
		r.Get("/business-days/next/{date}", handlers.GetNextBusinessDay)
	})

	return r
}
