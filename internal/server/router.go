package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/scout/api/internal/handler"
	"github.com/scout/api/internal/ratelimit"
)

// NewRouter creates the HTTP router with all routes registered. A nil limiter
// disables rate limiting.
func NewRouter(h *handler.Handler, limiter *ratelimit.Limiter, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         86400,
		}))
	}

	r.Use(ratelimit.Middleware(limiter))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/events", h.GetEvents)

		r.Route("/saved", func(r chi.Router) {
			r.Get("/", h.ListSaved)
			r.Post("/", h.SaveEvent)
			r.Delete("/", h.ClearSaved)
			r.Get("/{id}", h.CheckSaved)
			r.Delete("/{id}", h.RemoveSaved)
		})
	})

	return r
}
