// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"msgboard/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(userHandler *handler.UserHandler, messageHandler *handler.MessageHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{userID}", userHandler.GetByID)
		r.Put("/{userID}", userHandler.Replace)
		r.Patch("/{userID}", userHandler.Update)
		r.Delete("/{userID}", userHandler.Delete)
	})

	r.Route("/messages", func(r chi.Router) {
		r.Get("/", messageHandler.List)
		r.Post("/", messageHandler.Create)
		r.Patch("/{messageID}", messageHandler.Update)
		r.Delete("/{messageID}", messageHandler.Delete)
	})

	return r
}
