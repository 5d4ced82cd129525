package hashd

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter собирает маршруты демона с middleware логирования и восстановления
func NewRouter(logger *slog.Logger) http.Handler {
	h := NewHandler(logger)

	r := chi.NewRouter()
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))

	r.Post("/api/v1/hash", h.Hash)
	r.Get("/api/v1/health", h.Health)

	return r
}
