// Package hashd реализует HTTP API демона хеширования.
// Демон принимает строку и возвращает её MD5 дайджест в верхнем регистре,
// позволяя выносить вычисление подписи из основного процесса.
package hashd

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/apisign/internal/sign"
	"github.com/iudanet/apisign/pkg/api"
)

// Handler обрабатывает запросы демона хеширования
type Handler struct {
	logger *slog.Logger
	hasher sign.Hasher
}

// NewHandler создает новый Handler
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		hasher: sign.Local{},
	}
}

// Hash обрабатывает POST /api/v1/hash
func (h *Handler) Hash(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.HashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid hash request body", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Пустая строка — валидный вход, её дайджест тоже определён.
	digest, err := h.hasher.MD5UpperHex(ctx, req.Input)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute digest", slog.Any("error", err))
		h.sendError(w, "failed to compute digest", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.HashResponse{Digest: digest}, http.StatusOK)
}

// Health обрабатывает GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, api.HealthResponse{Status: "ok"}, http.StatusOK)
}

// sendJSON отправляет JSON ответ
func (h *Handler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *Handler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
