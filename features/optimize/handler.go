package optimize

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type optimizeRequest struct {
	Records []document.RawRecord `json:"records"`
}

func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(r, w, "INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Records) == 0 {
		h.writeError(r, w, "INVALID_REQUEST", "records must not be empty", http.StatusBadRequest)
		return
	}

	result, err := h.service.OptimizeBatch(r.Context(), req.Records)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to optimize batch", "error", err)
		h.writeError(r, w, "INTERNAL_ERROR", "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"data": result}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(r *http.Request, w http.ResponseWriter, code, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
		"correlationId": middleware.GetCorrelationID(r.Context()),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}
