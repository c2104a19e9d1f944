package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bestfranklinAI/web-scraper-future-studies/internal/middleware"
)

type DocumentCounter interface {
	Count(ctx context.Context) (int, error)
	CountSkipped(ctx context.Context) (int, error)
}

type Handler struct {
	documents DocumentCounter
}

func NewHandler(d DocumentCounter) *Handler {
	return &Handler{documents: d}
}

type StatsResponse struct {
	Documents      int `json:"documents"`
	SkippedRecords int `json:"skipped_records"`
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	correlationID := middleware.GetCorrelationID(ctx)

	slog.InfoContext(ctx, "getting stats", "correlationId", correlationID)

	dCount, err := h.documents.Count(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count documents", "error", err, "correlationId", correlationID)
		h.writeError(ctx, w, "INTERNAL_ERROR", "failed to count documents", http.StatusInternalServerError)
		return
	}

	sCount, err := h.documents.CountSkipped(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count skipped records", "error", err, "correlationId", correlationID)
		h.writeError(ctx, w, "INTERNAL_ERROR", "failed to count skipped records", http.StatusInternalServerError)
		return
	}

	resp := StatsResponse{
		Documents:      dCount,
		SkippedRecords: sCount,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"data": resp}); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, code, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
		"correlationId": middleware.GetCorrelationID(ctx),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(ctx, "failed to encode error response", "error", err)
	}
}
