package export

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/middleware"
)

type Lister interface {
	List(ctx context.Context) ([]document.Document, error)
}

// Handler streams the indexer envelope over HTTP. The body formatting is a
// compatibility contract with the downstream consumer, so the handler uses
// Write instead of the default encoder.
type Handler struct {
	lister Lister
	source string
	now    func() time.Time
}

func NewHandler(lister Lister, source string) *Handler {
	return &Handler{lister: lister, source: source, now: time.Now}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	docs, err := h.lister.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to export documents", "error", err)
		h.writeError(r, w, "INTERNAL_ERROR", "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := Write(w, NewEnvelope(h.source, docs, h.now())); err != nil {
		slog.Error("failed to write export", "error", err)
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
