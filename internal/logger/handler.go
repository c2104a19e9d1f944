// Package logger wires slog with the correlation id carried in context, so
// every log line emitted while processing a batch can be traced back to the
// request or queue message that started it.
package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/bestfranklinAI/web-scraper-future-studies/internal/middleware"
)

type ContextHandler struct {
	slog.Handler
}

func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: h}
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ctx.Value(middleware.CorrelationKey).(string); ok && id != "" {
		r.AddAttrs(slog.String("correlation_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

// New builds the service logger: JSON output decorated with correlation ids.
func New(out io.Writer) *slog.Logger {
	return slog.New(NewContextHandler(slog.NewJSONHandler(out, nil)))
}
