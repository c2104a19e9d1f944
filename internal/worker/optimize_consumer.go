package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nsqio/go-nsq"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/middleware"
)

type BatchOptimizer interface {
	OptimizeBatch(ctx context.Context, records []document.RawRecord) (*document.BatchResult, error)
}

type OptimizeConsumer struct {
	optimizer BatchOptimizer
}

func NewOptimizeConsumer(optimizer BatchOptimizer) *OptimizeConsumer {
	return &OptimizeConsumer{optimizer: optimizer}
}

func (h *OptimizeConsumer) HandleMessage(m *nsq.Message) error {
	if len(m.Body) == 0 {
		return nil
	}

	var payload OptimizeTaskPayload
	err := json.Unmarshal(m.Body, &payload)

	correlationID := payload.CorrelationID
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	ctx := middleware.WithCorrelationID(context.Background(), correlationID)

	if err != nil {
		slog.ErrorContext(ctx, "invalid message format", "error", err)
		return nil // Don't retry invalid messages
	}

	if len(payload.Records) == 0 {
		slog.WarnContext(ctx, "empty batch, dropping")
		return nil
	}

	result, err := h.optimizer.OptimizeBatch(ctx, payload.Records)
	if err != nil {
		slog.ErrorContext(ctx, "batch optimization failed", "error", err)
		return err // Requeue: batch-level errors are transient (db down etc.)
	}

	slog.InfoContext(ctx, "batch optimized",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return nil
}
