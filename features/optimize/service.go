// Package optimize runs raw record batches through the assembly pipeline and
// persists the results. One bad record never aborts a batch: unusable records
// are logged, stored in the skip audit trail and excluded from the output.
package optimize

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/config"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/middleware"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/pipeline"
)

type EventPublisher interface {
	Publish(topic string, body []byte) error
}

// ResultEvent is published after every batch.
type ResultEvent struct {
	Processed     int      `json:"processed"`
	Skipped       int      `json:"skipped"`
	Failed        int      `json:"failed"`
	DocumentIDs   []string `json:"document_ids"`
	CorrelationID string   `json:"correlation_id,omitempty"`
}

type Service struct {
	repo       document.Repository
	assemblers map[string]*pipeline.Assembler
	fallback   *pipeline.Assembler
	pub        EventPublisher
}

// NewService builds one assembler per registered profile. pub may be nil for
// callers without a message bus (the batch CLI).
func NewService(repo document.Repository, registry pipeline.Registry, pub EventPublisher) *Service {
	assemblers := make(map[string]*pipeline.Assembler, len(registry))
	for sourceType, profile := range registry {
		assemblers[sourceType] = pipeline.NewAssembler(profile)
	}
	return &Service{
		repo:       repo,
		assemblers: assemblers,
		fallback:   assemblers[pipeline.SourceArticle],
		pub:        pub,
	}
}

func (s *Service) assemblerFor(sourceType string) *pipeline.Assembler {
	if a, ok := s.assemblers[sourceType]; ok {
		return a
	}
	return s.fallback
}

// OptimizeBatch assembles and stores every usable record. The returned error
// is reserved for batch-level failures; per-record problems only show up in
// the result counts.
func (s *Service) OptimizeBatch(ctx context.Context, records []document.RawRecord) (*document.BatchResult, error) {
	result := &document.BatchResult{DocumentIDs: []string{}}

	for i, rec := range records {
		doc, err := s.assemblerFor(rec.SourceType).Assemble(rec, i+1)
		if err != nil {
			if errors.Is(err, pipeline.ErrSkippedRecord) {
				s.recordSkip(ctx, rec, err)
				result.Skipped++
				continue
			}
			slog.ErrorContext(ctx, "failed to assemble record", "error", err, "index", i, "title", rec.Title)
			result.Failed++
			continue
		}

		if err := s.repo.Save(ctx, doc); err != nil {
			slog.ErrorContext(ctx, "failed to save document", "error", err, "id", doc.ID)
			result.Failed++
			continue
		}

		result.Processed++
		result.DocumentIDs = append(result.DocumentIDs, doc.ID)
	}

	s.publishResult(ctx, result)
	return result, nil
}

func (s *Service) recordSkip(ctx context.Context, rec document.RawRecord, cause error) {
	slog.WarnContext(ctx, "record skipped", "reason", cause.Error(), "source_type", rec.SourceType, "title", rec.Title)

	skip := &document.SkippedRecord{
		SourceType: rec.SourceType,
		Title:      rec.Title,
		Reason:     cause.Error(),
	}
	if err := s.repo.RecordSkip(ctx, skip); err != nil {
		slog.ErrorContext(ctx, "failed to record skip", "error", err, "title", rec.Title)
	}
}

func (s *Service) publishResult(ctx context.Context, result *document.BatchResult) {
	if s.pub == nil {
		return
	}

	event := ResultEvent{
		Processed:     result.Processed,
		Skipped:       result.Skipped,
		Failed:        result.Failed,
		DocumentIDs:   result.DocumentIDs,
		CorrelationID: middleware.GetCorrelationID(ctx),
	}
	body, err := json.Marshal(event)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal result event", "error", err)
		return
	}
	if err := s.pub.Publish(config.TopicOptimizeResult, body); err != nil {
		slog.ErrorContext(ctx, "failed to publish result event", "error", err)
	}
}
