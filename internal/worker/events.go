package worker

import "github.com/bestfranklinAI/web-scraper-future-studies/features/document"

// OptimizeTaskPayload is the message body published to the optimize task
// topic. Scrapers drop batches of raw records here and pick up the outcome
// on the result topic.
type OptimizeTaskPayload struct {
	Records       []document.RawRecord `json:"records"`
	CorrelationID string               `json:"correlation_id,omitempty"`
}
