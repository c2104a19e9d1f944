// Package export serializes assembled documents into the output envelope
// consumed by the downstream retrieval indexer. The formatting (UTF-8,
// unescaped non-ASCII, 2-space indentation) is a compatibility contract.
package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
)

// OptimizationFeatures advertises the transformations applied to every
// document in the envelope.
var OptimizationFeatures = []string{
	"Semantic chunking",
	"Enhanced searchable content",
	"Topic extraction",
	"Question-answer pairs",
	"Structured headings",
	"Clean content formatting",
}

type Metadata struct {
	Source               string   `json:"source"`
	TotalDocuments       int      `json:"total_documents"`
	OptimizationDate     string   `json:"optimization_date"`
	OptimizationFeatures []string `json:"optimization_features"`
}

type Envelope struct {
	Metadata  Metadata            `json:"metadata"`
	Documents []document.Document `json:"documents"`
}

// NewEnvelope wraps documents with batch metadata.
func NewEnvelope(source string, docs []document.Document, at time.Time) Envelope {
	if docs == nil {
		docs = []document.Document{}
	}
	return Envelope{
		Metadata: Metadata{
			Source:               source,
			TotalDocuments:       len(docs),
			OptimizationDate:     at.UTC().Format(time.RFC3339),
			OptimizationFeatures: OptimizationFeatures,
		},
		Documents: docs,
	}
}

// Write streams the envelope as indented UTF-8 JSON with non-ASCII characters
// left unescaped.
func Write(w io.Writer, env Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
