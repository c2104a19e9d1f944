package document

import "time"

// Section is one structured block of a scraped page, in source order.
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// RawRecord is the pipeline input produced by the collector layer: a scraped
// article, subject or school page, already stripped of HTML. Missing fields
// are tolerated and treated as empty.
type RawRecord struct {
	SourceType         string            `json:"source_type"`
	Title              string            `json:"title"`
	BodyText           string            `json:"body_text"`
	Excerpt            string            `json:"excerpt"`
	CategoryLabels     string            `json:"category_labels"`
	StructuredSections []Section         `json:"structured_sections,omitempty"`
	ExtraFacts         map[string]string `json:"extra_facts,omitempty"`
	SourceURL          string            `json:"source_url"`
}

// Chunk is a minimal retrievable unit of text with citation context.
type Chunk struct {
	ID           string `json:"id"`
	Heading      string `json:"heading,omitempty"`
	Text         string `json:"text"`
	OrderIndex   int    `json:"order_index"`
	ContextLabel string `json:"context_label"`
}

type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Context  string `json:"context"`
}

// Document is the retrieval-ready representation of one RawRecord.
// It is never mutated after assembly.
type Document struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Summary          string            `json:"summary"`
	FullText         string            `json:"full_text"`
	Topics           []string          `json:"topics"`
	Keywords         []string          `json:"keywords"`
	Chunks           []Chunk           `json:"chunks"`
	SearchVariations []string          `json:"search_variations"`
	QAPairs          []QAPair          `json:"qa_pairs"`
	SourceMetadata   map[string]string `json:"source_metadata"`
}

// SkippedRecord is the audit trail for records excluded from the output set.
type SkippedRecord struct {
	ID         string    `json:"id"`
	SourceType string    `json:"source_type"`
	Title      string    `json:"title"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// BatchResult summarises one OptimizeBatch call.
type BatchResult struct {
	Processed   int      `json:"processed"`
	Skipped     int      `json:"skipped"`
	Failed      int      `json:"failed"`
	DocumentIDs []string `json:"document_ids"`
}
