package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
)

func TestNewEnvelope(t *testing.T) {
	at := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	docs := []document.Document{{ID: "linkedu_0001", Title: "標題"}}

	env := NewEnvelope("LinkedU Articles (RAG Optimized)", docs, at)

	assert.Equal(t, "LinkedU Articles (RAG Optimized)", env.Metadata.Source)
	assert.Equal(t, 1, env.Metadata.TotalDocuments)
	assert.Equal(t, "2026-08-30T10:30:00Z", env.Metadata.OptimizationDate)
	assert.Equal(t, OptimizationFeatures, env.Metadata.OptimizationFeatures)
}

func TestNewEnvelope_NilDocuments(t *testing.T) {
	env := NewEnvelope("src", nil, time.Now())
	assert.NotNil(t, env.Documents)
	assert.Equal(t, 0, env.Metadata.TotalDocuments)
}

func TestWrite_Formatting(t *testing.T) {
	at := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	docs := []document.Document{{
		ID:       "linkedu_0001",
		Title:    "英國留學攻略",
		FullText: "正文 <content> 內容",
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewEnvelope("src", docs, at)))
	out := buf.String()

	// Non-ASCII stays readable and HTML characters are not escaped.
	assert.Contains(t, out, "英國留學攻略")
	assert.Contains(t, out, "<content>")
	assert.NotContains(t, out, `\u`)

	// Two-space indentation.
	assert.True(t, strings.Contains(out, "\n  \"metadata\""))
}
