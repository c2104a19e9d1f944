package export

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
)

type stubLister struct {
	docs []document.Document
	err  error
}

func (s *stubLister) List(ctx context.Context) ([]document.Document, error) {
	return s.docs, s.err
}

func TestHandler_Export(t *testing.T) {
	h := NewHandler(&stubLister{docs: []document.Document{{ID: "linkedu_0001", Title: "標題"}}}, "src")
	h.now = func() time.Time { return time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC) }

	req := httptest.NewRequest("GET", "/export", nil)
	w := httptest.NewRecorder()
	h.Export(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 1, env.Metadata.TotalDocuments)
	assert.Equal(t, "2026-08-30T00:00:00Z", env.Metadata.OptimizationDate)
	require.Len(t, env.Documents, 1)
	assert.Equal(t, "linkedu_0001", env.Documents[0].ID)
}

func TestHandler_Export_ListError(t *testing.T) {
	h := NewHandler(&stubLister{err: errors.New("db down")}, "src")

	req := httptest.NewRequest("GET", "/export", nil)
	w := httptest.NewRecorder()
	h.Export(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
