package document_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
)

func docColumns() []string {
	return []string{"id", "title", "summary", "full_text", "topics", "keywords", "chunks", "search_variations", "qa_pairs", "source_metadata"}
}

func TestPostgresRepo_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := document.NewPostgresRepo(db)

	doc := &document.Document{
		ID:               "linkedu_0001",
		Title:            "IELTS考試攻略",
		Summary:          "摘要",
		FullText:         "全文內容",
		Topics:           []string{"IELTS", "考試"},
		Keywords:         []string{"IELTS"},
		Chunks:           []document.Chunk{{ID: "chunk_0", Text: "內容", ContextLabel: "IELTS考試攻略"}},
		SearchVariations: []string{"IELTS考試攻略"},
		QAPairs:          []document.QAPair{{Question: "什麼是IELTS考試攻略？", Answer: "內容", Context: "IELTS考試攻略"}},
		SourceMetadata:   map[string]string{"language": "zh-HK"},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents")).
		WithArgs(doc.ID, doc.Title, doc.Summary, doc.FullText,
			pq.Array(doc.Topics), pq.Array(doc.Keywords),
			sqlmock.AnyArg(), pq.Array(doc.SearchVariations), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(context.Background(), doc)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := document.NewPostgresRepo(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(docColumns()).
			AddRow("linkedu_0001", "標題", "摘要", "全文",
				pq.Array([]string{"IELTS"}), pq.Array([]string{"IELTS"}),
				[]byte(`[{"id":"chunk_0","text":"內容","order_index":0,"context_label":"標題"}]`),
				pq.Array([]string{"標題"}),
				[]byte(`[]`), []byte(`{"language":"zh-HK"}`))

		mock.ExpectQuery(regexp.QuoteMeta("FROM documents WHERE id = $1")).
			WithArgs("linkedu_0001").
			WillReturnRows(rows)

		doc, err := repo.Get(context.Background(), "linkedu_0001")
		require.NoError(t, err)
		assert.Equal(t, "標題", doc.Title)
		require.Len(t, doc.Chunks, 1)
		assert.Equal(t, "chunk_0", doc.Chunks[0].ID)
		assert.Equal(t, "zh-HK", doc.SourceMetadata["language"])
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM documents WHERE id = $1")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestPostgresRepo_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := document.NewPostgresRepo(db)

	rows := sqlmock.NewRows(docColumns()).
		AddRow("linkedu_0001", "甲", "", "全文一", pq.Array([]string{}), pq.Array([]string{}),
			[]byte(`[]`), pq.Array([]string{}), []byte(`[]`), []byte(`{}`)).
		AddRow("linkedu_0002", "乙", "", "全文二", pq.Array([]string{}), pq.Array([]string{}),
			[]byte(`[]`), pq.Array([]string{}), []byte(`[]`), []byte(`{}`))

	mock.ExpectQuery(regexp.QuoteMeta("FROM documents ORDER BY id")).WillReturnRows(rows)

	docs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "linkedu_0001", docs[0].ID)
	assert.Equal(t, "linkedu_0002", docs[1].ID)
}

func TestPostgresRepo_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := document.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM documents")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM skipped_records")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	skipped, err := repo.CountSkipped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
}

func TestPostgresRepo_RecordSkip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := document.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO skipped_records (source_type, title, reason)")).
		WithArgs("article", "", "record skipped: empty title").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("1", time.Now()))

	skip := &document.SkippedRecord{SourceType: "article", Reason: "record skipped: empty title"}
	err = repo.RecordSkip(context.Background(), skip)
	require.NoError(t, err)
	assert.Equal(t, "1", skip.ID)
}
