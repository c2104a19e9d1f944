package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

type Repository interface {
	Save(ctx context.Context, doc *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	List(ctx context.Context) ([]Document, error)
	Count(ctx context.Context) (int, error)
	RecordSkip(ctx context.Context, skip *SkippedRecord) error
	CountSkipped(ctx context.Context) (int, error)
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Save upserts by document id so re-optimized batches replace earlier runs.
func (r *PostgresRepo) Save(ctx context.Context, doc *Document) error {
	chunks, err := json.Marshal(doc.Chunks)
	if err != nil {
		return fmt.Errorf("marshal chunks: %w", err)
	}
	qaPairs, err := json.Marshal(doc.QAPairs)
	if err != nil {
		return fmt.Errorf("marshal qa pairs: %w", err)
	}
	meta, err := json.Marshal(doc.SourceMetadata)
	if err != nil {
		return fmt.Errorf("marshal source metadata: %w", err)
	}

	query := `INSERT INTO documents (id, title, summary, full_text, topics, keywords, chunks, search_variations, qa_pairs, source_metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			summary = EXCLUDED.summary,
			full_text = EXCLUDED.full_text,
			topics = EXCLUDED.topics,
			keywords = EXCLUDED.keywords,
			chunks = EXCLUDED.chunks,
			search_variations = EXCLUDED.search_variations,
			qa_pairs = EXCLUDED.qa_pairs,
			source_metadata = EXCLUDED.source_metadata,
			updated_at = NOW()`
	_, err = r.db.ExecContext(ctx, query,
		doc.ID, doc.Title, doc.Summary, doc.FullText,
		pq.Array(doc.Topics), pq.Array(doc.Keywords),
		chunks, pq.Array(doc.SearchVariations), qaPairs, meta)
	return err
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (*Document, error) {
	query := `SELECT id, title, summary, full_text, topics, keywords, chunks, search_variations, qa_pairs, source_metadata
		FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepo) List(ctx context.Context) ([]Document, error) {
	query := `SELECT id, title, summary, full_text, topics, keywords, chunks, search_variations, qa_pairs, source_metadata
		FROM documents ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count)
	return count, err
}

func (r *PostgresRepo) RecordSkip(ctx context.Context, skip *SkippedRecord) error {
	query := `INSERT INTO skipped_records (source_type, title, reason) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, skip.SourceType, skip.Title, skip.Reason).
		Scan(&skip.ID, &skip.CreatedAt)
}

func (r *PostgresRepo) CountSkipped(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM skipped_records`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*Document, error) {
	var (
		doc     Document
		chunks  []byte
		qaPairs []byte
		meta    []byte
	)
	err := row.Scan(&doc.ID, &doc.Title, &doc.Summary, &doc.FullText,
		pq.Array(&doc.Topics), pq.Array(&doc.Keywords),
		&chunks, pq.Array(&doc.SearchVariations), &qaPairs, &meta)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(chunks, &doc.Chunks); err != nil {
		return nil, fmt.Errorf("unmarshal chunks: %w", err)
	}
	if err := json.Unmarshal(qaPairs, &doc.QAPairs); err != nil {
		return nil, fmt.Errorf("unmarshal qa pairs: %w", err)
	}
	if err := json.Unmarshal(meta, &doc.SourceMetadata); err != nil {
		return nil, fmt.Errorf("unmarshal source metadata: %w", err)
	}
	return &doc, nil
}
