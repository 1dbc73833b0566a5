// Package store persists fetched documents and their summaries in SQLite.
// Documents are written by the scraper, summaries by the batch pipeline;
// the HTTP API and the report renderer only read.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/lfaria/juriscan/internal/summarizer"
)

// ErrNotFound is returned when the requested document or summary does not
// exist.
var ErrNotFound = errors.New("store: not found")

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	document_id    TEXT PRIMARY KEY,
	text           TEXT NOT NULL DEFAULT '',
	parties_hint   TEXT NOT NULL DEFAULT '',
	citations_hint TEXT NOT NULL DEFAULT '',
	source_url     TEXT NOT NULL DEFAULT '',
	fetched_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS summaries (
	document_id      TEXT PRIMARY KEY,
	outcome          TEXT NOT NULL,
	confidence       REAL NOT NULL DEFAULT 0,
	pipeline_version TEXT NOT NULL DEFAULT '',
	payload          TEXT NOT NULL,
	processed_at     TEXT NOT NULL
);
`

// Store wraps a single-writer SQLite database. Safe for concurrent use.
type Store struct {
	db *sqlx.DB
	mu sync.Mutex
}

func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// PutDocument upserts a fetched document.
func (s *Store) PutDocument(doc summarizer.Document, sourceURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO documents (document_id, text, parties_hint, citations_hint, source_url, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Text, doc.PartiesHint, doc.CitationsHint, sourceURL, nowString())
	return err
}

func (s *Store) GetDocument(id string) (summarizer.Document, error) {
	var doc summarizer.Document
	err := s.db.QueryRow(`SELECT document_id, text, parties_hint, citations_hint FROM documents WHERE document_id = ?`, id).
		Scan(&doc.ID, &doc.Text, &doc.PartiesHint, &doc.CitationsHint)
	if errors.Is(err, sql.ErrNoRows) {
		return summarizer.Document{}, ErrNotFound
	}
	if err != nil {
		return summarizer.Document{}, err
	}
	return doc, nil
}

// PendingDocuments returns documents that have never been summarized,
// oldest fetch first.
func (s *Store) PendingDocuments(limit int) ([]summarizer.Document, error) {
	return s.queryDocuments(`SELECT d.document_id, d.text, d.parties_hint, d.citations_hint
		FROM documents d LEFT JOIN summaries s ON s.document_id = d.document_id
		WHERE s.document_id IS NULL
		ORDER BY d.fetched_at, d.document_id LIMIT ?`, limit)
}

// StaleDocuments returns documents whose summary was produced by a pipeline
// other than version, oldest processing first. Fresh summaries are skipped.
func (s *Store) StaleDocuments(version string, limit int) ([]summarizer.Document, error) {
	return s.queryDocuments(`SELECT d.document_id, d.text, d.parties_hint, d.citations_hint
		FROM documents d JOIN summaries s ON s.document_id = d.document_id
		WHERE s.pipeline_version != ?
		ORDER BY s.processed_at, d.document_id LIMIT ?`, version, limit)
}

func (s *Store) queryDocuments(query string, args ...any) ([]summarizer.Document, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []summarizer.Document
	for rows.Next() {
		var doc summarizer.Document
		if err := rows.Scan(&doc.ID, &doc.Text, &doc.PartiesHint, &doc.CitationsHint); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// PutSummary upserts the summary for its document. The full summary is
// stored as JSON; outcome, confidence and pipeline version are broken out
// into columns for filtering.
func (s *Store) PutSummary(sum summarizer.Summary) error {
	payload, err := json.Marshal(sum)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(`INSERT OR REPLACE INTO summaries (document_id, outcome, confidence, pipeline_version, payload, processed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sum.DocumentID, string(sum.Outcome.Outcome), sum.OverallConfidence, sum.PipelineVersion, string(payload), nowString())
	return err
}

func (s *Store) GetSummary(documentID string) (summarizer.Summary, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM summaries WHERE document_id = ?`, documentID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return summarizer.Summary{}, ErrNotFound
	}
	if err != nil {
		return summarizer.Summary{}, err
	}
	var sum summarizer.Summary
	if err := json.Unmarshal([]byte(payload), &sum); err != nil {
		return summarizer.Summary{}, fmt.Errorf("unmarshal summary %s: %w", documentID, err)
	}
	return sum, nil
}

// ListSummaries returns the most recently processed summaries first.
func (s *Store) ListSummaries(limit int) ([]summarizer.Summary, error) {
	rows, err := s.db.Query(`SELECT payload FROM summaries ORDER BY processed_at DESC, document_id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []summarizer.Summary
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var sum summarizer.Summary
		if err := json.Unmarshal([]byte(payload), &sum); err != nil {
			return nil, fmt.Errorf("unmarshal summary: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Stats reports row counts for the health endpoint.
func (s *Store) Stats() (documents, summaries int, err error) {
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&documents); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM summaries`).Scan(&summaries); err != nil {
		return 0, 0, err
	}
	return documents, summaries, nil
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
