package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lfaria/juriscan/internal/outcome"
	"github.com/lfaria/juriscan/internal/summarizer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "juriscan.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDocumentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	doc := summarizer.Document{ID: "doc-1", Text: "julgo procedente", PartiesHint: "RECLAMANTE: ANA LIMA", CitationsHint: "art. 7 da CLT"}
	if err := s.PutDocument(doc, "https://example.test/doc-1"); err != nil {
		t.Fatalf("PutDocument: %v", err)
	}
	got, err := s.GetDocument("doc-1")
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if got != doc {
		t.Fatalf("got %+v, want %+v", got, doc)
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetDocument("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetSummary("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPendingAndStaleDocuments(t *testing.T) {
	s := openTestStore(t)
	for _, id := range []string{"a", "b", "c"} {
		if err := s.PutDocument(summarizer.Document{ID: id, Text: "texto"}, ""); err != nil {
			t.Fatalf("PutDocument %s: %v", id, err)
		}
	}
	if err := s.PutSummary(summarizer.Summary{
		DocumentID:      "a",
		Outcome:         outcome.Classification{Outcome: outcome.FavorableToClaimant, Confidence: 0.8},
		PipelineVersion: "0.9.0+tax2025.01",
	}); err != nil {
		t.Fatalf("PutSummary: %v", err)
	}
	if err := s.PutSummary(summarizer.Summary{
		DocumentID:      "b",
		Outcome:         outcome.Classification{Outcome: outcome.Undetermined},
		PipelineVersion: summarizer.PipelineVersion(),
	}); err != nil {
		t.Fatalf("PutSummary: %v", err)
	}

	pending, err := s.PendingDocuments(10)
	if err != nil {
		t.Fatalf("PendingDocuments: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "c" {
		t.Fatalf("pending = %+v, want only c", pending)
	}

	stale, err := s.StaleDocuments(summarizer.PipelineVersion(), 10)
	if err != nil {
		t.Fatalf("StaleDocuments: %v", err)
	}
	if len(stale) != 1 || stale[0].ID != "a" {
		t.Fatalf("stale = %+v, want only a", stale)
	}
}

func TestSummaryRoundTripAndList(t *testing.T) {
	s := openTestStore(t)
	sum := summarizer.Summary{
		DocumentID: "doc-9",
		Outcome: outcome.Classification{
			Outcome:     outcome.PartiallyFavorable,
			Confidence:  0.91,
			MethodsUsed: []string{"direct_patterns", "semantic_context"},
		},
		MainRequests:      []string{"horas extras"},
		OverallConfidence: 0.83,
		PipelineVersion:   summarizer.PipelineVersion(),
	}
	if err := s.PutDocument(summarizer.Document{ID: "doc-9", Text: "x"}, ""); err != nil {
		t.Fatalf("PutDocument: %v", err)
	}
	if err := s.PutSummary(sum); err != nil {
		t.Fatalf("PutSummary: %v", err)
	}

	got, err := s.GetSummary("doc-9")
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if got.Outcome.Outcome != sum.Outcome.Outcome || got.OverallConfidence != sum.OverallConfidence {
		t.Fatalf("got %+v, want %+v", got, sum)
	}

	list, err := s.ListSummaries(5)
	if err != nil {
		t.Fatalf("ListSummaries: %v", err)
	}
	if len(list) != 1 || list[0].DocumentID != "doc-9" {
		t.Fatalf("list = %+v", list)
	}

	docs, sums, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if docs != 1 || sums != 1 {
		t.Fatalf("stats = %d/%d, want 1/1", docs, sums)
	}
}

func TestPutSummaryOverwrites(t *testing.T) {
	s := openTestStore(t)
	first := summarizer.Summary{DocumentID: "d", OverallConfidence: 0.2, PipelineVersion: "old"}
	second := summarizer.Summary{DocumentID: "d", OverallConfidence: 0.9, PipelineVersion: summarizer.PipelineVersion()}
	if err := s.PutSummary(first); err != nil {
		t.Fatalf("PutSummary: %v", err)
	}
	if err := s.PutSummary(second); err != nil {
		t.Fatalf("PutSummary: %v", err)
	}
	got, err := s.GetSummary("d")
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if got.OverallConfidence != 0.9 || got.PipelineVersion != second.PipelineVersion {
		t.Fatalf("got %+v, want the overwrite", got)
	}
}
