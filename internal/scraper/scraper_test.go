package scraper

import (
	"context"
	"strings"
	"testing"
)

func TestDocumentIDFromCNJNumber(t *testing.T) {
	url := "https://pje.trt2.jus.br/consulta/decisao?processo=0001234-56.2023.5.02.0001"
	if got := DocumentID(url); got != "0001234-56.2023.5.02.0001" {
		t.Fatalf("DocumentID = %q", got)
	}
}

func TestDocumentIDFallbackIsStable(t *testing.T) {
	url := "https://example.org/decisoes/9f3a"
	first := DocumentID(url)
	if !strings.HasPrefix(first, "url-") || len(first) != len("url-")+16 {
		t.Fatalf("DocumentID = %q", first)
	}
	if second := DocumentID(url); second != first {
		t.Fatalf("DocumentID not stable: %q vs %q", first, second)
	}
	if other := DocumentID(url + "/x"); other == first {
		t.Fatal("distinct URLs collided")
	}
}

func TestNormalizeText(t *testing.T) {
	in := "SENTENÇA  \r\n\r\n\r\n\r\nVistos os autos. \n\n\nIsto posto, julgo procedente.   \n"
	want := "SENTENÇA\n\nVistos os autos.\n\nIsto posto, julgo procedente."
	if got := NormalizeText(in); got != want {
		t.Fatalf("NormalizeText = %q, want %q", got, want)
	}
}

func TestNormalizeTextEmpty(t *testing.T) {
	if got := NormalizeText(" \n\t\n "); got != "" {
		t.Fatalf("NormalizeText = %q, want empty", got)
	}
}

func TestFetchAllRejectsEmptyInput(t *testing.T) {
	s := New(Config{})
	if _, err := s.FetchAll(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty url list")
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{})
	if s.cfg.Selector != "body" {
		t.Fatalf("selector = %q", s.cfg.Selector)
	}
	if s.cfg.Timeout <= 0 || s.cfg.Delay <= 0 {
		t.Fatalf("timeout/delay defaults missing: %+v", s.cfg)
	}
}
