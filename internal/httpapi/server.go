// Package httpapi exposes stored documents and summaries over a small
// read-only JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/lfaria/juriscan/internal/store"
	"github.com/lfaria/juriscan/internal/summarizer"
)

// Reader is the slice of the store the API needs. The concrete *store.Store
// satisfies it; tests use a fake.
type Reader interface {
	GetDocument(id string) (summarizer.Document, error)
	GetSummary(documentID string) (summarizer.Summary, error)
	ListSummaries(limit int) ([]summarizer.Summary, error)
	StaleDocuments(version string, limit int) ([]summarizer.Document, error)
	PendingDocuments(limit int) ([]summarizer.Document, error)
	Stats() (documents, summaries int, err error)
}

type Server struct {
	reader Reader
}

func NewServer(reader Reader) http.Handler {
	s := &Server{reader: reader}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/health", s.handleHealth)
	mux.HandleFunc("/v1/summaries", s.handleListSummaries)
	mux.HandleFunc("/v1/summaries/", s.handleGetSummary)
	mux.HandleFunc("/v1/documents/", s.handleGetDocument)
	mux.HandleFunc("/v1/reprocess-needed", s.handleReprocessNeeded)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, code := 500, "internal"
	if errors.Is(err, store.ErrNotFound) {
		status, code = 404, "not_found"
	}
	writeJSON(w, status, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code":    code,
			"message": err.Error(),
		},
	})
}

func parseInt(value string, def int) int {
	if strings.TrimSpace(value) == "" {
		return def
	}
	v, err := strconv.Atoi(value)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	documents, summaries, err := s.reader.Stats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{
		"status":           "ok",
		"documents":        documents,
		"summaries":        summaries,
		"pipeline_version": summarizer.PipelineVersion(),
	})
}

func (s *Server) handleListSummaries(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	summaries, err := s.reader.ListSummaries(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"summaries": summaries})
}

func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1/summaries/"), "/")
	if id == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	sum, err := s.reader.GetSummary(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, sum)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1/documents/"), "/")
	if id == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	doc, err := s.reader.GetDocument(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, doc)
}

// handleReprocessNeeded lists documents whose stored summary was produced by
// an older pipeline, plus documents never summarized at all.
func (s *Server) handleReprocessNeeded(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	stale, err := s.reader.StaleDocuments(summarizer.PipelineVersion(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	pending, err := s.reader.PendingDocuments(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	ids := make([]string, 0, len(stale)+len(pending))
	for _, d := range pending {
		ids = append(ids, d.ID)
	}
	for _, d := range stale {
		ids = append(ids, d.ID)
	}
	writeJSON(w, 200, map[string]any{
		"pipeline_version": summarizer.PipelineVersion(),
		"document_ids":     ids,
	})
}
