package summarizer

import (
	"github.com/lfaria/juriscan/internal/legalref"
	"github.com/lfaria/juriscan/internal/outcome"
	"github.com/lfaria/juriscan/internal/parties"
)

// Document is the immutable input to one summarization run. Hints carry
// metadata that arrived with the document (a caption line, a citation list)
// and are only consulted when the text itself yields nothing, or to enrich
// the extracted citations.
type Document struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	PartiesHint   string `json:"parties_hint,omitempty"`
	CitationsHint string `json:"citations_hint,omitempty"`
}

// MonetaryMention is one money amount found in the text.
type MonetaryMention struct {
	Text    string  `json:"text"`
	Value   float64 `json:"value"`
	Context string  `json:"context,omitempty"`
}

// Summary is the full structured output for one document.
type Summary struct {
	DocumentID string                 `json:"document_id"`
	Outcome    outcome.Classification `json:"outcome"`
	Claimant   *parties.Record        `json:"claimant,omitempty"`
	Defendant  *parties.Record        `json:"defendant,omitempty"`
	References []legalref.Reference   `json:"references,omitempty"`
	Monetary   []MonetaryMention      `json:"monetary,omitempty"`

	// MainRequests lists the claim topics the decision touches, in order
	// of first appearance.
	MainRequests []string `json:"main_requests,omitempty"`

	// Excerpt is the earliest dispositive sentence, or the opening of the
	// text when none is found.
	Excerpt string `json:"excerpt,omitempty"`

	OverallConfidence float64 `json:"overall_confidence"`
	PipelineVersion   string  `json:"pipeline_version"`

	// Diagnostics records extractor branches that degraded to no-signal.
	Diagnostics []string `json:"diagnostics,omitempty"`
}
