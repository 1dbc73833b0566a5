// Package summarizer runs the full extraction pipeline over one decision
// document: outcome classification, party extraction, citation extraction,
// monetary and claim-topic extraction, excerpt selection and confidence
// combination. One call, one immutable Summary.
package summarizer

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/lfaria/juriscan/internal/legalref"
	"github.com/lfaria/juriscan/internal/outcome"
	"github.com/lfaria/juriscan/internal/parties"
	"github.com/lfaria/juriscan/internal/taxonomy"
)

// engineVersion is the combination-logic revision. The full pipeline stamp
// also carries the taxonomy revision, so either changing bumps the stamp.
const engineVersion = "1.0.0"

// Fixed weights of the confidence fan-in.
const (
	outcomeShare    = 0.5
	partiesShare    = 0.2
	referencesShare = 0.2
	detailShare     = 0.1
)

// excerptFallbackRunes bounds the excerpt when no dispositive sentence
// exists.
const excerptFallbackRunes = 200

// PipelineVersion identifies the exact pipeline that produced a summary.
// Stored summaries with a different stamp are candidates for reprocessing.
func PipelineVersion() string {
	return engineVersion + "+tax" + taxonomy.Version
}

// Summarizer fans the per-document extractors out and combines their
// results. It is immutable after construction and safe for concurrent use.
type Summarizer struct {
	classifier *outcome.Classifier
}

func New(tax *taxonomy.Taxonomy, cfg outcome.Config) *Summarizer {
	return &Summarizer{classifier: outcome.New(tax, cfg)}
}

// Summarize never fails: every extractor degrades to no-signal on its own,
// and a panicking branch is reported in Diagnostics instead of aborting the
// document. Repeated calls on the same document return identical results.
func (s *Summarizer) Summarize(ctx context.Context, doc Document) Summary {
	sum := Summary{DocumentID: doc.ID, PipelineVersion: PipelineVersion()}

	var (
		classification outcome.Classification
		claimant       *parties.Record
		defendant      *parties.Record
		references     []legalref.Reference
		monetary       []MonetaryMention
		requests       []string
	)
	diags := make(chan string, 4)

	g, _ := errgroup.WithContext(ctx)
	g.Go(guard(diags, "outcome", func() {
		classification = s.classifier.Classify(doc.Text)
	}))
	g.Go(guard(diags, "parties", func() {
		claimant, defendant = parties.Extract(doc.Text)
		if claimant == nil && defendant == nil && doc.PartiesHint != "" {
			claimant, defendant = parties.Extract(doc.PartiesHint)
		}
	}))
	g.Go(guard(diags, "references", func() {
		references = legalref.Merge(legalref.Extract(doc.Text), legalref.ParseHint(doc.CitationsHint))
	}))
	g.Go(guard(diags, "detail", func() {
		monetary = extractMonetary(doc.Text)
		requests = extractRequests(doc.Text)
	}))
	// Branches degrade instead of erroring, so Wait cannot fail.
	_ = g.Wait()
	close(diags)
	for d := range diags {
		sum.Diagnostics = append(sum.Diagnostics, d)
	}
	sort.Strings(sum.Diagnostics)

	sum.Outcome = classification
	sum.Claimant = claimant
	sum.Defendant = defendant
	sum.References = references
	sum.Monetary = monetary
	sum.MainRequests = requests
	sum.Excerpt = selectExcerpt(doc.Text)
	sum.OverallConfidence = combine(sum)
	return sum
}

// guard wraps a branch so a panic degrades it to no-signal.
func guard(diags chan<- string, name string, fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				diags <- fmt.Sprintf("%s: recovered: %v", name, r)
			}
		}()
		fn()
		return nil
	}
}

// combine is the fixed-weight confidence fan-in. Absent components
// contribute zero; they never pull the present ones down below their own
// weighted share.
func combine(sum Summary) float64 {
	total := outcomeShare * sum.Outcome.Confidence

	switch {
	case sum.Claimant != nil && sum.Defendant != nil:
		total += partiesShare * (sum.Claimant.Confidence + sum.Defendant.Confidence) / 2
	case sum.Claimant != nil:
		total += partiesShare * sum.Claimant.Confidence
	case sum.Defendant != nil:
		total += partiesShare * sum.Defendant.Confidence
	}

	if len(sum.References) > 0 {
		total += referencesShare
	}
	if len(sum.Monetary) > 0 || len(sum.MainRequests) > 0 {
		total += detailShare
	}
	if total > 1 {
		total = 1
	}
	return total
}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]\s+`)
	dispositiveRe   = regexp.MustCompile(`(?i)\b(?:julgo|condeno|defiro|indefiro|acolho|rejeito|homologo|extingo|procedentes?|improcedentes?|provimento)\b`)
)

// selectExcerpt picks the earliest sentence containing dispositive
// language, falling back to the opening of the text.
func selectExcerpt(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	start := 0
	for _, bound := range sentenceSplitRe.FindAllStringIndex(trimmed, -1) {
		sentence := strings.TrimSpace(trimmed[start:bound[1]])
		if dispositiveRe.MatchString(sentence) {
			return sentence
		}
		start = bound[1]
	}
	if tail := strings.TrimSpace(trimmed[start:]); tail != "" && dispositiveRe.MatchString(tail) {
		return tail
	}
	if utf8.RuneCountInString(trimmed) <= excerptFallbackRunes {
		return trimmed
	}
	runes := []rune(trimmed)
	return strings.TrimSpace(string(runes[:excerptFallbackRunes]))
}
