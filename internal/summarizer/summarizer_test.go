package summarizer

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/lfaria/juriscan/internal/legalref"
	"github.com/lfaria/juriscan/internal/outcome"
	"github.com/lfaria/juriscan/internal/taxonomy"
)

const decisionText = `RECLAMANTE: JOÃO DA SILVA SANTOS, CPF 123.456.789-01
RECLAMADA: METALÚRGICA AURORA LTDA, CNPJ 12.345.678/0001-90

Vistos os autos. O reclamante postulou o pagamento de horas extras, adicional noturno e danos morais, com fundamento no art. 7º da CLT e na Súmula 340 do TST.

Isto posto, julgo parcialmente procedentes os pedidos e condeno a reclamada ao pagamento de R$ 15.000,00 a título de horas extras. Indefiro o pedido de danos morais.`

func newSummarizer(t *testing.T) *Summarizer {
	t.Helper()
	tax, err := taxonomy.New()
	if err != nil {
		t.Fatalf("taxonomy.New: %v", err)
	}
	return New(tax, outcome.DefaultConfig())
}

func TestSummarizeFullDecision(t *testing.T) {
	s := newSummarizer(t)
	sum := s.Summarize(context.Background(), Document{ID: "doc-1", Text: decisionText})

	if sum.DocumentID != "doc-1" {
		t.Errorf("document id = %q", sum.DocumentID)
	}
	if sum.Outcome.Outcome != outcome.PartiallyFavorable {
		t.Errorf("outcome = %s, want PARTIALLY_FAVORABLE", sum.Outcome.Outcome)
	}
	if sum.Claimant == nil || sum.Claimant.Name != "JOÃO DA SILVA SANTOS" {
		t.Errorf("claimant = %+v", sum.Claimant)
	}
	if sum.Defendant == nil || sum.Defendant.TaxID != "12.345.678/0001-90" {
		t.Errorf("defendant = %+v", sum.Defendant)
	}
	wantRefs := map[string]bool{"Art. 7º CLT": true, "Súmula 340 TST": true}
	for _, r := range sum.References {
		delete(wantRefs, r.Citation)
	}
	if len(wantRefs) != 0 {
		t.Errorf("missing references %v in %+v", wantRefs, sum.References)
	}
	if len(sum.Monetary) != 1 || sum.Monetary[0].Value != 15000 {
		t.Errorf("monetary = %+v", sum.Monetary)
	}
	if len(sum.MainRequests) == 0 || sum.MainRequests[0] != "horas extras" {
		t.Errorf("requests = %v", sum.MainRequests)
	}
	if !strings.Contains(sum.Excerpt, "julgo parcialmente procedentes") {
		t.Errorf("excerpt = %q", sum.Excerpt)
	}
	if sum.OverallConfidence <= 0.7 || sum.OverallConfidence > 1 {
		t.Errorf("overall confidence = %.3f", sum.OverallConfidence)
	}
	if sum.PipelineVersion != PipelineVersion() {
		t.Errorf("pipeline version = %q", sum.PipelineVersion)
	}
	if len(sum.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v", sum.Diagnostics)
	}
}

func TestSummarizeEmptyDocument(t *testing.T) {
	s := newSummarizer(t)
	sum := s.Summarize(context.Background(), Document{ID: "empty"})

	if sum.Outcome.Outcome != outcome.Undetermined || sum.Outcome.Confidence != 0 {
		t.Errorf("outcome = %+v, want undetermined/0", sum.Outcome)
	}
	if sum.Claimant != nil || sum.Defendant != nil {
		t.Errorf("parties = %+v/%+v, want nil", sum.Claimant, sum.Defendant)
	}
	if len(sum.References) != 0 || len(sum.Monetary) != 0 || len(sum.MainRequests) != 0 {
		t.Errorf("expected empty collections: %+v", sum)
	}
	if sum.OverallConfidence != 0 {
		t.Errorf("overall confidence = %.3f, want 0", sum.OverallConfidence)
	}
	if sum.Excerpt != "" {
		t.Errorf("excerpt = %q, want empty", sum.Excerpt)
	}
	if sum.PipelineVersion == "" {
		t.Error("pipeline version must be stamped even on empty input")
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	s := newSummarizer(t)
	doc := Document{ID: "doc-1", Text: decisionText, CitationsHint: "Lei 8.036/90"}
	first := s.Summarize(context.Background(), doc)
	for i := 0; i < 3; i++ {
		if got := s.Summarize(context.Background(), doc); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs", i+1)
		}
	}
}

func TestSummarizePartiesHintFallback(t *testing.T) {
	s := newSummarizer(t)
	doc := Document{
		ID:          "doc-2",
		Text:        "Isto posto, julgo improcedente o pedido.",
		PartiesHint: "RECLAMANTE: ANA LIMA SILVA, CPF 111.222.333-44",
	}
	sum := s.Summarize(context.Background(), doc)
	if sum.Claimant == nil || sum.Claimant.Name != "ANA LIMA SILVA" {
		t.Fatalf("claimant = %+v, want from hint", sum.Claimant)
	}
	if sum.Outcome.Outcome != outcome.FavorableToDefendant {
		t.Fatalf("outcome = %s", sum.Outcome.Outcome)
	}
}

func TestSummarizeCitationHintWinsProvenance(t *testing.T) {
	s := newSummarizer(t)
	doc := Document{
		ID:            "doc-3",
		Text:          "Com fundamento no art. 7º da CLT, julgo procedente o pedido.",
		CitationsHint: "art. 7 da CLT; Lei 8.036/90",
	}
	sum := s.Summarize(context.Background(), doc)

	var article, statute *legalref.Reference
	for i := range sum.References {
		switch sum.References[i].Citation {
		case "Art. 7º CLT":
			article = &sum.References[i]
		case "Lei 8.036/1990":
			statute = &sum.References[i]
		}
	}
	if article == nil || article.Provenance != legalref.PreExisting {
		t.Fatalf("article = %+v, want deduplicated with pre-existing provenance", article)
	}
	if statute == nil || statute.Provenance != legalref.PreExisting {
		t.Fatalf("statute = %+v, want carried from hint", statute)
	}
	count := 0
	for _, r := range sum.References {
		if r.Kind == legalref.Article {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("article references = %d, want 1 after dedup", count)
	}
}

func TestPipelineVersionCarriesTaxonomyRevision(t *testing.T) {
	v := PipelineVersion()
	if !strings.Contains(v, "+tax"+taxonomy.Version) {
		t.Fatalf("version = %q", v)
	}
}
