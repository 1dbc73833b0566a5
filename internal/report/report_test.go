package report

import (
	"strings"
	"testing"

	"github.com/lfaria/juriscan/internal/legalref"
	"github.com/lfaria/juriscan/internal/outcome"
	"github.com/lfaria/juriscan/internal/parties"
	"github.com/lfaria/juriscan/internal/summarizer"
)

func sampleSummary() summarizer.Summary {
	return summarizer.Summary{
		DocumentID: "doc-42",
		Outcome: outcome.Classification{
			Outcome:     outcome.PartiallyFavorable,
			Confidence:  0.91,
			MethodsUsed: []string{"direct_patterns", "semantic_context"},
		},
		Claimant: &parties.Record{
			Role: parties.Claimant, Name: "JOÃO DA SILVA SANTOS",
			TaxID: "123.456.789-01", Confidence: 0.9,
		},
		References: []legalref.Reference{
			{Kind: legalref.Article, Citation: "Art. 7º CLT", Provenance: legalref.Extracted},
		},
		Monetary:          []summarizer.MonetaryMention{{Text: "R$ 15.000,00", Value: 15000, Context: "pagamento de R$ 15.000,00 | com pipe"}},
		MainRequests:      []string{"horas extras"},
		Excerpt:           "Isto posto, julgo parcialmente procedentes os pedidos.",
		OverallConfidence: 0.85,
		PipelineVersion:   summarizer.PipelineVersion(),
	}
}

func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown(sampleSummary())
	for _, want := range []string{
		"# Análise de Decisão Trabalhista",
		"doc-42",
		"**PARTIALLY_FAVORABLE**",
		"JOÃO DA SILVA SANTOS",
		"| ARTICLE | Art. 7º CLT | EXTRACTED |",
		"- horas extras",
		"R$ 15.000,00",
		"julgo parcialmente procedentes",
		summarizer.PipelineVersion(),
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if !strings.Contains(md, `\| com pipe`) {
		t.Error("pipe in table cell must be escaped")
	}
}

func TestBuildMarkdownMissingParts(t *testing.T) {
	md := BuildMarkdown(summarizer.Summary{DocumentID: "empty", PipelineVersion: summarizer.PipelineVersion()})
	if !strings.Contains(md, "Não identificado") {
		t.Error("missing-party placeholder expected")
	}
	if !strings.Contains(md, "Nenhuma referência identificada") {
		t.Error("missing-references line expected")
	}
	if strings.Contains(md, "## Pedidos Principais") || strings.Contains(md, "## Valores") {
		t.Error("empty sections must be omitted")
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(BuildMarkdown(sampleSummary()))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	for _, want := range []string{
		"<!doctype html>",
		"<h1", "Análise de Decisão Trabalhista",
		"<table>", "Art. 7º CLT",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}
