// Package report renders one stored summary as a human-readable markdown
// report, with HTML and PDF output on top.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/lfaria/juriscan/internal/parties"
	"github.com/lfaria/juriscan/internal/summarizer"
)

// BuildMarkdown renders the full report for one summary.
func BuildMarkdown(sum summarizer.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Análise de Decisão Trabalhista\n\n")
	fmt.Fprintf(&b, "- Documento: %s\n", sum.DocumentID)
	fmt.Fprintf(&b, "- Pipeline: %s\n", sum.PipelineVersion)
	fmt.Fprintf(&b, "- Data: %s\n\n", time.Now().Format(time.RFC3339))

	fmt.Fprintf(&b, "## Resultado\n\n")
	fmt.Fprintf(&b, "- Desfecho: **%s**\n", sum.Outcome.Outcome)
	fmt.Fprintf(&b, "- Confiança do desfecho: %.2f\n", sum.Outcome.Confidence)
	fmt.Fprintf(&b, "- Confiança geral: %.2f\n", sum.OverallConfidence)
	if len(sum.Outcome.MethodsUsed) > 0 {
		fmt.Fprintf(&b, "- Métodos: %s\n", strings.Join(sum.Outcome.MethodsUsed, ", "))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Partes\n\n")
	appendParty(&b, "Reclamante", sum.Claimant)
	appendParty(&b, "Reclamado", sum.Defendant)

	fmt.Fprintf(&b, "## Referências Legais\n\n")
	if len(sum.References) == 0 {
		fmt.Fprintf(&b, "Nenhuma referência identificada.\n\n")
	} else {
		fmt.Fprintf(&b, "| Tipo | Citação | Origem |\n|---|---|---|\n")
		for _, r := range sum.References {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", r.Kind, r.Citation, r.Provenance)
		}
		b.WriteString("\n")
	}

	if len(sum.MainRequests) > 0 {
		fmt.Fprintf(&b, "## Pedidos Principais\n\n")
		for _, req := range sum.MainRequests {
			fmt.Fprintf(&b, "- %s\n", req)
		}
		b.WriteString("\n")
	}

	if len(sum.Monetary) > 0 {
		fmt.Fprintf(&b, "## Valores\n\n")
		fmt.Fprintf(&b, "| Menção | Valor (R$) | Contexto |\n|---|---|---|\n")
		for _, m := range sum.Monetary {
			fmt.Fprintf(&b, "| %s | %.2f | %s |\n", m.Text, m.Value, sanitizeCell(m.Context))
		}
		b.WriteString("\n")
	}

	if sum.Excerpt != "" {
		fmt.Fprintf(&b, "## Trecho Dispositivo\n\n> %s\n\n", sanitizeLine(sum.Excerpt))
	}

	fmt.Fprintf(&b, "## Apêndice\n\n")
	fmt.Fprintf(&b, "### Evidências do Desfecho (JSON)\n\n```json\n%s\n```\n", prettyJSON(sum.Outcome.Evidence))

	return b.String()
}

func appendParty(b *strings.Builder, title string, rec *parties.Record) {
	fmt.Fprintf(b, "### %s\n\n", title)
	if rec == nil {
		fmt.Fprintf(b, "- Não identificado\n\n")
		return
	}
	fmt.Fprintf(b, "- Nome: %s\n", rec.Name)
	if rec.TaxID != "" {
		fmt.Fprintf(b, "- Documento: %s\n", rec.TaxID)
	}
	if rec.Address != "" {
		fmt.Fprintf(b, "- Endereço: %s\n", rec.Address)
	}
	for _, c := range rec.Counsel {
		fmt.Fprintf(b, "- Advogado: %s\n", c)
	}
	fmt.Fprintf(b, "- Confiança: %.2f\n\n", rec.Confidence)
}

// RenderHTML converts the markdown report to a standalone HTML document.
func RenderHTML(markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>Análise de Decisão</title>" +
		"<style>" + styleCSS + "</style></head><body><main class='report'>" +
		content.String() +
		"</main></body></html>", nil
}

const styleCSS = `body{font-family:Georgia,serif;color:#1c1917;margin:0;background:#f9f7f3;}` +
	`.report{max-width:860px;margin:0 auto;padding:2rem 1.5rem;}` +
	`h1,h2,h3{font-family:Helvetica,Arial,sans-serif;}` +
	`table{width:100%;border-collapse:collapse;font-size:0.85rem;}` +
	`th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}` +
	`thead th{background:#f1f5f9;}` +
	`blockquote{border-left:3px solid #92400e;margin:0;padding:0.25rem 0.75rem;color:#44403c;}` +
	`code,pre{font-size:0.8rem;}`

func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func sanitizeLine(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if s == "" {
		return "-"
	}
	return s
}

func sanitizeCell(s string) string {
	return strings.ReplaceAll(sanitizeLine(s), "|", "\\|")
}
