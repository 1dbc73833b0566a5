// Package legalref extracts statutory and jurisprudential citations from
// decision text, normalizes each to a canonical surface form and
// deduplicates across sources with provenance.
package legalref

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Kind classifies a citation. The declaration order below is the fixed
// grouping order of merged output.
type Kind string

const (
	Article   Kind = "ARTICLE"
	Statute   Kind = "STATUTE"
	Sumula    Kind = "SUMULA"
	Decree    Kind = "DECREE"
	Ordinance Kind = "ORDINANCE"
)

var kindOrder = map[Kind]int{Article: 0, Statute: 1, Sumula: 2, Decree: 3, Ordinance: 4}

// Provenance says where a reference came from.
type Provenance string

const (
	Extracted   Provenance = "EXTRACTED"
	PreExisting Provenance = "PRE_EXISTING"
)

// Reference is one canonical citation. Uniqueness is on (Kind, Citation).
type Reference struct {
	Kind       Kind       `json:"kind"`
	Citation   string     `json:"citation"`
	Provenance Provenance `json:"provenance"`
}

var (
	// "art. 7º, IV, da CLT", "artigo 477, § 8º, da CLT"
	articleRe = regexp.MustCompile(`(?i)\bart(?:igo)?s?\.?\s*(\d{1,4})[º°]?(?:\s*-\s*([A-Za-z])\b)?(?:\s*,?\s*§\s*(\d{1,3})[º°]?)?[^.;\n]{0,40}?\b(?:d[ao]\s+)?(CLT|CF/?(?:88)?|CPC|CDC|CC|CP|ADCT|Constituição\s+Federal|Código\s+Civil|Código\s+de\s+Processo\s+Civil|Código\s+Penal|Código\s+de\s+Defesa\s+do\s+Consumidor|Consolidação\s+das\s+Leis\s+do\s+Trabalho)\b`)
	// "CLT, art. 7º" surface order
	articleCodeFirstRe = regexp.MustCompile(`(?i)\b(CLT|CF/?(?:88)?|CPC|CDC|CC|CP|ADCT)\s*,?\s*art(?:igo)?s?\.?\s*(\d{1,4})[º°]?(?:\s*-\s*([A-Za-z])\b)?(?:\s*,?\s*§\s*(\d{1,3})[º°]?)?`)

	statuteRe = regexp.MustCompile(`(?i)\b(lei\s+complementar|medida\s+provisória|lei)\s+(?:n[º°o]?\.?\s*)?(\d{1,3}(?:\.\d{3})*|\d{1,6})\s*,?\s*(?:/\s*|de\s+)(\d{4}|\d{2})\b`)

	decreeLawRe = regexp.MustCompile(`(?i)\bdecreto[\s-]lei\s+(?:n[º°o]?\.?\s*)?(\d{1,3}(?:\.\d{3})*|\d{1,6})\s*,?\s*(?:/\s*|de\s+)(\d{4}|\d{2})\b`)
	decreeRe    = regexp.MustCompile(`(?i)\bdecreto\s+(?:n[º°o]?\.?\s*)?(\d{1,3}(?:\.\d{3})*|\d{1,6})\s*,?\s*(?:/\s*|de\s+)(\d{4}|\d{2})\b`)

	sumulaRe    = regexp.MustCompile(`(?i)\bsúmulas?\s+(?:n[º°o]?\.?\s*)?(\d{1,4})(?:\s+d[oe]\s+(TST|STF|STJ))?`)
	ordinanceRe = regexp.MustCompile(`(?i)\b(portaria|instrução\s+normativa)\s+(?:n[º°o]?\.?\s*)?(\d{1,3}(?:\.\d{3})*|\d{1,6})\s*,?\s*(?:/\s*|de\s+)(\d{4}|\d{2})\b`)
)

var shortCodes = map[string]bool{
	"CLT": true, "CF": true, "CPC": true, "CDC": true,
	"CC": true, "CP": true, "ADCT": true,
}

// canonicalCode maps every accepted surface form of a code to its
// abbreviation, or "" when the form is not recognized.
func canonicalCode(code string) string {
	key := strings.ToUpper(strings.Join(strings.Fields(code), " "))
	key = strings.ReplaceAll(key, "/", "")
	switch key {
	case "CF88":
		return "CF"
	case "CONSTITUIÇÃO FEDERAL":
		return "CF"
	case "CÓDIGO CIVIL":
		return "CC"
	case "CÓDIGO DE PROCESSO CIVIL":
		return "CPC"
	case "CÓDIGO PENAL":
		return "CP"
	case "CÓDIGO DE DEFESA DO CONSUMIDOR":
		return "CDC"
	case "CONSOLIDAÇÃO DAS LEIS DO TRABALHO":
		return "CLT"
	}
	if shortCodes[key] {
		return key
	}
	return ""
}

// Extract finds every citation in text, canonicalized, provenance Extracted.
// The result is already deduplicated but not yet merged or ordered; callers
// combine it with pre-existing references through Merge.
func Extract(text string) []Reference {
	return scan(text, Extracted)
}

// ParseHint runs the same patterns over a pre-existing citation string
// (typically carried alongside the document) and marks the results
// PreExisting.
func ParseHint(hint string) []Reference {
	return scan(hint, PreExisting)
}

func scan(text string, prov Provenance) []Reference {
	var out []Reference
	add := func(kind Kind, citation string) {
		if citation == "" {
			return
		}
		out = append(out, Reference{Kind: kind, Citation: citation, Provenance: prov})
	}

	for _, m := range articleRe.FindAllStringSubmatch(text, -1) {
		add(Article, canonicalArticle(m[1], m[2], m[3], m[4]))
	}
	for _, m := range articleCodeFirstRe.FindAllStringSubmatch(text, -1) {
		add(Article, canonicalArticle(m[2], m[3], m[4], m[1]))
	}
	// Decree-laws first: their spans shadow the bare "lei <n>/<year>" the
	// statute pattern would otherwise see inside "decreto-lei".
	decreeLawSpans := decreeLawRe.FindAllStringIndex(text, -1)
	for _, loc := range decreeLawSpans {
		m := decreeLawRe.FindStringSubmatch(text[loc[0]:loc[1]])
		add(Statute, canonicalNumbered("Decreto-Lei", m[1], m[2]))
	}
	for _, loc := range statuteRe.FindAllStringSubmatchIndex(text, -1) {
		if insideAny(loc[0], decreeLawSpans) {
			continue
		}
		m := statuteRe.FindStringSubmatch(text[loc[0]:loc[1]])
		add(Statute, canonicalNumbered(canonicalStatutePrefix(m[1]), m[2], m[3]))
	}
	for _, m := range decreeRe.FindAllStringSubmatch(text, -1) {
		add(Decree, canonicalNumbered("Decreto", m[1], m[2]))
	}
	for _, m := range sumulaRe.FindAllStringSubmatch(text, -1) {
		court := strings.ToUpper(m[2])
		if court == "" {
			court = "TST"
		}
		add(Sumula, fmt.Sprintf("Súmula %s %s", m[1], court))
	}
	for _, m := range ordinanceRe.FindAllStringSubmatch(text, -1) {
		add(Ordinance, canonicalNumbered(canonicalStatutePrefix(m[1]), m[2], m[3]))
	}
	return Merge(out)
}

func insideAny(pos int, spans [][]int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}

// Merge deduplicates on (Kind, Citation), preferring PreExisting provenance,
// and returns the references grouped in the fixed kind order with citations
// sorted inside each kind. Merging merged output is a no-op.
func Merge(refs ...[]Reference) []Reference {
	byKey := map[string]Reference{}
	for _, set := range refs {
		for _, r := range set {
			key := string(r.Kind) + "|" + r.Citation
			prev, ok := byKey[key]
			if !ok || (prev.Provenance == Extracted && r.Provenance == PreExisting) {
				byKey[key] = r
			}
		}
	}
	out := make([]Reference, 0, len(byKey))
	for _, r := range byKey {
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if kindOrder[out[i].Kind] != kindOrder[out[j].Kind] {
			return kindOrder[out[i].Kind] < kindOrder[out[j].Kind]
		}
		return out[i].Citation < out[j].Citation
	})
	return out
}

// canonicalArticle renders "Art. 7º CLT", "Art. 71-A CLT",
// "Art. 477 §8º CLT". The ordinal marker follows Portuguese usage and only
// decorates the numbers one through nine.
func canonicalArticle(number, letter, paragraph, code string) string {
	canonical := canonicalCode(code)
	if canonical == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("Art. ")
	b.WriteString(ordinal(number))
	if letter != "" {
		b.WriteString("-")
		b.WriteString(strings.ToUpper(letter))
	}
	if paragraph != "" {
		b.WriteString(" §")
		b.WriteString(ordinal(paragraph))
	}
	b.WriteString(" ")
	b.WriteString(canonical)
	return b.String()
}

// ordinal appends º to single-digit article and paragraph numbers.
func ordinal(number string) string {
	n, err := strconv.Atoi(number)
	if err != nil {
		return number
	}
	if n >= 1 && n <= 9 {
		return number + "º"
	}
	return number
}

func canonicalStatutePrefix(raw string) string {
	switch strings.ToLower(strings.Join(strings.Fields(raw), " ")) {
	case "lei complementar":
		return "Lei Complementar"
	case "medida provisória":
		return "Medida Provisória"
	case "instrução normativa":
		return "Instrução Normativa"
	case "portaria":
		return "Portaria"
	default:
		return "Lei"
	}
}

// canonicalNumbered renders "<prefix> 8.213/1991": thousands separators
// re-derived from the bare digits, two-digit years expanded.
func canonicalNumbered(prefix, number, year string) string {
	return fmt.Sprintf("%s %s/%s", prefix, groupThousands(strings.ReplaceAll(number, ".", "")), expandYear(year))
}

func groupThousands(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// expandYear turns two-digit years into four digits. Brazilian labor
// legislation spans both centuries, so the split is at the current decade.
func expandYear(year string) string {
	if len(year) == 4 {
		return year
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return year
	}
	if n <= 29 {
		return fmt.Sprintf("20%02d", n)
	}
	return fmt.Sprintf("19%02d", n)
}
