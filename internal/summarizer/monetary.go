package summarizer

import (
	"regexp"
	"strconv"
	"strings"
)

// maxMonetary caps how many distinct amounts one summary carries.
const maxMonetary = 10

// contextRadius bounds the context excerpt around an amount, in bytes.
const contextRadius = 40

var (
	currencyRe = regexp.MustCompile(`R\$\s*(\d{1,3}(?:\.\d{3})*(?:,\d{1,2})?|\d+(?:,\d{1,2})?)`)
	reaisRe    = regexp.MustCompile(`(?i)\b(\d{1,3}(?:\.\d{3})*(?:,\d{1,2})?)\s+reais\b`)
	scaledRe   = regexp.MustCompile(`(?i)\b(\d+(?:,\d+)?)\s+(mil|milhão|milhões|bilhão|bilhões)(?:\s+(?:de\s+)?reais)?\b`)
)

var scaleFactors = map[string]float64{
	"mil":     1e3,
	"milhão":  1e6,
	"milhões": 1e6,
	"bilhão":  1e9,
	"bilhões": 1e9,
}

// extractMonetary finds money amounts in position order, deduplicated on
// surface text.
func extractMonetary(text string) []MonetaryMention {
	type hit struct {
		pos     int
		mention MonetaryMention
	}
	var hits []hit

	for _, loc := range currencyRe.FindAllStringSubmatchIndex(text, -1) {
		value, ok := parseBRL(text[loc[2]:loc[3]])
		if !ok {
			continue
		}
		hits = append(hits, hit{loc[0], MonetaryMention{
			Text:    text[loc[0]:loc[1]],
			Value:   value,
			Context: contextAround(text, loc[0], loc[1]),
		}})
	}
	for _, loc := range reaisRe.FindAllStringSubmatchIndex(text, -1) {
		value, ok := parseBRL(text[loc[2]:loc[3]])
		if !ok {
			continue
		}
		hits = append(hits, hit{loc[0], MonetaryMention{
			Text:    text[loc[0]:loc[1]],
			Value:   value,
			Context: contextAround(text, loc[0], loc[1]),
		}})
	}
	for _, loc := range scaledRe.FindAllStringSubmatchIndex(text, -1) {
		base, ok := parseBRL(text[loc[2]:loc[3]])
		if !ok {
			continue
		}
		scale := scaleFactors[strings.ToLower(text[loc[4]:loc[5]])]
		hits = append(hits, hit{loc[0], MonetaryMention{
			Text:    text[loc[0]:loc[1]],
			Value:   base * scale,
			Context: contextAround(text, loc[0], loc[1]),
		}})
	}

	// Stable insertion sort by position keeps equal positions in pattern
	// order, which is fixed.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	var out []MonetaryMention
	seen := map[string]bool{}
	for _, h := range hits {
		if seen[h.mention.Text] {
			continue
		}
		seen[h.mention.Text] = true
		out = append(out, h.mention)
		if len(out) == maxMonetary {
			break
		}
	}
	return out
}

// parseBRL converts Brazilian number formatting (dot thousands, comma
// decimals) to a float.
func parseBRL(raw string) (float64, bool) {
	normalized := strings.ReplaceAll(raw, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func contextAround(text string, start, end int) string {
	lo := max(0, start-contextRadius)
	hi := min(len(text), end+contextRadius)
	for lo > 0 && lo < len(text) && text[lo]&0xC0 == 0x80 {
		lo--
	}
	for hi < len(text) && text[hi]&0xC0 == 0x80 {
		hi++
	}
	return strings.Join(strings.Fields(text[lo:hi]), " ")
}
