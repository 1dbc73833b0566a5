// Package parties pulls the litigants out of a labor-court decision:
// claimant and defendant blocks, their tax identifiers, addresses and
// counsel, each with a per-record confidence.
package parties

import (
	"regexp"
	"strings"
)

// Role says which side of the dispute a record belongs to.
type Role string

const (
	Claimant  Role = "CLAIMANT"
	Defendant Role = "DEFENDANT"
)

// Record is one extracted litigant. At most one record exists per role.
type Record struct {
	Role       Role     `json:"role"`
	Name       string   `json:"name"`
	TaxID      string   `json:"tax_id,omitempty"`
	Address    string   `json:"address,omitempty"`
	Counsel    []string `json:"counsel,omitempty"`
	Confidence float64  `json:"confidence"`
}

// windowSize bounds how far past a role keyword the secondary passes
// (tax id, address, counsel) look, when no other role block starts first.
const windowSize = 400

var (
	claimantRe  = regexp.MustCompile(`(?i)\b(?:reclamante|requerente|autor[a]?|exequente|sindicato\s+autor)\s*[:\-]?\s+((?-i:[A-ZÀ-Ú])[^\n,;]{2,119})`)
	defendantRe = regexp.MustCompile(`(?i)\b(?:reclamad[ao]|requerid[ao]|réu|executad[ao])\s*[:\-]?\s+((?-i:[A-ZÀ-Ú])[^\n,;]{2,119})`)
	anyRoleRe   = regexp.MustCompile(`(?i)\b(?:reclamante|reclamad[ao]|requerente|requerid[ao]|autor[a]?|réu|exequente|executad[ao])\b`)

	cpfRe  = regexp.MustCompile(`\d{3}\.?\d{3}\.?\d{3}-?\d{2}`)
	cnpjRe = regexp.MustCompile(`\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}`)

	addressRe = regexp.MustCompile(`(?i)(?:residente|domiciliad[ao]|com\s+endereço|com\s+sede|estabelecid[ao]|situad[ao])\s+(?:e\s+domiciliad[ao]\s+)?(?:na|no|em|à|ao)?\s*([^\n;]{5,160})`)
	counselRe = regexp.MustCompile(`(?i)(?:advogad[ao]|procurador[a]?)\s*[:\-]?\s*(?:dr[a]?\.?\s+)?([^\n,;(]{3,80})`)

	// A plausible personal or corporate name: letters (accents included),
	// spaces and corporate punctuation, at least two words.
	nameRe = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ][A-Za-zÀ-ÖØ-öø-ÿ0-9\s\.&/\-]+\s+[A-Za-zÀ-ÖØ-öø-ÿ0-9\.&/\-]+$`)

	// Tokens that mark the end of the name inside a captured block.
	nameCutRe = regexp.MustCompile(`(?i)\s+(?:cpf|cnpj|inscrit[ao]|portador[a]?|brasileir[ao]|residente|domiciliad[ao]|com\s+sede|representad[ao])\b.*$`)
)

// Extract finds at most one claimant and one defendant in text. A missing
// role yields nil, never a placeholder. When only one side is found its
// confidence is discounted, since one-sided captions are usually noise.
func Extract(text string) (claimant, defendant *Record) {
	claimant = extractRole(text, Claimant, claimantRe)
	defendant = extractRole(text, Defendant, defendantRe)
	if (claimant == nil) != (defendant == nil) {
		if claimant != nil {
			claimant.Confidence *= 0.8
		}
		if defendant != nil {
			defendant.Confidence *= 0.8
		}
	}
	return claimant, defendant
}

// extractRole keeps the strongest match for the role, earliest on ties.
func extractRole(text string, role Role, re *regexp.Regexp) *Record {
	var best *Record
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		name := cleanName(text[loc[2]:loc[3]])
		if !plausibleName(name) {
			continue
		}
		window := roleWindow(text, loc[1])
		rec := &Record{Role: role, Name: name}
		rec.TaxID = findTaxID(window, role)
		if m := addressRe.FindStringSubmatch(window); m != nil {
			rec.Address = strings.TrimRight(strings.TrimSpace(m[1]), " .")
		}
		rec.Counsel = findCounsel(window)
		rec.Confidence = score(rec)
		if best == nil || rec.Confidence > best.Confidence {
			best = rec
		}
	}
	return best
}

// roleWindow spans from the end of the role keyword to the start of the
// next role keyword, capped at windowSize.
func roleWindow(text string, from int) string {
	to := min(len(text), from+windowSize)
	if next := anyRoleRe.FindStringIndex(text[from:to]); next != nil {
		to = from + next[0]
	}
	return text[from:to]
}

func cleanName(raw string) string {
	name := nameCutRe.ReplaceAllString(raw, "")
	name = strings.Join(strings.Fields(name), " ")
	return strings.TrimRight(name, " .:-")
}

func plausibleName(name string) bool {
	return len(name) >= 5 && nameRe.MatchString(name)
}

// findTaxID prefers the identifier shape typical of the role (CPF for the
// worker, CNPJ for the employer) but accepts the other shape.
func findTaxID(window string, role Role) string {
	first, second := cpfRe, cnpjRe
	if role == Defendant {
		first, second = cnpjRe, cpfRe
	}
	if m := first.FindString(window); m != "" {
		return m
	}
	return second.FindString(window)
}

func findCounsel(window string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range counselRe.FindAllStringSubmatch(window, -1) {
		name := cleanName(m[1])
		// Drop the OAB registration when it trails the name.
		if i := strings.Index(strings.ToUpper(name), "OAB"); i > 0 {
			name = strings.TrimRight(strings.TrimSpace(name[:i]), " .:-")
		}
		if !plausibleName(name) || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// score starts from a plausible-name base and rewards every independently
// confirmed attribute, capped at 1. Summed in tenths so a fully confirmed
// record lands on exactly 1.0.
func score(rec *Record) float64 {
	tenths := 5
	if len(strings.Fields(rec.Name)) >= 3 || len(rec.Name) >= 15 {
		tenths += 2
	}
	if rec.TaxID != "" {
		tenths += 2
	}
	if rec.Address != "" {
		tenths++
	}
	return float64(min(tenths, 10)) / 10
}
