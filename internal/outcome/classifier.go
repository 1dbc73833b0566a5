// Package outcome classifies the disposition of a labor-court decision by
// running six independent pattern-based methods over the text and combining
// their votes with fixed per-method weights and confidence ceilings.
package outcome

import (
	"math"
	"sort"
	"strings"

	"github.com/lfaria/juriscan/internal/taxonomy"
)

// contextWindow is how far around a discourse marker the direct lexicon is
// rescanned, in bytes.
const contextWindow = 250

// snippetRadius bounds evidence snippets around the first match.
const snippetRadius = 60

// Classifier is stateless apart from the injected taxonomy and is safe for
// concurrent use.
type Classifier struct {
	tax *taxonomy.Taxonomy
	cfg Config
}

func New(tax *taxonomy.Taxonomy, cfg Config) *Classifier {
	if cfg.PartialEpsilon <= 0 {
		cfg = DefaultConfig()
	}
	return &Classifier{tax: tax, cfg: cfg}
}

// Classify never fails: text with no recognizable disposition yields
// Undetermined with zero confidence and no evidence. Repeated calls on the
// same text produce identical results.
func (c *Classifier) Classify(text string) Classification {
	if strings.TrimSpace(text) == "" {
		return Classification{Outcome: Undetermined}
	}

	methods := []methodScan{
		c.scanDirect(text),
		c.scanSet(taxonomy.MethodInference, c.tax.Inference, text, taxonomy.InferenceWeight, taxonomy.InferenceCeiling),
		c.scanSet(taxonomy.MethodLaborRights, c.tax.LaborRights, text, taxonomy.LaborRightsWeight, taxonomy.LaborRightsCeiling),
		c.scanContext(text),
		c.scanStructure(text),
		c.scanSet(taxonomy.MethodRegister, c.tax.Register, text, taxonomy.RegisterWeight, taxonomy.RegisterCeiling),
	}

	var evidence []Evidence
	used := map[string]bool{}
	scores := map[string]float64{}
	// Aggregate vote and normalization mass per voting polarity.
	aggregate := map[taxonomy.Polarity]float64{}
	mass := map[taxonomy.Polarity]float64{}
	for _, m := range methods {
		if len(m.evidence) == 0 {
			continue
		}
		used[m.name] = true
		evidence = append(evidence, m.evidence...)
		for pol, raw := range m.raw {
			local := math.Min(raw/2, m.ceiling)
			scores[string(pol)] += m.weight * local
			if isVoting(pol) {
				aggregate[pol] += m.weight * local
				mass[pol] += m.weight * m.ceiling
			}
		}
	}

	if len(evidence) == 0 {
		return Classification{Outcome: Undetermined}
	}

	res := Classification{
		Evidence:    evidence,
		MethodsUsed: sortedKeys(used),
		Scores:      scores,
	}
	res.Outcome, res.Confidence = c.decide(aggregate, mass, scores, evidence)
	return res
}

// decide turns polarity aggregates into a label and a normalized confidence.
func (c *Classifier) decide(aggregate, mass map[taxonomy.Polarity]float64, scores map[string]float64, evidence []Evidence) (Label, float64) {
	fav := aggregate[taxonomy.Favorable]
	unf := aggregate[taxonomy.Unfavorable]
	par := aggregate[taxonomy.Partial]

	if fav == 0 && unf == 0 && par == 0 {
		// Only non-voting dispositions (settlement, extinction) matched.
		// The label stays Undetermined but the evidence still carries a
		// calibrated confidence so callers can tell it from silence.
		best := 0.0
		for _, pol := range []taxonomy.Polarity{taxonomy.Agreement, taxonomy.ExtinctWithMerits, taxonomy.ExtinctWithoutMerits} {
			if s := scores[string(pol)]; s > best {
				best = s
			}
		}
		return Undetermined, clamp01(best)
	}

	top, second := rank(fav, unf, par)

	// Opposing non-trivial signals close to each other read as a split
	// decision, not a win for whichever side scored marginally higher.
	if fav > 0 && unf > 0 {
		larger, smaller := math.Max(fav, unf), math.Min(fav, unf)
		if larger-smaller <= c.cfg.PartialEpsilon*larger {
			agg := (fav+unf)/2 + par
			den := mass[taxonomy.Favorable] + mass[taxonomy.Unfavorable] + mass[taxonomy.Partial]
			return PartiallyFavorable, normalize(agg, den)
		}
	}

	if top.score == second.score && top.score > 0 {
		// Exact tie between distinct labels: prefer the label backed by
		// more distinct methods. With equal backing no label can be
		// picked, but the evidence is real, so the confidence stays
		// calibrated over the combined mass rather than dropping to zero.
		a, b := methodCount(evidence, top.polarity), methodCount(evidence, second.polarity)
		switch {
		case a > b:
		case b > a:
			top = second
		default:
			return Undetermined, normalize(top.score, mass[top.polarity]+mass[second.polarity])
		}
	}

	label := labelFor(top.polarity)
	return label, normalize(top.score, mass[top.polarity])
}

type ranked struct {
	polarity taxonomy.Polarity
	score    float64
}

func rank(fav, unf, par float64) (ranked, ranked) {
	all := []ranked{
		{taxonomy.Favorable, fav},
		{taxonomy.Unfavorable, unf},
		{taxonomy.Partial, par},
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })
	return all[0], all[1]
}

func labelFor(pol taxonomy.Polarity) Label {
	switch pol {
	case taxonomy.Favorable:
		return FavorableToClaimant
	case taxonomy.Unfavorable:
		return FavorableToDefendant
	case taxonomy.Partial:
		return PartiallyFavorable
	}
	return Undetermined
}

func isVoting(pol taxonomy.Polarity) bool {
	return pol == taxonomy.Favorable || pol == taxonomy.Unfavorable || pol == taxonomy.Partial
}

func normalize(agg, mass float64) float64 {
	if mass <= 0 {
		return 0
	}
	return clamp01(agg / mass)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func methodCount(evidence []Evidence, pol taxonomy.Polarity) int {
	seen := map[string]bool{}
	for _, e := range evidence {
		if e.Polarity == pol {
			seen[e.Method] = true
		}
	}
	return len(seen)
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// methodScan is the outcome of one method pass before combination.
type methodScan struct {
	name    string
	weight  float64
	ceiling float64
	// raw accumulates pattern weight per occurrence, per polarity, before
	// the score/2 normalization and the ceiling cap.
	raw      map[taxonomy.Polarity]float64
	evidence []Evidence
}

func (c *Classifier) scanDirect(text string) methodScan {
	return c.scanSet(taxonomy.MethodDirect, c.tax.Direct, text, taxonomy.DirectWeight, taxonomy.DirectCeiling)
}

// scanSet runs one pattern table over the full text, counting every
// occurrence.
func (c *Classifier) scanSet(name string, set []taxonomy.Compiled, text string, weight, ceiling float64) methodScan {
	m := methodScan{name: name, weight: weight, ceiling: ceiling, raw: map[taxonomy.Polarity]float64{}}
	for _, p := range set {
		locs := p.Re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		contribution := p.Weight * float64(len(locs))
		m.raw[p.Polarity] += contribution
		m.evidence = append(m.evidence, Evidence{
			Method:       name,
			Tag:          p.Tag,
			Polarity:     p.Polarity,
			Snippet:      snippet(text, locs[0][0], locs[0][1]),
			Weight:       p.Weight,
			Contribution: contribution,
		})
	}
	return m
}

// scanContext finds discourse markers and rescans a window around each with
// the direct lexicon; a dispositive verb near "julgo" means far more than
// the same verb in the report of the parties' allegations.
func (c *Classifier) scanContext(text string) methodScan {
	m := methodScan{name: taxonomy.MethodContext, weight: taxonomy.ContextWeight, ceiling: taxonomy.ContextCeiling, raw: map[taxonomy.Polarity]float64{}}
	for _, marker := range c.tax.Context {
		for _, loc := range marker.Re.FindAllStringIndex(text, -1) {
			lo := max(0, loc[0]-contextWindow)
			hi := min(len(text), loc[1]+contextWindow)
			c.rescan(&m, text, text[lo:hi], lo, marker.Weight, marker.Tag)
		}
	}
	return m
}

// scanStructure matches whole dispositive constructions and rescans each
// matched span with the direct lexicon.
func (c *Classifier) scanStructure(text string) methodScan {
	m := methodScan{name: taxonomy.MethodStructure, weight: taxonomy.StructureWeight, ceiling: taxonomy.StructureCeiling, raw: map[taxonomy.Polarity]float64{}}
	for _, shape := range c.tax.Structure {
		for _, loc := range shape.Re.FindAllStringIndex(text, -1) {
			c.rescan(&m, text, text[loc[0]:loc[1]], loc[0], shape.Weight, shape.Tag)
		}
	}
	return m
}

// rescan applies the direct lexicon to a span, scaling each hit by the
// weight of the marker that selected the span.
func (c *Classifier) rescan(m *methodScan, text, span string, base int, markerWeight float64, markerTag string) {
	for _, p := range c.tax.Direct {
		if !isVoting(p.Polarity) {
			continue
		}
		locs := p.Re.FindAllStringIndex(span, -1)
		if len(locs) == 0 {
			continue
		}
		contribution := markerWeight * p.Weight * float64(len(locs))
		m.raw[p.Polarity] += contribution
		m.evidence = append(m.evidence, Evidence{
			Method:       m.name,
			Tag:          markerTag + "/" + p.Tag,
			Polarity:     p.Polarity,
			Snippet:      snippet(text, base+locs[0][0], base+locs[0][1]),
			Weight:       markerWeight * p.Weight,
			Contribution: contribution,
		})
	}
}

// snippet cuts a whitespace-normalized excerpt around [start,end).
func snippet(text string, start, end int) string {
	lo := max(0, start-snippetRadius)
	hi := min(len(text), end+snippetRadius)
	// Do not split multibyte runes at the cut points.
	for lo > 0 && lo < len(text) && !isRuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !isRuneStart(text[hi]) {
		hi++
	}
	return strings.Join(strings.Fields(text[lo:hi]), " ")
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
