// Package taxonomy holds the versioned, categorized text patterns that drive
// every extractor in the pipeline. The taxonomy is built once at process
// start, validated eagerly, and treated as read-only afterwards; per-document
// code never compiles a pattern.
package taxonomy

import (
	"fmt"
	"regexp"
)

// Version identifies the pattern revision. It participates in the pipeline
// version stamp, so any change to the tables in patterns.go or to the method
// weights below must bump it.
const Version = "2026.08"

// Polarity classifies which side of the dispute a matched pattern supports.
type Polarity string

const (
	Favorable   Polarity = "favorable"
	Unfavorable Polarity = "unfavorable"
	Partial     Polarity = "partial"

	// Dispositions that end a case without a win for either side. They are
	// recorded in the evidence trail but do not vote for an outcome label.
	Agreement            Polarity = "agreement"
	ExtinctWithMerits    Polarity = "extinct_with_merits"
	ExtinctWithoutMerits Polarity = "extinct_without_merits"
	ContextMarker        Polarity = "context"
)

// Method names, one per independent classification pass.
const (
	MethodDirect      = "direct_patterns"
	MethodInference   = "inference"
	MethodLaborRights = "labor_rights"
	MethodContext     = "semantic_context"
	MethodStructure   = "document_structure"
	MethodRegister    = "legal_register"
)

// Per-method vote weights and confidence ceilings. A method's locally
// computed confidence is capped at its ceiling before it is multiplied by
// its weight; the direct lexicon is the only fully trusted method.
const (
	DirectWeight  = 1.0
	DirectCeiling = 1.0

	InferenceWeight  = 0.6
	InferenceCeiling = 0.8

	LaborRightsWeight  = 0.8
	LaborRightsCeiling = 0.88

	ContextWeight  = 0.9
	ContextCeiling = 0.9

	StructureWeight  = 0.7
	StructureCeiling = 0.7

	RegisterWeight  = 0.7
	RegisterCeiling = 0.7
)

// Pattern is one raw taxonomy entry before compilation.
type Pattern struct {
	Expr     string
	Weight   float64
	Tag      string
	Polarity Polarity
}

// Compiled is a validated, ready-to-scan taxonomy entry.
type Compiled struct {
	Re       *regexp.Regexp
	Weight   float64
	Tag      string
	Polarity Polarity
}

// Taxonomy is the immutable set of compiled pattern categories.
type Taxonomy struct {
	Direct      []Compiled
	Inference   []Compiled
	LaborRights []Compiled
	Context     []Compiled
	Structure   []Compiled
	Register    []Compiled
}

// New compiles every pattern table. A malformed expression is a configuration
// defect and fails construction immediately rather than being skipped at
// per-document time.
func New() (*Taxonomy, error) {
	t := &Taxonomy{}
	for _, set := range []struct {
		name string
		raw  []Pattern
		dst  *[]Compiled
	}{
		{"direct", directPatterns, &t.Direct},
		{"inference", inferencePatterns, &t.Inference},
		{"labor_rights", laborRightPatterns, &t.LaborRights},
		{"context", contextPatterns, &t.Context},
		{"structure", structurePatterns, &t.Structure},
		{"register", registerPatterns, &t.Register},
	} {
		compiled, err := compileSet(set.name, set.raw)
		if err != nil {
			return nil, err
		}
		*set.dst = compiled
	}
	return t, nil
}

func compileSet(name string, raw []Pattern) ([]Compiled, error) {
	out := make([]Compiled, 0, len(raw))
	for _, p := range raw {
		if p.Weight <= 0 || p.Weight > 1 {
			return nil, fmt.Errorf("taxonomy: %s/%s: weight %v out of (0,1]", name, p.Tag, p.Weight)
		}
		re, err := regexp.Compile("(?i)" + p.Expr)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: %s/%s: %w", name, p.Tag, err)
		}
		out = append(out, Compiled{Re: re, Weight: p.Weight, Tag: p.Tag, Polarity: p.Polarity})
	}
	return out, nil
}
