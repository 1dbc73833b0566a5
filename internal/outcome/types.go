package outcome

import "github.com/lfaria/juriscan/internal/taxonomy"

// Label is the case outcome from the claimant's point of view.
type Label string

const (
	FavorableToClaimant  Label = "FAVORABLE_TO_CLAIMANT"
	FavorableToDefendant Label = "FAVORABLE_TO_DEFENDANT"
	PartiallyFavorable   Label = "PARTIALLY_FAVORABLE"
	Undetermined         Label = "UNDETERMINED"
)

// Evidence is one pattern hit that contributed to the classification.
// The slice is append-only and kept in discovery order.
type Evidence struct {
	Method       string            `json:"method"`
	Tag          string            `json:"tag"`
	Polarity     taxonomy.Polarity `json:"polarity"`
	Snippet      string            `json:"snippet"`
	Weight       float64           `json:"weight"`
	Contribution float64           `json:"contribution"`
}

// Classification is the classifier's full answer for one document.
type Classification struct {
	Outcome    Label      `json:"outcome"`
	Confidence float64    `json:"confidence"`
	Evidence   []Evidence `json:"evidence,omitempty"`

	// MethodsUsed lists the distinct methods that produced evidence,
	// sorted, for audit.
	MethodsUsed []string `json:"methods_used,omitempty"`

	// Scores holds the aggregate vote per polarity, including the
	// non-voting dispositions (settlement, extinction).
	Scores map[string]float64 `json:"scores,omitempty"`
}

// Config tunes the classifier. Zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// PartialEpsilon is the relative distance within which opposing
	// favorable and unfavorable aggregates are treated as a split
	// decision rather than a win for the larger side.
	PartialEpsilon float64
}

// DefaultConfig returns the tuning the batch pipeline ships with.
func DefaultConfig() Config {
	return Config{PartialEpsilon: 0.15}
}
