package outcome

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/lfaria/juriscan/internal/taxonomy"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	tax, err := taxonomy.New()
	if err != nil {
		t.Fatalf("taxonomy.New: %v", err)
	}
	return New(tax, DefaultConfig())
}

func TestClassifyProcedente(t *testing.T) {
	c := newClassifier(t)
	res := c.Classify("Isto posto, julgo procedente o pedido e condeno a reclamada ao pagamento de horas extras.")
	if res.Outcome != FavorableToClaimant {
		t.Fatalf("outcome = %s, want FAVORABLE_TO_CLAIMANT", res.Outcome)
	}
	if res.Confidence <= 0.7 {
		t.Fatalf("confidence = %.3f, want > 0.7", res.Confidence)
	}
	if len(res.Evidence) == 0 {
		t.Fatal("expected evidence")
	}
	if !contains(res.MethodsUsed, taxonomy.MethodDirect) {
		t.Fatalf("methods = %v, want direct lexicon among them", res.MethodsUsed)
	}
}

func TestClassifyImprocedente(t *testing.T) {
	c := newClassifier(t)
	res := c.Classify("Diante do exposto, julgo improcedente a reclamação trabalhista.")
	if res.Outcome != FavorableToDefendant {
		t.Fatalf("outcome = %s, want FAVORABLE_TO_DEFENDANT", res.Outcome)
	}
	if res.Confidence <= 0.5 {
		t.Fatalf("confidence = %.3f, want > 0.5", res.Confidence)
	}
}

func TestClassifyParcialmenteProcedente(t *testing.T) {
	c := newClassifier(t)
	res := c.Classify("Julgo parcialmente procedentes os pedidos formulados na inicial.")
	if res.Outcome != PartiallyFavorable {
		t.Fatalf("outcome = %s, want PARTIALLY_FAVORABLE", res.Outcome)
	}
	if res.Confidence <= 0 || res.Confidence > 1 {
		t.Fatalf("confidence = %.3f out of (0,1]", res.Confidence)
	}
}

func TestClassifyEmptyText(t *testing.T) {
	c := newClassifier(t)
	for _, text := range []string{"", "   \n\t  ", "O reclamante alegou ter trabalhado na empresa."} {
		res := c.Classify(text)
		if res.Outcome != Undetermined {
			t.Fatalf("%q: outcome = %s, want UNDETERMINED", text, res.Outcome)
		}
		if res.Confidence != 0 {
			t.Fatalf("%q: confidence = %.3f, want 0", text, res.Confidence)
		}
		if len(res.Evidence) != 0 {
			t.Fatalf("%q: expected no evidence, got %d", text, len(res.Evidence))
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := newClassifier(t)
	text := "Isto posto, julgo procedente o pedido. Condeno a reclamada ao pagamento de R$ 10.000,00. Indefiro o pedido de danos morais."
	first := c.Classify(text)
	for i := 0; i < 5; i++ {
		if got := c.Classify(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from first run", i+1)
		}
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	c := newClassifier(t)
	texts := []string{
		"julgo procedente julgo procedente julgo procedente condeno condeno condeno defiro acolho reconheço faz jus tem direito",
		"improcedente improcedente nego provimento indefiro rejeito absolvo não há que se falar em horas extras",
		"parcialmente procedente em parte acolho parcialmente",
	}
	for _, text := range texts {
		res := c.Classify(text)
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Fatalf("%q: confidence %.3f out of [0,1]", text, res.Confidence)
		}
	}
}

func TestClassifyMonotonicFavorableEvidence(t *testing.T) {
	c := newClassifier(t)
	base := "Julgo procedente o pedido."
	grown := base + " Condeno a reclamada ao pagamento. Defiro o pedido de horas extras."
	a := c.Classify(base)
	b := c.Classify(grown)
	if b.Scores["favorable"] < a.Scores["favorable"] {
		t.Fatalf("favorable aggregate decreased: %.3f -> %.3f", a.Scores["favorable"], b.Scores["favorable"])
	}
}

func TestClassifyCloseOpposingSignalsReadAsPartial(t *testing.T) {
	c := newClassifier(t)
	res := c.Classify("Defiro o pedido de horas extras. Indefiro o pedido de danos morais.")
	if res.Outcome != PartiallyFavorable {
		t.Fatalf("outcome = %s, want PARTIALLY_FAVORABLE (scores %v)", res.Outcome, res.Scores)
	}
}

func TestClassifyBalancedTieKeepsCalibratedConfidence(t *testing.T) {
	c := newClassifier(t)
	// One favorable and one partial hit of identical weight, nothing else:
	// no label can be picked, but the evidence must still carry confidence.
	res := c.Classify("Concessão em parte.")
	if res.Outcome != Undetermined {
		t.Fatalf("outcome = %s, want UNDETERMINED (scores %v)", res.Outcome, res.Scores)
	}
	if len(res.Evidence) == 0 {
		t.Fatal("expected evidence for the tied signals")
	}
	if res.Confidence <= 0 || res.Confidence > 0.5 {
		t.Fatalf("confidence = %.3f, want low but non-zero", res.Confidence)
	}
}

func TestClassifySettlementOnlyStaysUndetermined(t *testing.T) {
	c := newClassifier(t)
	res := c.Classify("Homologo o acordo celebrado entre as partes para a extinção do feito.")
	if res.Outcome != Undetermined {
		t.Fatalf("outcome = %s, want UNDETERMINED", res.Outcome)
	}
	if res.Confidence == 0 {
		t.Fatal("settlement evidence should carry a non-zero confidence")
	}
	if res.Scores["agreement"] == 0 {
		t.Fatalf("scores = %v, want an agreement aggregate", res.Scores)
	}
}

func TestClassifyMethodsUsedSortedDistinct(t *testing.T) {
	c := newClassifier(t)
	res := c.Classify("Isto posto, julgo procedente o pedido e condeno a reclamada ao pagamento de horas extras no prazo de 15 dias.")
	if !sort.StringsAreSorted(res.MethodsUsed) {
		t.Fatalf("methods not sorted: %v", res.MethodsUsed)
	}
	seen := map[string]bool{}
	for _, m := range res.MethodsUsed {
		if seen[m] {
			t.Fatalf("duplicate method %s", m)
		}
		seen[m] = true
	}
}

func TestClassifyEvidenceSnippetsComeFromText(t *testing.T) {
	c := newClassifier(t)
	text := "Ante o exposto, julgo improcedente o pedido por falta de prova."
	res := c.Classify(text)
	normalized := strings.Join(strings.Fields(text), " ")
	for _, e := range res.Evidence {
		if e.Snippet == "" {
			t.Fatalf("%s/%s: empty snippet", e.Method, e.Tag)
		}
		if !strings.Contains(normalized, e.Snippet) {
			t.Fatalf("%s/%s: snippet %q not found in text", e.Method, e.Tag, e.Snippet)
		}
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
