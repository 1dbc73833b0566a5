package summarizer

import "testing"

func TestExtractMonetaryForms(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"condeno ao pagamento de R$ 10.000,00", 10000},
		{"R$1.234,56 atualizados", 1234.56},
		{"o valor de 1.500,50 reais", 1500.50},
		{"causa avaliada em 2 milhões de reais", 2e6},
		{"montante de 350 mil", 350000},
	}
	for _, tc := range cases {
		got := extractMonetary(tc.text)
		if len(got) == 0 {
			t.Fatalf("%q: no mention found", tc.text)
		}
		if got[0].Value != tc.want {
			t.Errorf("%q: value = %v, want %v", tc.text, got[0].Value, tc.want)
		}
		if got[0].Context == "" {
			t.Errorf("%q: missing context", tc.text)
		}
	}
}

func TestExtractMonetaryPositionOrderAndDedup(t *testing.T) {
	text := "Condeno ao pagamento de R$ 5.000,00 de horas extras e R$ 2.000,00 de danos morais. Total: R$ 5.000,00 mais R$ 2.000,00."
	got := extractMonetary(text)
	if len(got) != 2 {
		t.Fatalf("got %d mentions, want 2 after dedup", len(got))
	}
	if got[0].Value != 5000 || got[1].Value != 2000 {
		t.Fatalf("order = %v, %v; want 5000 then 2000", got[0].Value, got[1].Value)
	}
}

func TestExtractMonetaryCap(t *testing.T) {
	text := ""
	for i := 1; i <= 15; i++ {
		text += "pagamento de R$ " + string(rune('0'+i/10)) + string(rune('0'+i%10)) + ",00; "
	}
	if got := extractMonetary(text); len(got) > maxMonetary {
		t.Fatalf("got %d mentions, cap is %d", len(got), maxMonetary)
	}
}

func TestExtractMonetaryNone(t *testing.T) {
	if got := extractMonetary("sem valores monetários no texto"); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestExtractRequestsOrderAndCap(t *testing.T) {
	text := "Pedidos: danos morais, horas extras, FGTS, férias, aviso prévio, adicional noturno e verbas rescisórias."
	got := extractRequests(text)
	if len(got) != maxRequests {
		t.Fatalf("got %d topics, want the cap of %d", len(got), maxRequests)
	}
	if got[0] != "danos morais" || got[1] != "horas extras" {
		t.Fatalf("order = %v, want first-appearance order", got)
	}
}

func TestExtractRequestsNone(t *testing.T) {
	if got := extractRequests("nada postulado aqui"); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}
