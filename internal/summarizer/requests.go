package summarizer

import "regexp"

// maxRequests caps how many claim topics one summary carries.
const maxRequests = 5

// claimTopics is the fixed claim-topic lexicon, scanned in declaration
// order; output order follows first appearance in the text.
var claimTopics = []struct {
	re    *regexp.Regexp
	topic string
}{
	{regexp.MustCompile(`(?i)\bhoras?\s+extra(?:s|ordinárias?)?\b`), "horas extras"},
	{regexp.MustCompile(`(?i)\badicional\s+noturno\b`), "adicional noturno"},
	{regexp.MustCompile(`(?i)\badicional\s+de\s+insalubridade\b|\binsalubridade\b`), "adicional de insalubridade"},
	{regexp.MustCompile(`(?i)\badicional\s+de\s+periculosidade\b|\bpericulosidade\b`), "adicional de periculosidade"},
	{regexp.MustCompile(`(?i)\bFGTS\b|\bfundo\s+de\s+garantia\b`), "FGTS"},
	{regexp.MustCompile(`(?i)\bdanos?\s+mora(?:l|is)\b`), "danos morais"},
	{regexp.MustCompile(`(?i)\bdanos?\s+materia(?:l|is)\b`), "danos materiais"},
	{regexp.MustCompile(`(?i)\bverbas\s+rescisórias\b`), "verbas rescisórias"},
	{regexp.MustCompile(`(?i)\baviso\s+prévio\b`), "aviso prévio"},
	{regexp.MustCompile(`(?i)\b(?:décimo\s+terceiro|13[º°]?\s+salário|gratificação\s+natalina)\b`), "13º salário"},
	{regexp.MustCompile(`(?i)\bférias\b`), "férias"},
	{regexp.MustCompile(`(?i)\bvínculo\s+empregatício\b|\banotação\s+(?:da|de|em)\s+CTPS\b|\bregistro\s+em\s+carteira\b`), "vínculo empregatício"},
	{regexp.MustCompile(`(?i)\breintegração\b`), "reintegração"},
	{regexp.MustCompile(`(?i)\bequiparação\s+salarial\b`), "equiparação salarial"},
	{regexp.MustCompile(`(?i)\bintervalo\s+intrajornada\b`), "intervalo intrajornada"},
	{regexp.MustCompile(`(?i)\bmulta\s+do\s+art(?:igo)?\.?\s*477\b`), "multa do art. 477"},
	{regexp.MustCompile(`(?i)\bmulta\s+do\s+art(?:igo)?\.?\s*467\b`), "multa do art. 467"},
	{regexp.MustCompile(`(?i)\bseguro[\s-]desemprego\b`), "seguro-desemprego"},
	{regexp.MustCompile(`(?i)\bdiferenças\s+salariais\b`), "diferenças salariais"},
	{regexp.MustCompile(`(?i)\bsalários?\s+atrasados?\b|\bsalários?\s+em\s+atraso\b`), "salários em atraso"},
	{regexp.MustCompile(`(?i)\brescisão\s+indireta\b`), "rescisão indireta"},
	{regexp.MustCompile(`(?i)\bvale[\s-]transporte\b`), "vale-transporte"},
	{regexp.MustCompile(`(?i)\bhonorários\s+(?:advocatícios|de\s+sucumbência)\b`), "honorários advocatícios"},
}

// extractRequests returns the claim topics present in the text, ordered by
// first appearance, capped at maxRequests.
func extractRequests(text string) []string {
	type hit struct {
		pos   int
		topic string
	}
	var hits []hit
	for _, ct := range claimTopics {
		if loc := ct.re.FindStringIndex(text); loc != nil {
			hits = append(hits, hit{loc[0], ct.topic})
		}
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	var out []string
	for _, h := range hits {
		out = append(out, h.topic)
		if len(out) == maxRequests {
			break
		}
	}
	return out
}
