package taxonomy

// Pattern tables for Brazilian labor-court decision text. Expressions are
// compiled case-insensitively; they must stay RE2-compatible (no lookaround).
//
// Weights express how strongly a single occurrence of the pattern supports
// its polarity, not a probability.

// directPatterns is the primary judgment lexicon: explicit granting, denying
// and partial-granting language, plus settlement and extinction dispositions.
var directPatterns = []Pattern{
	// Granting verbs and dispositive grants.
	{Expr: `\b(?:julgo|decido)\s+(?:totalmente\s+)?procedente`, Weight: 0.98, Tag: "julgamento_procedente", Polarity: Favorable},
	{Expr: `\bcondeno\s+(?:o|a)?\s*(?:reclamad[ao]|réu?|empresa|empregador[a]?|parte)\s*(?:ao\s+pagamento|a\s+pagar|a\s+indenizar)`, Weight: 0.98, Tag: "condenacao_especifica", Polarity: Favorable},
	{Expr: `\bcondeno|\bcondenar\b|\bcondenad[ao]\b|\bcondenação`, Weight: 0.95, Tag: "condenacao", Polarity: Favorable},
	{Expr: `\brecurso\s+provido\b`, Weight: 0.95, Tag: "recurso_provido", Polarity: Favorable},
	{Expr: `\b(?:concedo|conceder|concedid[ao]|concessão)\b`, Weight: 0.9, Tag: "concessao", Polarity: Favorable},
	{Expr: `\b(?:defiro|deferir|deferimento|deferid[ao])\b`, Weight: 0.9, Tag: "deferimento", Polarity: Favorable},
	{Expr: `\b(?:acolho|acolher|acolhid[ao]|acolhimento)\b`, Weight: 0.9, Tag: "acolhimento", Polarity: Favorable},
	{Expr: `\b(?:dar|dando|dou|dá)\s+provimento\b`, Weight: 0.9, Tag: "dar_provimento", Polarity: Favorable},
	{Expr: `\bprovimento\s+ao\s+recurso\b`, Weight: 0.9, Tag: "provimento_ao_recurso", Polarity: Favorable},
	{Expr: `\breconheço\b|\breconhecer\b|\breconhecid[ao]\b|\breconhecimento\b`, Weight: 0.88, Tag: "reconhecimento", Polarity: Favorable},
	{Expr: `\bvínculo\s+empregatício\s+(?:reconhecido|declarado)\b`, Weight: 0.85, Tag: "vinculo_reconhecido", Polarity: Favorable},
	{Expr: `\breintegração\s+(?:deferida|determinada|ordenada)\b`, Weight: 0.85, Tag: "reintegracao_deferida", Polarity: Favorable},
	{Expr: `\bfaz(?:endo)?\s+jus\b`, Weight: 0.85, Tag: "faz_jus", Polarity: Favorable},
	{Expr: `\bte(?:m|ndo)\s+direito\b`, Weight: 0.85, Tag: "tem_direito", Polarity: Favorable},
	{Expr: `(?:é\s+devid[ao]|são\s+devid[ao]s)\b`, Weight: 0.85, Tag: "e_devido", Polarity: Favorable},
	{Expr: `\bdeve(?:m)?\s+ser\s+pag[ao]s?\b|\bdeve\s+pagar\b`, Weight: 0.85, Tag: "deve_ser_pago", Polarity: Favorable},
	{Expr: `\bdetermino\s+(?:o\s+pagamento|a\s+reintegração|a\s+anotação)`, Weight: 0.85, Tag: "determinacao_positiva", Polarity: Favorable},
	{Expr: `\barbitr(?:o|ar|ad[ao])\b`, Weight: 0.85, Tag: "arbitramento", Polarity: Favorable},
	{Expr: `em\s+favor\s+d[oa]\s+(?:reclamante|autor[a]?|empregad[ao]|parte\s+autora)`, Weight: 0.8, Tag: "em_favor_do_reclamante", Polarity: Favorable},
	{Expr: `\brazão\s+[àa]o?\s+(?:reclamante|autor[a]?|parte\s+autora)`, Weight: 0.8, Tag: "razao_ao_reclamante", Polarity: Favorable},
	{Expr: `\bcabe\s+ao\s+(?:reclamante|autor|empregado)\b`, Weight: 0.8, Tag: "cabe_ao_reclamante", Polarity: Favorable},
	{Expr: `(?:pagar|pagamento|condeno|condenação)\s+(?:de\s+)?R\$\s*\d{1,3}(?:\.?\d{3})*(?:,\d{2})?`, Weight: 0.7, Tag: "pagamento_com_valor", Polarity: Favorable},

	// Denying language.
	{Expr: `\bjulgo\s+improcedente`, Weight: 0.95, Tag: "julgamento_improcedente", Polarity: Unfavorable},
	{Expr: `\b(?:sentença|ação|pedido)\s+improcedente`, Weight: 0.9, Tag: "improcedencia_nominal", Polarity: Unfavorable},
	{Expr: `\bimproced(?:ente|ência)`, Weight: 0.9, Tag: "improcedencia", Polarity: Unfavorable},
	{Expr: `\b(?:nego|negar|negad[ao])\s+provimento\b|\bnega\s+provimento\b|\bdenego\s+seguimento\b|\bnego\s+seguimento\b`, Weight: 0.8, Tag: "negar_provimento", Polarity: Unfavorable},
	{Expr: `\b(?:indefiro|indeferimento|indeferid[ao])\b`, Weight: 0.8, Tag: "indeferimento", Polarity: Unfavorable},
	{Expr: `\b(?:rejeito|rejeição|rejeitad[ao])\b`, Weight: 0.8, Tag: "rejeicao", Polarity: Unfavorable},
	{Expr: `\brecurso\s+desprovido\b|\bdesprovimento\s+do\s+recurso\b`, Weight: 0.8, Tag: "recurso_desprovido", Polarity: Unfavorable},
	{Expr: `\babsolv(?:o|ição|id[ao])\b`, Weight: 0.8, Tag: "absolvicao", Polarity: Unfavorable},
	{Expr: `\bnão\s+(?:tem\s+direito|faz\s+jus|é\s+devid[ao]|procede)\b`, Weight: 0.8, Tag: "negacao_de_direito", Polarity: Unfavorable},
	{Expr: `em\s+favor\s+d[oa]\s+(?:requerid[ao]|réu|reclamad[ao])`, Weight: 0.7, Tag: "em_favor_do_reclamado", Polarity: Unfavorable},
	{Expr: `\brazão\s+ao\s+(?:requerido|réu|reclamado)\b`, Weight: 0.7, Tag: "razao_ao_reclamado", Polarity: Unfavorable},
	{Expr: `\bisento\s+de\s+pagamento\b|\bsem\s+condenação\b`, Weight: 0.7, Tag: "sem_condenacao", Polarity: Unfavorable},
	{Expr: `\bausência\s+de\s+direito\b`, Weight: 0.7, Tag: "ausencia_de_direito", Polarity: Unfavorable},
	{Expr: `\bfalta\s+de\s+prova\b|\bprova\s+insuficiente\b`, Weight: 0.6, Tag: "falta_de_prova", Polarity: Unfavorable},
	{Expr: `\bnão\s+(?:comprovad[ao]|demonstrad[ao])\b`, Weight: 0.6, Tag: "nao_comprovado", Polarity: Unfavorable},

	// Partial grants.
	{Expr: `\b(?:julgo|decido)\s+(?:os\s+pedidos\s+)?parcialmente\s+procedentes?\b`, Weight: 0.98, Tag: "julgamento_parcial", Polarity: Partial},
	{Expr: `\bprocedentes?\s+em\s+parte\b`, Weight: 0.95, Tag: "procedente_em_parte", Polarity: Partial},
	{Expr: `\b(?:acolho|defiro|concedo)\s+(?:os\s+pedidos\s+)?parcialmente\b`, Weight: 0.95, Tag: "acolhimento_parcial", Polarity: Partial},
	{Expr: `\b(?:dou|dá|dando|dar)\s+parcial\s+provimento\b`, Weight: 0.95, Tag: "parcial_provimento", Polarity: Partial},
	{Expr: `\brecurso\s+parcialmente\s+provido\b`, Weight: 0.95, Tag: "recurso_parcialmente_provido", Polarity: Partial},
	{Expr: `\b(?:parcialmente|em\s+parte)\b`, Weight: 0.9, Tag: "indicador_parcialidade", Polarity: Partial},
	{Expr: `\bparte\s+d[oa]s?\s+pedidos?\b|\bparte\s+da\s+pretensão\b`, Weight: 0.88, Tag: "parte_do_pedido", Polarity: Partial},
	{Expr: `\b(?:acolho|defiro|concedo)\s+em\s+parte\b`, Weight: 0.88, Tag: "acolhimento_em_parte", Polarity: Partial},
	{Expr: `(?:rejeitados|indeferidos|improcedentes)\s+os\s+demais\s+pedidos?\b`, Weight: 0.7, Tag: "rejeitado_o_restante", Polarity: Partial},
	{Expr: `\b(?:excluíd[ao]|afast(?:o|ad[ao]))\s+(?:o\s+pedido\s+de|a\s+condenação\s+em|da\s+condenação)`, Weight: 0.7, Tag: "exclusao_de_pedido", Polarity: Partial},
	{Expr: `\blimitad[ao]\s+(?:a|ao|à|aos|às)\b|\brestrit[ao]\s+(?:a|ao|à|aos|às)\b`, Weight: 0.7, Tag: "limitado_a", Polarity: Partial},

	// Settlements and extinction dispositions: evidence only, no label vote.
	{Expr: `\bhomolog(?:o|ar|ad[ao])\s+(?:o\s+)?(?:acordo|conciliação|transação)\b`, Weight: 1.0, Tag: "acordo_homologado", Polarity: Agreement},
	{Expr: `\b(?:acordo|conciliação|transação)\s+(?:celebrad[ao]|firmad[ao]|obtid[ao]|homologad[ao])\b`, Weight: 0.95, Tag: "acordo_celebrado", Polarity: Agreement},
	{Expr: `\bpartes\s+(?:transigiram|celebraram\s+acordo|conciliaram)\b`, Weight: 0.9, Tag: "partes_conciliaram", Polarity: Agreement},
	{Expr: `\bextin(?:go|t[ao])\s+(?:o\s+processo|o\s+feito)\s+com\s+resolução\s+do\s+mérito\b`, Weight: 1.0, Tag: "extincao_com_merito", Polarity: ExtinctWithMerits},
	{Expr: `\b(?:pronuncio|declaro|pronunciad[ao]|declarad[ao])\s+a\s+(?:prescrição|decadência)\b`, Weight: 0.98, Tag: "prescricao_declarada", Polarity: ExtinctWithMerits},
	{Expr: `\b(?:prescrição|decadência)\s+(?:reconhecida|declarada|configurada|acolhida)\b`, Weight: 0.95, Tag: "prescricao_reconhecida", Polarity: ExtinctWithMerits},
	{Expr: `\bextin(?:go|t[ao])\s+(?:o\s+processo|o\s+feito)\s+sem\s+resolução\s+do\s+mérito\b`, Weight: 1.0, Tag: "extincao_sem_merito", Polarity: ExtinctWithoutMerits},
	{Expr: `\bausência\s+de\s+pressuposto\s+processual\b|\bcarência\s+da\s+ação\b|\binépcia\s+da\s+inicial\b`, Weight: 0.95, Tag: "vicio_processual", Polarity: ExtinctWithoutMerits},
	{Expr: `\bilegitimidade\s+de\s+(?:parte|polo)\b|\bfalta\s+de\s+interesse\s+de\s+agir\b`, Weight: 0.95, Tag: "ilegitimidade", Polarity: ExtinctWithoutMerits},
	{Expr: `\bnão\s+conheço\s+do\s+(?:recurso|apelo)\b|\bintempestividade\b`, Weight: 0.85, Tag: "nao_conhecimento", Polarity: ExtinctWithoutMerits},
}

// inferencePatterns infer a disposition from phrasing that implies one
// without judgment verbs: obligation-to-pay wording, deadline setting,
// document-issuance orders and their negative counterparts.
var inferencePatterns = []Pattern{
	{Expr: `\b(?:pagamento|pagar)\s+(?:de|referente\s+a|o\s+valor\s+de)?\s*(?:R\$\s*)?\d{1,3}(?:\.?\d{3})*(?:,\d{2})?`, Weight: 0.7, Tag: "pagamento_com_valor", Polarity: Favorable},
	{Expr: `\b(?:concedid[ao]|deferid[ao]|devid[ao])\s+o\s+pagamento\b`, Weight: 0.8, Tag: "pagamento_concedido", Polarity: Favorable},
	{Expr: `\b(?:indenização|indenizar)\s+(?:por|a\s+título\s+de)?\s*danos?\s+(?:morais?|materiais?)\b`, Weight: 0.8, Tag: "indenizacao", Polarity: Favorable},
	{Expr: `\bno\s+prazo\s+de\s+\d+\s+dias\b`, Weight: 0.65, Tag: "prazo_fixado", Polarity: Favorable},
	{Expr: `\bobrigação\s+de\s+(?:fazer|pagar|entregar)\b`, Weight: 0.75, Tag: "obrigacao_de_acao", Polarity: Favorable},
	{Expr: `\b(?:anotação|retificação)\s+(?:na\s+)?CTPS\b|\bregistro\s+em\s+(?:carteira|CTPS)\b`, Weight: 0.7, Tag: "anotacao_ctps", Polarity: Favorable},
	{Expr: `\b(?:expedição|emitir|fornecer)\s+(?:de\s+)?(?:guias?|alvará|certidão)\b`, Weight: 0.75, Tag: "expedicao_de_guias", Polarity: Favorable},
	{Expr: `\bliberação\s+(?:do\s+)?FGTS\b|\bliberad[ao]\s+(?:o\s+)?FGTS\b`, Weight: 0.75, Tag: "liberacao_fgts", Polarity: Favorable},
	{Expr: `\breintegr(?:ar|ação)\b`, Weight: 0.8, Tag: "reintegracao", Polarity: Favorable},
	{Expr: `\bnão\s+há\s+que\s+se\s+falar\s+em\b`, Weight: 0.9, Tag: "nao_ha_que_se_falar", Polarity: Unfavorable},
	{Expr: `\bnão\s+se\s+(?:vislumbra|verifica)\b|\bausência\s+de\s+prova\b`, Weight: 0.85, Tag: "ausencia_de_prova", Polarity: Unfavorable},
	{Expr: `\bincabível\b|\bdescabid[ao]\b`, Weight: 0.8, Tag: "incabivel", Polarity: Unfavorable},
	{Expr: `\bônus\s+da\s+prova\s+não\s+foi\s+desincumbido\b`, Weight: 0.85, Tag: "onus_da_prova", Polarity: Unfavorable},
	{Expr: `\bimprovid[ao]\b`, Weight: 0.7, Tag: "improvido", Polarity: Unfavorable},
	{Expr: `\bprescri(?:ção|t[ao])\b`, Weight: 0.85, Tag: "prescricao", Polarity: ExtinctWithMerits},
}

// laborRightPatterns pair a known right category with granting or denying
// phrasing in the same clause.
var laborRightPatterns = []Pattern{
	{Expr: `\bhoras?\s+extras?\s+(?:devidas?|deferidas?|concedidas?)\b`, Weight: 0.85, Tag: "horas_extras_deferidas", Polarity: Favorable},
	{Expr: `\b(?:concedid|deferid|devid)\w*[^.\n]{0,60}\bhoras?\s+extras?\b`, Weight: 0.8, Tag: "horas_extras_concedidas", Polarity: Favorable},
	{Expr: `\badicional\s+(?:noturno|de\s+insalubridade|de\s+periculosidade)\s+(?:devido|deferido|concedido)\b`, Weight: 0.8, Tag: "adicional_deferido", Polarity: Favorable},
	{Expr: `\bverbas\s+rescisórias\s+(?:devidas|deferidas|concedidas)\b`, Weight: 0.8, Tag: "verbas_rescisorias_deferidas", Polarity: Favorable},
	{Expr: `\baviso\s+prévio\s+(?:devido|deferido|concedido|indenizado)\b`, Weight: 0.75, Tag: "aviso_previo_deferido", Polarity: Favorable},
	{Expr: `\b(?:décimo\s+terceiro|13[º°]\s+salário)\s+(?:devido|deferido|concedido)\b`, Weight: 0.75, Tag: "decimo_terceiro_deferido", Polarity: Favorable},
	{Expr: `\bférias\s+(?:devidas|deferidas|concedidas|em\s+dobro)\b`, Weight: 0.75, Tag: "ferias_deferidas", Polarity: Favorable},
	{Expr: `\bFGTS\s+(?:devido|deferido|concedido|liberado)\b`, Weight: 0.75, Tag: "fgts_deferido", Polarity: Favorable},
	{Expr: `\brescisão\s+indireta\s+(?:reconhecida|declarada)\b`, Weight: 0.85, Tag: "rescisao_indireta", Polarity: Favorable},
	{Expr: `\bhoras?\s+extras?\s+(?:indevidas?|indeferidas?|negadas?)\b`, Weight: 0.85, Tag: "horas_extras_indeferidas", Polarity: Unfavorable},
	{Expr: `\b(?:indeferid|negad|indevid)\w*[^.\n]{0,60}\b(?:horas?\s+extras?|adicional|danos?\s+morais?)\b`, Weight: 0.8, Tag: "direito_indeferido", Polarity: Unfavorable},
	{Expr: `\badicional\s+(?:noturno|de\s+insalubridade|de\s+periculosidade)\s+(?:indevido|indeferido|negado)\b`, Weight: 0.8, Tag: "adicional_indeferido", Polarity: Unfavorable},
	{Expr: `\bdanos?\s+morais?\s+(?:indevid|indeferid|negad)\w*\b`, Weight: 0.8, Tag: "danos_morais_indeferidos", Polarity: Unfavorable},
}

// contextPatterns mark discourse positions (dispositive sections, formal
// conclusions, judgment verbs) whose surroundings are rescanned with the
// direct lexicon.
var contextPatterns = []Pattern{
	{Expr: `\b(?:dispositivo|decisório)\b`, Weight: 1.0, Tag: "secao_dispositiva", Polarity: ContextMarker},
	{Expr: `\bisto\s+posto\b|\b(?:diante|ante|em\s+face)\s+(?:de\s+todo\s+)?(?:d)?o\s+exposto\b|\bpelo\s+exposto\b`, Weight: 0.95, Tag: "conclusao_formal", Polarity: ContextMarker},
	{Expr: `\b(?:assim\s+sendo|dessa\s+forma|portanto|em\s+consequência)\b`, Weight: 0.85, Tag: "conclusao_inferencial", Polarity: ContextMarker},
	{Expr: `\bjulg(?:o|a|amos|ar)\b`, Weight: 0.95, Tag: "verbo_julgar", Polarity: ContextMarker},
	{Expr: `\bdecid(?:o|e|imos|ir)\b`, Weight: 0.9, Tag: "verbo_decidir", Polarity: ContextMarker},
	{Expr: `\bsentenci(?:o|a|amos|ar)\b`, Weight: 0.9, Tag: "verbo_sentenciar", Polarity: ContextMarker},
	{Expr: `\bhomolog(?:o|a|amos|ar)\b`, Weight: 0.9, Tag: "verbo_homologar", Polarity: ContextMarker},
	{Expr: `\b(?:no|quanto\s+ao|em\s+relação\s+ao)\s+mérito\b`, Weight: 0.9, Tag: "merito", Polarity: ContextMarker},
	{Expr: `\b(?:determin|orden)(?:o|a|amos|ar)\b`, Weight: 0.85, Tag: "verbo_determinar", Polarity: ContextMarker},
	{Expr: `\bpass(?:o|amos)\s+a\s+analisar\b|\bda\s+análise\s+dos\s+autos\b`, Weight: 0.75, Tag: "inicio_analise", Polarity: ContextMarker},
}

// structurePatterns match whole dispositive constructions typical of
// sentences, appellate rulings and headnotes; the matched span is rescanned
// with the direct lexicon.
var structurePatterns = []Pattern{
	{Expr: `\b(?:julgo|decido|sentencio)\s+(?:o\s+pedido|a\s+ação|os\s+pedidos|a\s+pretensão)?\s*(?:totalmente\s+)?(?:parcialmente\s+)?(?:procedentes?|improcedentes?)`, Weight: 0.95, Tag: "sentenca_dispositiva", Polarity: ContextMarker},
	{Expr: `\b(?:sentença|decisão\s+de\s+primeir[oa]\s+(?:grau|instância))\s*(?:foi)?\s*(?:julgada|proferida)?\s*(?:totalmente\s+)?(?:procedente|improcedente|parcialmente\s+procedente|extinta)`, Weight: 0.9, Tag: "sentenca_nominal", Polarity: ContextMarker},
	{Expr: `\b(?:recurso\s+ordinário|recurso\s+de\s+revista|agravo\s+de\s+instrumento|embargos\s+de\s+declaração)\s*(?:foi)?\s*(?:parcialmente\s+)?(?:provido|desprovido|não\s+conhecido|mantido|reformado)`, Weight: 0.9, Tag: "recurso_dispositivo", Polarity: ContextMarker},
	{Expr: `\b(?:dou|nego|mantenho|reformo)\s+(?:parcial\s+)?provimento\s+ao\s+(?:recurso|apelo)`, Weight: 0.9, Tag: "provimento_dispositivo", Polarity: ContextMarker},
	{Expr: `\b(?:ante|diante|em\s+face)\s+do\s+exposto[^.]{0,160}`, Weight: 0.85, Tag: "conclusao_dispositiva", Polarity: ContextMarker},
	{Expr: `\bementa\s*:?[^.]{0,160}`, Weight: 0.8, Tag: "ementa", Polarity: ContextMarker},
}

// registerPatterns capture formal legal-register constructions tying the
// reasoning to a result.
var registerPatterns = []Pattern{
	{Expr: `pel[oa]s\s+(?:fundamentos|razões)\s+[^.]{0,120}?procedente`, Weight: 0.8, Tag: "fundamentos_procedente", Polarity: Favorable},
	{Expr: `pel[oa]s\s+(?:fundamentos|razões)\s+[^.]{0,120}?improcedente`, Weight: 0.8, Tag: "fundamentos_improcedente", Polarity: Unfavorable},
	{Expr: `\brestou\s+comprovad[ao]\b|\bficou\s+demonstrad[ao]\b`, Weight: 0.6, Tag: "comprovado", Polarity: Favorable},
	{Expr: `\bnão\s+restou\s+comprovad[ao]\b|\bnão\s+ficou\s+demonstrad[ao]\b`, Weight: 0.65, Tag: "nao_restou_comprovado", Polarity: Unfavorable},
	{Expr: `\bausência\s+de\s+elementos\s+probatórios\b`, Weight: 0.6, Tag: "ausencia_probatoria", Polarity: Unfavorable},
	{Expr: `face\s+ao\s+conjunto\s+probatório`, Weight: 0.5, Tag: "conjunto_probatorio", Polarity: Favorable},
	{Expr: `\bdefere[\-\s]se\b|\bconcede[\-\s]se\b`, Weight: 0.7, Tag: "defere_se", Polarity: Favorable},
	{Expr: `\bindefere[\-\s]se\b|\bnega[\-\s]se\s+provimento\b`, Weight: 0.7, Tag: "indefere_se", Polarity: Unfavorable},
}
