package workforce

// Default payroll catalogs. The order is the source-sheet column order;
// the decomposer keeps it as the tiebreaker for equal amounts. Sheets
// from older periods may carry only a subset of these columns, which is
// fine: a field absent from the sheet contributes nothing.

// DefaultEarningsCatalog lists the earning rubric columns.
var DefaultEarningsCatalog = []string{
	"Salário Base",
	"Horas Normais",
	"PRODUÇÃO",
	"REFLEXO S PRODUÇÃO",
	"Hora Extra 70% - Semana",
	"Hora Extra 70% - Sabado",
	"Hora Extra 100%",
	"Repouso Remunerado",
	"DSR Sobre Horas Extras",
	"Adicional Noturno",
	"Adicional de Periculosidade",
	"Adicional de Insalubridade",
	"Adicional de Transferência",
	"Gratificação de Função",
	"Prêmio Assiduidade",
	"Auxílio Alimentação",
	"Cesta Básica",
	"Vale Transporte",
	"Auxílio Moradia",
	"Ajuda de Custo",
	"Diárias",
	"Horas de Viagem",
	"Reembolso de Despesas",
	"Feriado Trabalhado",
	"Licença Remunerada",
	"Comissões",
	"Abono",
	"Salário Família",
	"Férias",
	"1/3 de Férias",
	"13º Salário",
	"Participação nos Lucros",
	"Aviso Prévio Trabalhado",
	"Diferença Salarial",
	"Retroativo",
}

// DefaultDeductionsCatalog lists the deduction rubric columns. Values
// are summed as positive magnitudes regardless of the sign convention
// used in the source sheet.
var DefaultDeductionsCatalog = []string{
	"INSS",
	"IRRF",
	"Faltas",
	"Atrasos",
	"DSR Sobre Faltas",
	"Contribuição Sindical",
	"Mensalidade Sindical",
	"Vale Transporte - Desconto",
	"Vale Refeição - Desconto",
	"Coparticipação Saúde",
	"Coparticipação Odontológico",
	"Seguro de Vida",
	"Adiantamento 13º",
	"Empréstimo Consignado",
	"Pensão Alimentícia",
	"Danos e Avarias",
	"EPI - Desconto",
	"Farmácia",
	"Cooperativa",
	"Arredondamento",
}
