// Package report renders printable summaries of engine output.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"custoplan/internal/domain/workforce"
)

// WriteCostSummary renders the headcount and earnings/deductions
// decomposition for the selected sites as an A4 PDF.
func WriteCostSummary(w io.Writer, sites []string, head workforce.Headcount, dec workforce.Decomposition) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr("Resumo de Custo - Efetivo"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	scope := "todas as obras"
	if len(sites) > 0 {
		scope = strings.Join(sites, ", ")
	}
	pdf.Cell(0, 7, tr(fmt.Sprintf("Obras: %s", scope)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Gerado em: %s", time.Now().Format("02/01/2006 15:04"))))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Efetivo"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Direto: %d    Indireto: %d    Terceiro: %d    Total: %d",
		head.Direct, head.Indirect, head.ThirdParty, head.Total)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Proventos e Descontos"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Total de Proventos: %.2f", dec.TotalEarnings)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Total de Descontos: %.2f", dec.TotalDeductions)))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Líquido: %.2f", dec.Net)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(110, 6, tr("Rubrica"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, tr("Tipo"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, tr("Valor"), "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range dec.Breakdown {
		kind := "Provento"
		if entry.Kind == workforce.EntryDeduction {
			kind = "Desconto"
		}
		pdf.CellFormat(110, 6, tr(entry.Field), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, tr(kind), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", entry.Amount), "", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}
