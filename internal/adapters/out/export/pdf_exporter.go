package export

import (
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"minishop/internal/core/domain/model/revenue"
)

// PDFExporter renders a revenue snapshot as a simple tabular PDF with a
// grand total line at the bottom.
type PDFExporter struct{}

// NewPDFExporter creates a PDF exporter.
func NewPDFExporter() PDFExporter {
	return PDFExporter{}
}

// Export writes the rendered report for the given entries to w.
func (PDFExporter) Export(w io.Writer, entries []revenue.Entry) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Revenue report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 7, "Code", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(60, 7, "Timestamp", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	total := decimal.Zero
	for _, entry := range entries {
		pdf.CellFormat(50, 7, entry.OrderCode().String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, entry.Amount().String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(60, 7, entry.RecordedAt().UTC().Format(time.RFC3339), "1", 1, "L", false, 0, "")
		total = total.Add(entry.Amount().Decimal())
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, total.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(60, 7, "", "1", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// ContentType returns the MIME type of the rendered document.
func (PDFExporter) ContentType() string {
	return "application/pdf"
}

// FileExtension returns the file extension without the leading dot.
func (PDFExporter) FileExtension() string {
	return "pdf"
}
