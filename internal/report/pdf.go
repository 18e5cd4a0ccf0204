package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// BuildPDF renders the filtered set as a paginated report: title,
// period/summary header and a six-column table that flows across pages
// below the header block.
func BuildPDF(rows []Row, r DateRange, stats Stats) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Text(14, 15, tr("Relatório de Concretagens"))

	pdf.SetFont("Arial", "", 10)
	pdf.Text(14, 22, tr(fmt.Sprintf("Período: %s a %s", FormatDate(r.Start), FormatDate(r.End))))
	pdf.Text(14, 27, tr(fmt.Sprintf("Total Volume: %.1f m3 | Registros: %d", stats.TotalVolume, stats.TotalPours)))

	headers := []string{"Data", "NF", "Local", "Fornecedor", "Disp.", "Vol (m³)"}
	widths := []float64{22, 28, 48, 42, 24, 18}

	drawHeader := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(37, 99, 235)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetY(32)
	drawHeader()

	_, pageH := pdf.GetPageSize()
	for _, row := range rows {
		// Repeat the column header when the row would spill onto a new page.
		if pdf.GetY()+6 > pageH-15 {
			pdf.AddPage()
			drawHeader()
		}
		cells := []string{
			row.Date,
			row.Invoice,
			row.Location,
			row.Supplier,
			row.DeviceUA,
			fmt.Sprintf("%.1f", row.Volume),
		}
		for i, c := range cells {
			align := "L"
			if i == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
