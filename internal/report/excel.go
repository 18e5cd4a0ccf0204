package report

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrNoRecords is returned by both export sinks when the filtered set is
// empty: an empty period produces no file at all.
var ErrNoRecords = errors.New("report: no records in the selected period")

// ExportFilename is the shared base name of both export formats,
// carrying the active date range.
func ExportFilename(r DateRange) string {
	return fmt.Sprintf("Relatorio_Concretagem_%s_a_%s", r.Start, r.End)
}

const sheetName = "Concretagens"

// BuildExcel renders the enriched rows as a flat workbook: one header
// row, one row per record.
func BuildExcel(rows []Row) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2563EB"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	for col, header := range Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		name, _ := excelize.ColumnNumberToName(col + 1)
		f.SetColWidth(sheetName, name, name, 18)
	}

	for i, row := range rows {
		values := []interface{}{
			row.Date, row.Invoice, row.Location, row.CostCenter, row.Supplier,
			row.ConcreteType, row.Device, row.Volume, row.Truck, row.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
