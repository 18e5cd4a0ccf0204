// Package printer renders printable QR label sheets for field devices,
// so the application-unit identifier tagged on pours can be physically
// attached to the tablet or sensor it names.
package printer

import (
	"bytes"
	"fmt"

	"github.com/concresys/concresys/internal/models"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelConfig holds the grid layout for a label sheet.
type LabelConfig struct {
	Count      int     `json:"count"`
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	MarginTop  float64 `json:"marginTop"`
	MarginLeft float64 `json:"marginLeft"`
	GapX       float64 `json:"gapX"`
	GapY       float64 `json:"gapY"`
}

// DefaultLabelConfig is a 3x8 sheet of identical labels on A4.
func DefaultLabelConfig(count int) LabelConfig {
	if count < 1 {
		count = 1
	}
	return LabelConfig{
		Count:      count,
		Cols:       3,
		Rows:       8,
		MarginTop:  10,
		MarginLeft: 8,
		GapX:       3,
		GapY:       3,
	}
}

// GenerateDeviceLabels creates a PDF sheet of QR labels for one device.
// The QR content is the device's UA identifier, the same value shown in
// reports, so a field scan resolves directly to the registry entry.
func GenerateDeviceLabels(dev models.Device, cfg LabelConfig) ([]byte, error) {
	if dev.UA == "" {
		return nil, fmt.Errorf("printer: device has no UA identifier")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Arial", "B", 10)

	pageWidth, pageHeight := 210.0, 297.0

	totalGapX := float64(cfg.Cols-1) * cfg.GapX
	totalGapY := float64(cfg.Rows-1) * cfg.GapY
	availW := pageWidth - (cfg.MarginLeft * 2)
	availH := pageHeight - (cfg.MarginTop * 2)
	labelW := (availW - totalGapX) / float64(cfg.Cols)
	labelH := (availH - totalGapY) / float64(cfg.Rows)

	qrPng, err := qrcode.Encode(dev.UA, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("qr_ua", imgOptions, bytes.NewReader(qrPng))

	labelsPerPage := cfg.Cols * cfg.Rows

	for i := 0; i < cfg.Count; i++ {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		indexOnPage := i % labelsPerPage
		col := indexOnPage % cfg.Cols
		row := indexOnPage / cfg.Cols

		x := cfg.MarginLeft + float64(col)*(labelW+cfg.GapX)
		y := cfg.MarginTop + float64(row)*(labelH+cfg.GapY)

		qrSize := labelH * 0.7
		if qrSize > labelW {
			qrSize = labelW * 0.9
		}
		qrX := x + (labelW-qrSize)/2
		qrY := y + (labelH-qrSize)/2 - 2

		pdf.ImageOptions("qr_ua", qrX, qrY, qrSize, qrSize, false, imgOptions, 0, "")

		// UA below the code, device type top right.
		pdf.SetXY(x, y+labelH-6)
		pdf.SetFontSize(8)
		pdf.CellFormat(labelW, 5, dev.UA, "", 0, "C", false, 0, "")

		pdf.SetXY(x, y+1)
		pdf.SetFontSize(6)
		pdf.CellFormat(labelW, 3, dev.Type, "", 0, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
