package report

import "github.com/concresys/concresys/internal/models"

// previewLimit is how many filtered records the export screen shows.
const previewLimit = 5

// PreviewRow is one line of the pre-export table.
type PreviewRow struct {
	Date     string  `json:"date"` // DD/MM/YYYY
	Location string  `json:"location"`
	Volume   float64 `json:"volume"`
}

// Preview carries the export screen payload: aggregates, the first five
// filtered records and how many matching records are not shown.
type Preview struct {
	Stats
	Rows      []PreviewRow `json:"rows"`
	NotShown  int          `json:"notShown"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
}

// BuildPreview derives the export preview from the filtered set.
func BuildPreview(filtered []models.PourRecord, snap Lookup, r DateRange) Preview {
	p := Preview{
		Stats:     Aggregate(filtered),
		Rows:      []PreviewRow{},
		StartDate: r.Start,
		EndDate:   r.End,
	}
	for i, rec := range filtered {
		if i == previewLimit {
			break
		}
		name := "-"
		if loc, ok := snap.Location(rec.LocationID); ok {
			name = loc.Name
		}
		p.Rows = append(p.Rows, PreviewRow{
			Date:     FormatDate(rec.Date),
			Location: name,
			Volume:   rec.VolumeDelivered,
		})
	}
	if extra := len(filtered) - previewLimit; extra > 0 {
		p.NotShown = extra
	}
	return p
}
