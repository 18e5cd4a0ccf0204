// Package report derives read-side projections from the session state:
// date-range filtering, aggregates, history sorting, record enrichment
// and the spreadsheet/PDF export sinks.
package report

import (
	"strings"
	"time"

	"github.com/concresys/concresys/internal/models"
)

// DateRange is an inclusive calendar interval in ISO YYYY-MM-DD form.
// An empty bound is open. Comparison is lexicographic, which equals
// chronological order because the format is zero-padded.
type DateRange struct {
	Start string `json:"startDate"`
	End   string `json:"endDate"`
}

// Contains reports whether the ISO date falls inside the range.
func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

// DashboardRange is the dashboard default: first through last day of
// now's month. now must already be in the viewer's local time so the
// month never shifts across the UTC boundary.
func DashboardRange(now time.Time) DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return DateRange{
		Start: first.Format("2006-01-02"),
		End:   last.Format("2006-01-02"),
	}
}

// ExportRange is the report default: first day of now's month through
// today, local time.
func ExportRange(now time.Time) DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return DateRange{
		Start: first.Format("2006-01-02"),
		End:   now.Format("2006-01-02"),
	}
}

// FilterPours returns the pours whose date falls inside the range,
// preserving store order.
func FilterPours(pours []models.PourRecord, r DateRange) []models.PourRecord {
	var out []models.PourRecord
	for _, p := range pours {
		if r.Contains(p.Date) {
			out = append(out, p)
		}
	}
	return out
}

// Stats are the dashboard aggregates over a filtered set.
type Stats struct {
	TotalVolume float64 `json:"totalVolume"`
	TotalPours  int     `json:"totalPours"`
}

// Aggregate sums delivered volume and counts records.
func Aggregate(pours []models.PourRecord) Stats {
	var s Stats
	for _, p := range pours {
		s.TotalVolume += p.VolumeDelivered
	}
	s.TotalPours = len(pours)
	return s
}

// FormatDate renders an ISO date as DD/MM/YYYY by string rearrangement.
// No time.Parse round trip: a calendar date must never pass through a
// timezone conversion.
func FormatDate(date string) string {
	if date == "" {
		return "-"
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
