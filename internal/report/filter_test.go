package report

import (
	"testing"
	"time"

	"github.com/concresys/concresys/internal/models"
)

func TestLexicographicDateOrder(t *testing.T) {
	// Zero-padded ISO dates compare lexicographically in chronological
	// order; every range filter relies on this.
	pairs := [][2]string{
		{"2025-12-31", "2026-01-01"},
		{"2026-01-09", "2026-01-10"},
		{"2026-08-28", "2026-09-01"},
		{"2026-02-28", "2026-03-01"},
	}
	for _, pair := range pairs {
		earlier, later := pair[0], pair[1]
		if !(earlier < later) {
			t.Errorf("Expected %s < %s lexicographically", earlier, later)
		}
		te, _ := time.Parse("2006-01-02", earlier)
		tl, _ := time.Parse("2006-01-02", later)
		if !te.Before(tl) {
			t.Errorf("Chronology disagrees for %s / %s", earlier, later)
		}
	}
}

func TestFilterPoursInclusive(t *testing.T) {
	pours := []models.PourRecord{
		{ID: "a", Date: "2026-08-01", VolumeDelivered: 10.0},
		{ID: "b", Date: "2026-08-15", VolumeDelivered: 5.5},
		{ID: "c", Date: "2026-09-01", VolumeDelivered: 7.0},
	}

	filtered := FilterPours(pours, DateRange{Start: "2026-08-01", End: "2026-08-31"})
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 pours in August, got %d", len(filtered))
	}

	stats := Aggregate(filtered)
	if stats.TotalVolume != 15.5 {
		t.Errorf("Expected total volume 15.5, got %v", stats.TotalVolume)
	}
	if stats.TotalPours != 2 {
		t.Errorf("Expected 2 pours, got %d", stats.TotalPours)
	}

	// Bounds are inclusive on both ends.
	exact := FilterPours(pours, DateRange{Start: "2026-08-15", End: "2026-08-15"})
	if len(exact) != 1 || exact[0].ID != "b" {
		t.Errorf("Expected single-day range to include its bound, got %v", exact)
	}

	// Open bounds pass everything through.
	if all := FilterPours(pours, DateRange{}); len(all) != 3 {
		t.Errorf("Expected open range to keep all pours, got %d", len(all))
	}
}

func TestDefaultRanges(t *testing.T) {
	now := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.Local)

	dash := DashboardRange(now)
	if dash.Start != "2026-08-01" || dash.End != "2026-08-31" {
		t.Errorf("Dashboard range wrong: %+v", dash)
	}

	export := ExportRange(now)
	if export.Start != "2026-08-01" || export.End != "2026-08-28" {
		t.Errorf("Export range wrong: %+v", export)
	}

	// February rollover.
	feb := DashboardRange(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.Local))
	if feb.End != "2026-02-28" {
		t.Errorf("Expected February to end on the 28th, got %s", feb.End)
	}
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2026-08-05": "05/08/2026",
		"":           "-",
		"invalid":    "invalid",
	}
	for in, want := range cases {
		if got := FormatDate(in); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, want)
		}
	}
}
