package report

import (
	"testing"

	"github.com/concresys/concresys/internal/models"
)

func historyFixture() ([]models.PourRecord, []models.Location, []models.Supplier) {
	pours := []models.PourRecord{
		{ID: "p1", Date: "2026-08-03", InvoiceNumber: "300", LocationID: "locB", SupplierID: "supA", VolumeDelivered: 12.0},
		{ID: "p2", Date: "2026-08-01", InvoiceNumber: "100", LocationID: "locA", SupplierID: "supB", VolumeDelivered: 7.5},
		{ID: "p3", Date: "2026-08-02", InvoiceNumber: "200", LocationID: "gone", SupplierID: "supA", VolumeDelivered: 30.0},
	}
	locations := []models.Location{
		{ID: "locA", Name: "Bloco A"},
		{ID: "locB", Name: "Fundacao"},
	}
	suppliers := []models.Supplier{
		{ID: "supA", Name: "Alfa Concreto"},
		{ID: "supB", Name: "Beta Mix"},
	}
	return pours, locations, suppliers
}

func ids(pours []models.PourRecord) []string {
	out := make([]string, len(pours))
	for i, p := range pours {
		out[i] = p.ID
	}
	return out
}

func TestSortPoursByDate(t *testing.T) {
	pours, locs, sups := historyFixture()

	asc := SortPours(pours, SortByDate, false, locs, sups)
	want := []string{"p2", "p3", "p1"}
	for i, id := range ids(asc) {
		if id != want[i] {
			t.Fatalf("Ascending date order wrong: %v", ids(asc))
		}
	}

	// Descending is the exact reverse when keys are distinct.
	desc := SortPours(pours, SortByDate, true, locs, sups)
	for i, id := range ids(desc) {
		if id != want[len(want)-1-i] {
			t.Fatalf("Descending date order wrong: %v", ids(desc))
		}
	}

	// The input slice is untouched.
	if pours[0].ID != "p1" {
		t.Error("SortPours mutated its input")
	}
}

func TestSortPoursByVolume(t *testing.T) {
	pours, locs, sups := historyFixture()
	sorted := SortPours(pours, SortByVolume, false, locs, sups)
	want := []string{"p2", "p1", "p3"}
	for i, id := range ids(sorted) {
		if id != want[i] {
			t.Fatalf("Volume order wrong: %v", ids(sorted))
		}
	}
}

func TestSortPoursDanglingReference(t *testing.T) {
	pours, locs, sups := historyFixture()

	// p3 points at a removed location and must sort as empty string,
	// ahead of every resolvable name.
	sorted := SortPours(pours, SortByLocation, false, locs, sups)
	if sorted[0].ID != "p3" {
		t.Errorf("Expected dangling reference first, got %v", ids(sorted))
	}
	if sorted[1].ID != "p2" || sorted[2].ID != "p1" {
		t.Errorf("Expected Bloco A before Fundacao, got %v", ids(sorted))
	}
}

func TestParseSortKey(t *testing.T) {
	if ParseSortKey("supplier") != SortBySupplier {
		t.Error("Expected supplier key to parse")
	}
	if ParseSortKey("") != SortByDate {
		t.Error("Expected empty key to default to date")
	}
	if ParseSortKey("bogus") != SortByDate {
		t.Error("Expected unknown key to default to date")
	}
}
