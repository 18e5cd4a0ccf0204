package report

import (
	"strings"
	"testing"

	"github.com/concresys/concresys/internal/models"
)

func lookupFixture() Lookup {
	return Lookup{
		Locations:     []models.Location{{ID: "loc1", Name: "Bloco A", CostCenter: "CC-01"}},
		Suppliers:     []models.Supplier{{ID: "sup1", Name: "Alfa Concreto"}},
		ConcreteTypes: []models.ConcreteType{{ID: "ct1", Name: "FCK 30"}},
		Devices:       []models.Device{{ID: "dev1", Type: "Bomba", UA: "UA-007", LocationID: "loc1"}},
	}
}

func TestEnrichResolvesReferences(t *testing.T) {
	pours := []models.PourRecord{{
		ID: "p1", Date: "2026-08-05", InvoiceNumber: "123",
		LocationID: "loc1", SupplierID: "sup1", ConcreteTypeID: "ct1",
		DeviceID: "dev1", VolumeDelivered: 8.0, TruckID: "TRK-9",
	}}

	rows := Enrich(pours, lookupFixture())
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Date != "05/08/2026" {
		t.Errorf("Expected formatted date, got %q", row.Date)
	}
	if row.Location != "Bloco A" || row.CostCenter != "CC-01" {
		t.Errorf("Location not resolved: %+v", row)
	}
	if row.Device != "Bomba (UA-007)" || row.DeviceUA != "UA-007" {
		t.Errorf("Device not resolved: %+v", row)
	}
	if row.Truck != "TRK-9" {
		t.Errorf("Expected truck id, got %q", row.Truck)
	}
}

func TestEnrichDanglingReferences(t *testing.T) {
	pours := []models.PourRecord{{
		ID: "p1", Date: "2026-08-05",
		LocationID: "gone", SupplierID: "gone", ConcreteTypeID: "gone",
	}}

	row := Enrich(pours, lookupFixture())[0]
	for _, v := range []string{row.Location, row.CostCenter, row.Supplier, row.ConcreteType} {
		if v != "N/A" {
			t.Errorf("Expected N/A placeholder, got %q", v)
		}
	}
	if row.Device != "-" || row.DeviceUA != "-" {
		t.Errorf("Expected dash for missing device, got %q", row.Device)
	}
	if row.Truck != "-" {
		t.Errorf("Expected dash for empty truck, got %q", row.Truck)
	}
}

func TestBuildPreviewCapsRows(t *testing.T) {
	var pours []models.PourRecord
	for i := 0; i < 8; i++ {
		pours = append(pours, models.PourRecord{
			ID: strings.Repeat("p", i+1), Date: "2026-08-10",
			LocationID: "loc1", VolumeDelivered: 2.0,
		})
	}

	p := BuildPreview(pours, lookupFixture(), DateRange{Start: "2026-08-01", End: "2026-08-31"})
	if len(p.Rows) != 5 {
		t.Errorf("Expected 5 preview rows, got %d", len(p.Rows))
	}
	if p.NotShown != 3 {
		t.Errorf("Expected 3 hidden records, got %d", p.NotShown)
	}
	if p.TotalPours != 8 || p.TotalVolume != 16.0 {
		t.Errorf("Aggregates wrong: %+v", p.Stats)
	}
	if p.Rows[0].Location != "Bloco A" {
		t.Errorf("Expected resolved location name, got %q", p.Rows[0].Location)
	}

	empty := BuildPreview(nil, lookupFixture(), DateRange{})
	if empty.Rows == nil || len(empty.Rows) != 0 || empty.NotShown != 0 {
		t.Errorf("Empty preview wrong: %+v", empty)
	}
}
