package registry

import (
	"testing"

	"github.com/concresys/concresys/internal/models"
)

func TestNextInputCode(t *testing.T) {
	reg := New(nil)

	if code := reg.NextInputCode(); code != 1 {
		t.Errorf("Expected first code 1, got %d", code)
	}

	reg.AppendInput(models.Input{ID: "a", Code: 1})
	reg.AppendInput(models.Input{ID: "b", Code: 2})
	reg.AppendInput(models.Input{ID: "c", Code: 5})

	if code := reg.NextInputCode(); code != 6 {
		t.Errorf("Expected next code 6 after {1,2,5}, got %d", code)
	}

	// Deleting the holder of the highest code frees it again within
	// the session; the remaining max drives the next assignment.
	reg.RemoveInput("c")
	if code := reg.NextInputCode(); code != 3 {
		t.Errorf("Expected next code 3 after removing code 5, got %d", code)
	}
}

func TestPourOrdering(t *testing.T) {
	reg := New(nil)

	reg.PrependPour(models.PourRecord{ID: "p1", Date: "2026-08-01"})
	reg.PrependPour(models.PourRecord{ID: "p2", Date: "2026-08-02"})
	reg.PrependPour(models.PourRecord{ID: "p3", Date: "2026-08-03"})

	pours := reg.Snapshot().Pours
	if len(pours) != 3 {
		t.Fatalf("Expected 3 pours, got %d", len(pours))
	}
	// Creates are prepended: store order is most-recent-first.
	for i, want := range []string{"p3", "p2", "p1"} {
		if pours[i].ID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, pours[i].ID)
		}
	}
}

func TestReplaceAndRemovePreserveOrder(t *testing.T) {
	reg := New(nil)
	for _, id := range []string{"a", "b", "c", "d"} {
		reg.AppendSupplier(models.Supplier{ID: id, Name: "Fornecedor " + id})
	}

	reg.ReplaceSupplier(models.Supplier{ID: "b", Name: "Atualizado"})
	reg.RemoveSupplier("c")

	suppliers := reg.Snapshot().Suppliers
	if len(suppliers) != 3 {
		t.Fatalf("Expected 3 suppliers, got %d", len(suppliers))
	}
	for i, want := range []string{"a", "b", "d"} {
		if suppliers[i].ID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, suppliers[i].ID)
		}
	}
	if suppliers[1].Name != "Atualizado" {
		t.Errorf("Expected in-place update, got name %q", suppliers[1].Name)
	}
}

func TestDevicesAtFiltersByLocation(t *testing.T) {
	reg := New(nil)
	reg.AppendDevice(models.Device{ID: "d1", Type: "Tablet", UA: "UA-1", LocationID: "locA"})
	reg.AppendDevice(models.Device{ID: "d2", Type: "Sensor", UA: "UA-2", LocationID: "locB"})
	reg.AppendDevice(models.Device{ID: "d3", Type: "Câmera", UA: "UA-3", LocationID: "locB"})

	// Switching the selected location restricts the choice set to that
	// location's devices only.
	devices := reg.DevicesAt("locB")
	if len(devices) != 2 {
		t.Fatalf("Expected 2 devices at locB, got %d", len(devices))
	}
	for _, d := range devices {
		if d.LocationID != "locB" {
			t.Errorf("Device %s does not belong to locB", d.ID)
		}
	}

	if devices := reg.DevicesAt("locC"); len(devices) != 0 {
		t.Errorf("Expected no devices at unknown location, got %d", len(devices))
	}
}

func TestDevicesSorted(t *testing.T) {
	reg := New(nil)
	reg.AppendLocation(models.Location{ID: "locB", Name: "Bloco B"})
	reg.AppendLocation(models.Location{ID: "locA", Name: "Bloco A"})
	reg.AppendDevice(models.Device{ID: "d1", Type: "Tablet", LocationID: "locB"})
	reg.AppendDevice(models.Device{ID: "d2", Type: "Sensor", LocationID: "locA"})
	reg.AppendDevice(models.Device{ID: "d3", Type: "Camera", LocationID: "locA"})

	sorted := reg.DevicesSorted()
	// Location name ascending, then device type ascending.
	for i, want := range []string{"d3", "d2", "d1"} {
		if sorted[i].ID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, sorted[i].ID)
		}
	}
}

func TestInputsSortedByCode(t *testing.T) {
	reg := New(nil)
	reg.AppendInput(models.Input{ID: "a", Code: 3, Name: "Brita"})
	reg.AppendInput(models.Input{ID: "b", Code: 1, Name: "Cimento"})
	reg.AppendInput(models.Input{ID: "c", Code: 2, Name: "Areia"})

	sorted := reg.InputsSorted()
	for i, want := range []int{1, 2, 3} {
		if sorted[i].Code != want {
			t.Errorf("Position %d: expected code %d, got %d", i, want, sorted[i].Code)
		}
	}
}
