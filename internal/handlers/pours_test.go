package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/concresys/concresys/internal/models"
	"github.com/concresys/concresys/internal/registry"
	"github.com/gorilla/mux"
)

func testRouter() *Router {
	reg := registry.New(nil)
	reg.AppendLocation(models.Location{ID: "loc1", Name: "Bloco A"})
	reg.AppendLocation(models.Location{ID: "loc2", Name: "Fundacao"})
	reg.AppendSupplier(models.Supplier{ID: "sup1", Name: "Alfa Concreto"})
	reg.AppendConcreteType(models.ConcreteType{ID: "ct1", Name: "FCK 30"})
	reg.AppendDevice(models.Device{ID: "dev1", Type: "Bomba", UA: "UA-007", LocationID: "loc1"})
	return &Router{Router: mux.NewRouter(), reg: reg}
}

func validPourRequest() pourRequest {
	return pourRequest{
		Date:            "2026-08-10",
		InvoiceNumber:   "123",
		LocationID:      "loc1",
		DeviceID:        "dev1",
		SupplierID:      "sup1",
		ConcreteTypeID:  "ct1",
		VolumeDelivered: "8.5",
	}
}

func TestParsePourRequest(t *testing.T) {
	r := testRouter()

	rec, msg, ok := r.parsePourRequest(validPourRequest())
	if !ok {
		t.Fatalf("Expected valid request, got %q", msg)
	}
	if rec.VolumeDelivered != 8.5 {
		t.Errorf("Expected parsed volume 8.5, got %v", rec.VolumeDelivered)
	}
	if rec.Weather != models.WeatherSunny {
		t.Errorf("Expected default weather Sunny, got %q", rec.Weather)
	}
}

func TestParsePourRequestValidation(t *testing.T) {
	r := testRouter()

	cases := []struct {
		mutate func(*pourRequest)
		want   string
	}{
		{func(in *pourRequest) { in.LocationID = "" }, msgLocationRequired},
		{func(in *pourRequest) { in.SupplierID = "" }, msgSupplierRequired},
		{func(in *pourRequest) { in.ConcreteTypeID = "" }, msgTypeRequired},
		{func(in *pourRequest) { in.VolumeDelivered = "" }, msgVolumeRequired},
		{func(in *pourRequest) { in.VolumeDelivered = "abc" }, msgVolumeInvalid},
		{func(in *pourRequest) { in.VolumeDelivered = "-1" }, msgVolumeInvalid},
		{func(in *pourRequest) { in.LocationID = "loc2" }, msgDeviceMismatch},
		{func(in *pourRequest) { in.DeviceID = "unknown" }, msgDeviceMismatch},
	}
	for _, c := range cases {
		in := validPourRequest()
		c.mutate(&in)
		if _, msg, ok := r.parsePourRequest(in); ok || msg != c.want {
			t.Errorf("Expected rejection %q, got ok=%v msg=%q", c.want, ok, msg)
		}
	}
}

func TestParsePourRequestDefaultsDate(t *testing.T) {
	r := testRouter()
	in := validPourRequest()
	in.Date = ""

	rec, _, ok := r.parsePourRequest(in)
	if !ok {
		t.Fatal("Expected valid request")
	}
	if rec.Date != time.Now().Format("2006-01-02") {
		t.Errorf("Expected today's date, got %q", rec.Date)
	}
}

func TestGetDashboard(t *testing.T) {
	r := testRouter()
	today := time.Now().Format("2006-01-02")
	r.reg.PrependPour(models.PourRecord{ID: "p1", Date: today, LocationID: "loc1", VolumeDelivered: 10.0})
	r.reg.PrependPour(models.PourRecord{ID: "p2", Date: today, LocationID: "loc1", VolumeDelivered: 5.5})
	// Outside any month containing today.
	r.reg.PrependPour(models.PourRecord{ID: "p3", Date: "2000-01-01", VolumeDelivered: 99.0})

	req := httptest.NewRequest("GET", "/api/dashboard", nil)
	rr := httptest.NewRecorder()
	r.getDashboard(rr, req)

	if rr.Code != 200 {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	var resp dashboardResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if resp.TotalPours != 2 || resp.TotalVolume != 15.5 {
		t.Errorf("Aggregates wrong: %+v", resp.Stats)
	}
	if len(resp.Recent) != 2 {
		t.Errorf("Expected 2 recent records, got %d", len(resp.Recent))
	}
	// Store order is most-recent-first; p2 was prepended after p1.
	if resp.Recent[0].ID != "p2" {
		t.Errorf("Expected p2 first, got %s", resp.Recent[0].ID)
	}
}

func TestGetDashboardExplicitRange(t *testing.T) {
	r := testRouter()
	r.reg.PrependPour(models.PourRecord{ID: "p1", Date: "2026-07-15", VolumeDelivered: 4.0})

	req := httptest.NewRequest("GET", "/api/dashboard?startDate=2026-07-01&endDate=2026-07-31", nil)
	rr := httptest.NewRecorder()
	r.getDashboard(rr, req)

	var resp dashboardResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp.StartDate != "2026-07-01" || resp.EndDate != "2026-07-31" {
		t.Errorf("Range not echoed: %+v", resp)
	}
	if resp.TotalPours != 1 || resp.TotalVolume != 4.0 {
		t.Errorf("Aggregates wrong: %+v", resp.Stats)
	}
}
