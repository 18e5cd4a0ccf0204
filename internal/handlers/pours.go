package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/concresys/concresys/internal/models"
	"github.com/concresys/concresys/internal/report"
	"github.com/concresys/concresys/internal/store"
	"github.com/gorilla/mux"
)

// pourRequest is the transient form state of a pour entry. Volume
// travels as text and is converted to a number at exactly one boundary,
// parsePourRequest; it is never stored as both string and number.
type pourRequest struct {
	Date            string `json:"date"`
	InvoiceNumber   string `json:"invoiceNumber"`
	LocationID      string `json:"locationId"`
	DeviceID        string `json:"deviceId"`
	SupplierID      string `json:"supplierId"`
	ConcreteTypeID  string `json:"concreteTypeId"`
	VolumeDelivered string `json:"volumeDelivered"`
	TruckID         string `json:"truckId"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Weather         string `json:"weather"`
	Notes           string `json:"notes"`
}

// Required-field messages, as the original form surfaced them.
const (
	msgLocationRequired = "Selecione um Local de Aplicação"
	msgSupplierRequired = "Selecione um Fornecedor"
	msgTypeRequired     = "Selecione um Traço de Concreto"
	msgVolumeRequired   = "Volume da Nota Fiscal é obrigatório"
	msgVolumeInvalid    = "Volume inválido"
	msgDeviceMismatch   = "Dispositivo não pertence ao local selecionado"
)

// parsePourRequest validates the form state and assembles the domain
// record. The returned message is user-facing when ok is false.
func (r *Router) parsePourRequest(in pourRequest) (models.PourRecord, string, bool) {
	var rec models.PourRecord

	if in.LocationID == "" {
		return rec, msgLocationRequired, false
	}
	if in.SupplierID == "" {
		return rec, msgSupplierRequired, false
	}
	if in.ConcreteTypeID == "" {
		return rec, msgTypeRequired, false
	}
	if in.VolumeDelivered == "" {
		return rec, msgVolumeRequired, false
	}

	volume, err := strconv.ParseFloat(in.VolumeDelivered, 64)
	if err != nil || volume < 0 {
		return rec, msgVolumeInvalid, false
	}

	if in.DeviceID != "" {
		dev, ok := r.reg.FindDevice(in.DeviceID)
		if !ok || dev.LocationID != in.LocationID {
			return rec, msgDeviceMismatch, false
		}
	}

	date := in.Date
	if date == "" {
		// Local calendar day, not UTC, so the default never lands on
		// yesterday or tomorrow for the operator.
		date = time.Now().Format("2006-01-02")
	}

	weather := models.Weather(in.Weather)
	switch weather {
	case models.WeatherSunny, models.WeatherCloudy, models.WeatherRainy:
	default:
		weather = models.WeatherSunny
	}

	rec = models.PourRecord{
		Date:            date,
		InvoiceNumber:   in.InvoiceNumber,
		LocationID:      in.LocationID,
		DeviceID:        in.DeviceID,
		SupplierID:      in.SupplierID,
		ConcreteTypeID:  in.ConcreteTypeID,
		VolumeDelivered: volume,
		TruckID:         in.TruckID,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		Weather:         weather,
		Notes:           in.Notes,
	}
	return rec, "", true
}

// listPours returns the full history, sorted client-side style:
// sortBy in {date, nf, location, supplier, volume}, dir in {asc, desc}.
func (r *Router) listPours(w http.ResponseWriter, req *http.Request) {
	snap := r.reg.Snapshot()

	key := report.ParseSortKey(req.URL.Query().Get("sortBy"))
	dir := req.URL.Query().Get("dir")
	desc := dir == "desc" || (dir == "" && key == report.SortByDate)

	sorted := report.SortPours(snap.Pours, key, desc, snap.Locations, snap.Suppliers)
	respondJSON(w, http.StatusOK, sorted)
}

// createPour records a delivery and prepends it to the session store,
// keeping store order most-recent-first.
func (r *Router) createPour(w http.ResponseWriter, req *http.Request) {
	var in pourRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	rec, msg, ok := r.parsePourRequest(in)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if _, err := r.st.Create(&rec); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save pour record")
		return
	}
	r.reg.PrependPour(rec)
	respondJSON(w, http.StatusCreated, rec)
}

func (r *Router) updatePour(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if _, ok := r.reg.FindPour(id); !ok {
		respondError(w, http.StatusNotFound, "Pour record not found")
		return
	}

	var in pourRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	rec, msg, ok := r.parsePourRequest(in)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	rec.ID = id

	if err := r.st.Update(&rec); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update pour record")
		return
	}
	r.reg.ReplacePour(rec)
	respondJSON(w, http.StatusOK, rec)
}

// deletePour removes a record immediately; confirmation is the client's
// concern, there is no soft delete or undo.
func (r *Router) deletePour(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := store.Delete[models.PourRecord](r.st, id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete pour record")
		return
	}
	r.reg.RemovePour(id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Pour record deleted"})
}
