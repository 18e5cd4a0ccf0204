package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/concresys/concresys/internal/models"
	"github.com/concresys/concresys/internal/services/printer"
	"github.com/concresys/concresys/internal/store"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"
)

// --- Locations ---

func (r *Router) listLocations(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.reg.Snapshot().Locations)
}

func (r *Router) createLocation(w http.ResponseWriter, req *http.Request) {
	var loc models.Location
	if err := json.NewDecoder(req.Body).Decode(&loc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if loc.Name == "" {
		respondError(w, http.StatusUnprocessableEntity, "Location name is required")
		return
	}

	if _, err := r.st.Create(&loc); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create location")
		return
	}
	r.reg.AppendLocation(loc)
	respondJSON(w, http.StatusCreated, loc)
}

func (r *Router) updateLocation(w http.ResponseWriter, req *http.Request) {
	var loc models.Location
	if err := json.NewDecoder(req.Body).Decode(&loc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	loc.ID = mux.Vars(req)["id"]
	if loc.Name == "" {
		respondError(w, http.StatusUnprocessableEntity, "Location name is required")
		return
	}

	if err := r.st.Update(&loc); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update location")
		return
	}
	r.reg.ReplaceLocation(loc)
	respondJSON(w, http.StatusOK, loc)
}

// deleteLocation removes a location without touching pours or devices
// that reference it; readers substitute a placeholder label.
func (r *Router) deleteLocation(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := store.Delete[models.Location](r.st, id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete location")
		return
	}
	r.reg.RemoveLocation(id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Location deleted"})
}

// --- Suppliers ---

func (r *Router) listSuppliers(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.reg.Snapshot().Suppliers)
}

func (r *Router) createSupplier(w http.ResponseWriter, req *http.Request) {
	var sup models.Supplier
	if err := json.NewDecoder(req.Body).Decode(&sup); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if sup.Name == "" {
		respondError(w, http.StatusUnprocessableEntity, "Supplier name is required")
		return
	}
	if sup.Rating < 1 || sup.Rating > 5 {
		sup.Rating = 5
	}

	if _, err := r.st.Create(&sup); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create supplier")
		return
	}
	r.reg.AppendSupplier(sup)
	respondJSON(w, http.StatusCreated, sup)
}

func (r *Router) updateSupplier(w http.ResponseWriter, req *http.Request) {
	var sup models.Supplier
	if err := json.NewDecoder(req.Body).Decode(&sup); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	sup.ID = mux.Vars(req)["id"]
	if sup.Name == "" {
		respondError(w, http.StatusUnprocessableEntity, "Supplier name is required")
		return
	}

	if err := r.st.Update(&sup); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update supplier")
		return
	}
	r.reg.ReplaceSupplier(sup)
	respondJSON(w, http.StatusOK, sup)
}

func (r *Router) deleteSupplier(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := store.Delete[models.Supplier](r.st, id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete supplier")
		return
	}
	r.reg.RemoveSupplier(id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Supplier deleted"})
}

// --- Concrete types ---

func (r *Router) listConcreteTypes(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.reg.Snapshot().ConcreteTypes)
}

// validIngredients keeps only complete recipe entries: an ingredient
// needs a selected input and a positive quantity.
func validIngredients(in []models.Ingredient) datatypes.JSONSlice[models.Ingredient] {
	out := make([]models.Ingredient, 0, len(in))
	for _, ing := range in {
		if ing.InputID != "" && ing.Quantity > 0 {
			out = append(out, ing)
		}
	}
	return datatypes.NewJSONSlice(out)
}

func (r *Router) createConcreteType(w http.ResponseWriter, req *http.Request) {
	var ct models.ConcreteType
	if err := json.NewDecoder(req.Body).Decode(&ct); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if ct.Name == "" {
		respondError(w, http.StatusUnprocessableEntity, "Concrete type name is required")
		return
	}
	ct.Ingredients = validIngredients(ct.Ingredients)

	if _, err := r.st.Create(&ct); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create concrete type")
		return
	}
	r.reg.AppendConcreteType(ct)
	respondJSON(w, http.StatusCreated, ct)
}

func (r *Router) updateConcreteType(w http.ResponseWriter, req *http.Request) {
	var ct models.ConcreteType
	if err := json.NewDecoder(req.Body).Decode(&ct); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	ct.ID = mux.Vars(req)["id"]
	if ct.Name == "" {
		respondError(w, http.StatusUnprocessableEntity, "Concrete type name is required")
		return
	}
	ct.Ingredients = validIngredients(ct.Ingredients)

	if err := r.st.Update(&ct); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update concrete type")
		return
	}
	r.reg.ReplaceConcreteType(ct)
	respondJSON(w, http.StatusOK, ct)
}

func (r *Router) deleteConcreteType(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := store.Delete[models.ConcreteType](r.st, id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete concrete type")
		return
	}
	r.reg.RemoveConcreteType(id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Concrete type deleted"})
}

// --- Devices ---

// listDevices returns devices sorted by owning-location name then type.
// An optional locationId narrows the set for dependent-field filtering
// in the pour entry form.
func (r *Router) listDevices(w http.ResponseWriter, req *http.Request) {
	if locID := req.URL.Query().Get("locationId"); locID != "" {
		devices := r.reg.DevicesAt(locID)
		if devices == nil {
			devices = []models.Device{}
		}
		respondJSON(w, http.StatusOK, devices)
		return
	}
	respondJSON(w, http.StatusOK, r.reg.DevicesSorted())
}

func (r *Router) createDevice(w http.ResponseWriter, req *http.Request) {
	var dev models.Device
	if err := json.NewDecoder(req.Body).Decode(&dev); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if msg, ok := validateDevice(r, dev); !ok {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if _, err := r.st.Create(&dev); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create device")
		return
	}
	r.reg.AppendDevice(dev)
	respondJSON(w, http.StatusCreated, dev)
}

func (r *Router) updateDevice(w http.ResponseWriter, req *http.Request) {
	var dev models.Device
	if err := json.NewDecoder(req.Body).Decode(&dev); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	dev.ID = mux.Vars(req)["id"]
	if msg, ok := validateDevice(r, dev); !ok {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if err := r.st.Update(&dev); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update device")
		return
	}
	r.reg.ReplaceDevice(dev)
	respondJSON(w, http.StatusOK, dev)
}

func validateDevice(r *Router, dev models.Device) (string, bool) {
	if dev.Type == "" || dev.UA == "" || dev.LocationID == "" {
		return "Device type, UA and location are required", false
	}
	if !r.reg.HasLocation(dev.LocationID) {
		return "Device must reference an existing location", false
	}
	return "", true
}

func (r *Router) deleteDevice(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := store.Delete[models.Device](r.st, id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete device")
		return
	}
	r.reg.RemoveDevice(id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Device deleted"})
}

// deviceLabel streams a printable QR label sheet for the device.
func (r *Router) deviceLabel(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	dev, ok := r.reg.FindDevice(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Device not found")
		return
	}

	count := 24
	if c, err := strconv.Atoi(req.URL.Query().Get("count")); err == nil && c > 0 {
		count = c
	}

	pdfBytes, err := printer.GenerateDeviceLabels(dev, printer.DefaultLabelConfig(count))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate labels")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=Etiquetas_%s.pdf", dev.UA))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// --- Inputs ---

func (r *Router) listInputs(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.reg.InputsSorted())
}

func (r *Router) createInput(w http.ResponseWriter, req *http.Request) {
	var in models.Input
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Name == "" || in.Price <= 0 {
		respondError(w, http.StatusUnprocessableEntity, "Input name and a positive price are required")
		return
	}
	if in.Unit == "" {
		in.Unit = models.UnitKg
	}
	// Codes are derived, not user-entered.
	in.Code = r.reg.NextInputCode()

	if _, err := r.st.Create(&in); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create input")
		return
	}
	r.reg.AppendInput(in)
	respondJSON(w, http.StatusCreated, in)
}

func (r *Router) updateInput(w http.ResponseWriter, req *http.Request) {
	var in models.Input
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	in.ID = mux.Vars(req)["id"]
	if in.Name == "" || in.Price <= 0 {
		respondError(w, http.StatusUnprocessableEntity, "Input name and a positive price are required")
		return
	}

	existing, ok := r.reg.FindInput(in.ID)
	if !ok {
		respondError(w, http.StatusNotFound, "Input not found")
		return
	}
	// The sequential code is immutable once assigned.
	in.Code = existing.Code

	if err := r.st.Update(&in); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update input")
		return
	}
	r.reg.ReplaceInput(in)
	respondJSON(w, http.StatusOK, in)
}

func (r *Router) deleteInput(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := store.Delete[models.Input](r.st, id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete input")
		return
	}
	r.reg.RemoveInput(id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Input deleted"})
}
