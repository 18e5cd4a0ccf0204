package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/concresys/concresys/internal/ai"
	"github.com/concresys/concresys/internal/report"
)

// reportPreview returns the export-screen payload: aggregates plus the
// five-row preview and the count of matching records not shown.
func (r *Router) reportPreview(w http.ResponseWriter, req *http.Request) {
	dateRange := rangeFromQuery(req, report.ExportRange(time.Now()))

	snap := r.reg.Snapshot()
	filtered := report.FilterPours(snap.Pours, dateRange)
	lookup := report.Lookup{
		Locations:     snap.Locations,
		Suppliers:     snap.Suppliers,
		ConcreteTypes: snap.ConcreteTypes,
		Devices:       snap.Devices,
	}

	respondJSON(w, http.StatusOK, report.BuildPreview(filtered, lookup, dateRange))
}

// exportExcel streams the filtered period as a spreadsheet. An empty
// period produces no file (409), mirroring the disabled export button.
func (r *Router) exportExcel(w http.ResponseWriter, req *http.Request) {
	dateRange := rangeFromQuery(req, report.ExportRange(time.Now()))

	snap := r.reg.Snapshot()
	filtered := report.FilterPours(snap.Pours, dateRange)
	rows := report.Enrich(filtered, report.Lookup{
		Locations:     snap.Locations,
		Suppliers:     snap.Suppliers,
		ConcreteTypes: snap.ConcreteTypes,
		Devices:       snap.Devices,
	})

	data, err := report.BuildExcel(rows)
	if errors.Is(err, report.ErrNoRecords) {
		respondError(w, http.StatusConflict, "No records in the selected period")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate spreadsheet")
		return
	}

	filename := report.ExportFilename(dateRange) + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// exportPDF streams the filtered period as the paginated PDF report.
func (r *Router) exportPDF(w http.ResponseWriter, req *http.Request) {
	dateRange := rangeFromQuery(req, report.ExportRange(time.Now()))

	snap := r.reg.Snapshot()
	filtered := report.FilterPours(snap.Pours, dateRange)
	rows := report.Enrich(filtered, report.Lookup{
		Locations:     snap.Locations,
		Suppliers:     snap.Suppliers,
		ConcreteTypes: snap.ConcreteTypes,
		Devices:       snap.Devices,
	})

	data, err := report.BuildPDF(rows, dateRange, report.Aggregate(filtered))
	if errors.Is(err, report.ErrNoRecords) {
		respondError(w, http.StatusConflict, "No records in the selected period")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	filename := report.ExportFilename(dateRange) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// analyzeData asks the AI boundary for a narrative summary of the
// recorded data. Failures never propagate: the response body always
// carries a readable report or placeholder message.
func (r *Router) analyzeData(w http.ResponseWriter, req *http.Request) {
	snap := r.reg.Snapshot()
	text := ai.AnalyzePourData(req.Context(), r.ai, snap.Pours, snap.Suppliers, snap.Locations, snap.ConcreteTypes)
	respondJSON(w, http.StatusOK, map[string]string{"report": text})
}
