package handlers

import (
	"net/http"
	"time"

	"github.com/concresys/concresys/internal/models"
	"github.com/concresys/concresys/internal/report"
)

// recentLimit caps the dashboard activity list.
const recentLimit = 20

// dashboardResponse carries the period aggregates and the first slice
// of filtered records in store order (most-recent-first).
type dashboardResponse struct {
	report.Stats
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Recent    []models.PourRecord `json:"recent"`
}

// rangeFromQuery reads startDate/endDate, falling back to the given
// default for fields left empty.
func rangeFromQuery(req *http.Request, def report.DateRange) report.DateRange {
	r := def
	if v := req.URL.Query().Get("startDate"); v != "" {
		r.Start = v
	}
	if v := req.URL.Query().Get("endDate"); v != "" {
		r.End = v
	}
	return r
}

// getDashboard returns the date-range aggregates. Defaults to the first
// through last day of the current month, server-local time.
func (r *Router) getDashboard(w http.ResponseWriter, req *http.Request) {
	dateRange := rangeFromQuery(req, report.DashboardRange(time.Now()))

	snap := r.reg.Snapshot()
	filtered := report.FilterPours(snap.Pours, dateRange)

	recent := filtered
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	if recent == nil {
		recent = []models.PourRecord{}
	}

	respondJSON(w, http.StatusOK, dashboardResponse{
		Stats:     report.Aggregate(filtered),
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
		Recent:    recent,
	})
}
