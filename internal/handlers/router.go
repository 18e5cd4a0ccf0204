package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/concresys/concresys/internal/ai"
	"github.com/concresys/concresys/internal/config"
	"github.com/concresys/concresys/internal/middleware"
	"github.com/concresys/concresys/internal/registry"
	"github.com/concresys/concresys/internal/store"
	"github.com/gorilla/mux"
)

// Router wraps the mux router with the application dependencies: the
// persistence gateway, the in-memory registry and the optional AI client.
type Router struct {
	*mux.Router
	cfg *config.Config
	st  *store.Store
	reg *registry.Registry
	ai  *ai.Client
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(cfg *config.Config, st *store.Store, reg *registry.Registry, aiClient *ai.Client) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		cfg:    cfg,
		st:     st,
		reg:    reg,
		ai:     aiClient,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/register", r.register).Methods("POST")
	auth.HandleFunc("/logout", r.logout).Methods("POST")

	// Application routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))

	api.HandleFunc("/dashboard", r.getDashboard).Methods("GET")

	api.HandleFunc("/pours", r.listPours).Methods("GET")
	api.HandleFunc("/pours", r.createPour).Methods("POST")
	api.HandleFunc("/pours/{id}", r.updatePour).Methods("PUT")
	api.HandleFunc("/pours/{id}", r.deletePour).Methods("DELETE")

	api.HandleFunc("/locations", r.listLocations).Methods("GET")
	api.HandleFunc("/locations", r.createLocation).Methods("POST")
	api.HandleFunc("/locations/{id}", r.updateLocation).Methods("PUT")
	api.HandleFunc("/locations/{id}", r.deleteLocation).Methods("DELETE")

	api.HandleFunc("/suppliers", r.listSuppliers).Methods("GET")
	api.HandleFunc("/suppliers", r.createSupplier).Methods("POST")
	api.HandleFunc("/suppliers/{id}", r.updateSupplier).Methods("PUT")
	api.HandleFunc("/suppliers/{id}", r.deleteSupplier).Methods("DELETE")

	api.HandleFunc("/concrete-types", r.listConcreteTypes).Methods("GET")
	api.HandleFunc("/concrete-types", r.createConcreteType).Methods("POST")
	api.HandleFunc("/concrete-types/{id}", r.updateConcreteType).Methods("PUT")
	api.HandleFunc("/concrete-types/{id}", r.deleteConcreteType).Methods("DELETE")

	api.HandleFunc("/devices", r.listDevices).Methods("GET")
	api.HandleFunc("/devices", r.createDevice).Methods("POST")
	api.HandleFunc("/devices/{id}", r.updateDevice).Methods("PUT")
	api.HandleFunc("/devices/{id}", r.deleteDevice).Methods("DELETE")
	api.HandleFunc("/devices/{id}/label", r.deviceLabel).Methods("GET")

	api.HandleFunc("/inputs", r.listInputs).Methods("GET")
	api.HandleFunc("/inputs", r.createInput).Methods("POST")
	api.HandleFunc("/inputs/{id}", r.updateInput).Methods("PUT")
	api.HandleFunc("/inputs/{id}", r.deleteInput).Methods("DELETE")

	api.HandleFunc("/reports/preview", r.reportPreview).Methods("GET")
	api.HandleFunc("/reports/excel", r.exportExcel).Methods("GET")
	api.HandleFunc("/reports/pdf", r.exportPDF).Methods("GET")
	api.HandleFunc("/reports/analysis", r.analyzeData).Methods("POST")

	// Static frontend
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.FrontendDir)))

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
