package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"backoffice/internal/blob"
	"backoffice/internal/config"
	"backoffice/internal/repository"
)

type dbHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status string   `json:"status"`
	DB     dbHealth `json:"db"`
}

func SetupRoutes(database *sql.DB, cfg *config.Config, files blob.Store) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The UI is served from a separate origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "backoffice API",
			"env":     cfg.Environment,
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", DB: dbHealth{Status: "ok"}}
		status := http.StatusOK
		if err := database.PingContext(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.DB = dbHealth{Status: "down", Error: err.Error()}
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(resp)
	})

	// Every delete endpoint resolves conflicts against the same registry so
	// blocking references are reported in a stable order.
	registry := repository.NewFinderRegistry(database)

	r.Route("/api/v1", func(r chi.Router) {
		RegisterCustomerRoutes(r, database, registry)
		RegisterVendorRoutes(r, database, registry)
		RegisterEmployeeRoutes(r, database, registry)
		RegisterVehicleRoutes(r, database, registry)
		RegisterQuoteRoutes(r, database, registry)
		RegisterPurchaseOrderRoutes(r, database, registry)
		RegisterInvoiceRoutes(r, database, registry, files)
		RegisterExpenseRoutes(r, database, registry)
		RegisterExportRoutes(r, database)
	})

	RegisterSwaggerRoutes(r)

	return r
}
