package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/handlers"
	"backoffice/internal/refcheck"
	"backoffice/internal/repository"
)

func RegisterVendorRoutes(router chi.Router, db *sql.DB, registry *refcheck.Registry) {
	vendorRepo := repository.NewVendorRepository(db)
	vendorHandler := handlers.NewVendorHandler(vendorRepo, registry)

	router.Route("/vendors", func(r chi.Router) {
		r.Get("/", vendorHandler.ListVendors)
		r.Post("/", vendorHandler.CreateVendor)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", vendorHandler.GetVendor)
			r.Put("/", vendorHandler.UpdateVendor)
			r.Delete("/", vendorHandler.DeleteVendor)
		})
	})
}
