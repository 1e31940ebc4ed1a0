package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/handlers"
	"backoffice/internal/refcheck"
	"backoffice/internal/repository"
)

func RegisterPurchaseOrderRoutes(router chi.Router, db *sql.DB, registry *refcheck.Registry) {
	poRepo := repository.NewPurchaseOrderRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	poHandler := handlers.NewPurchaseOrderHandler(poRepo, vendorRepo, registry)

	router.Route("/purchase-orders", func(r chi.Router) {
		r.Get("/", poHandler.ListPurchaseOrders)
		r.Post("/", poHandler.CreatePurchaseOrder)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", poHandler.GetPurchaseOrder)
			r.Put("/", poHandler.UpdatePurchaseOrder)
			r.Delete("/", poHandler.DeletePurchaseOrder)
		})
	})
}
