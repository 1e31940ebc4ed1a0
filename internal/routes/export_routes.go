package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/handlers"
)

func RegisterExportRoutes(router chi.Router, db *sql.DB) {
	exportHandler := handlers.NewExportHandler(db)

	router.Route("/reports", func(r chi.Router) {
		r.Get("/invoices/export", exportHandler.ExportInvoices)
		r.Get("/quotes/export", exportHandler.ExportQuotes)
		r.Get("/purchase-orders/export", exportHandler.ExportPurchaseOrders)
	})
}
