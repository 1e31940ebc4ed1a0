package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/blob"
	"backoffice/internal/handlers"
	"backoffice/internal/interfaces"
	"backoffice/internal/refcheck"
	"backoffice/internal/repository"
)

func RegisterInvoiceRoutes(router chi.Router, db *sql.DB, registry *refcheck.Registry, files blob.Store) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	var attachmentRepo interfaces.AttachmentRepository
	if files != nil {
		attachmentRepo = repository.NewAttachmentRepository(db)
	}
	invoiceHandler := handlers.NewInvoiceHandler(invoiceRepo, customerRepo, attachmentRepo, files, registry)

	router.Route("/invoices", func(r chi.Router) {
		r.Get("/", invoiceHandler.ListInvoices)
		r.Post("/", invoiceHandler.CreateInvoice)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", invoiceHandler.GetInvoice)
			r.Put("/", invoiceHandler.UpdateInvoice)
			r.Delete("/", invoiceHandler.DeleteInvoice)

			// Attachment routes stay unmounted when no blob store is
			// configured.
			if files != nil {
				attachmentHandler := handlers.NewAttachmentHandler(attachmentRepo, invoiceRepo, files)

				r.Get("/attachments", attachmentHandler.ListAttachments)
				r.Post("/attachments", attachmentHandler.UploadAttachments)
				r.Get("/attachments/{attachmentID}", attachmentHandler.DownloadAttachment)
				r.Delete("/attachments/{attachmentID}", attachmentHandler.DeleteAttachment)
			}
		})
	})
}
