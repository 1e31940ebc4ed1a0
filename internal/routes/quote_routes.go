package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/handlers"
	"backoffice/internal/refcheck"
	"backoffice/internal/repository"
)

func RegisterQuoteRoutes(router chi.Router, db *sql.DB, registry *refcheck.Registry) {
	quoteRepo := repository.NewQuoteRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	quoteHandler := handlers.NewQuoteHandler(quoteRepo, customerRepo, registry)

	router.Route("/quotes", func(r chi.Router) {
		r.Get("/", quoteHandler.ListQuotes)
		r.Post("/", quoteHandler.CreateQuote)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", quoteHandler.GetQuote)
			r.Put("/", quoteHandler.UpdateQuote)
			r.Delete("/", quoteHandler.DeleteQuote)
		})
	})
}
