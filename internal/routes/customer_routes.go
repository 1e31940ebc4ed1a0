package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/handlers"
	"backoffice/internal/refcheck"
	"backoffice/internal/repository"
)

func RegisterCustomerRoutes(router chi.Router, db *sql.DB, registry *refcheck.Registry) {
	customerRepo := repository.NewCustomerRepository(db)
	customerHandler := handlers.NewCustomerHandler(customerRepo, registry)

	router.Route("/customers", func(r chi.Router) {
		r.Get("/", customerHandler.ListCustomers)
		r.Post("/", customerHandler.CreateCustomer)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", customerHandler.GetCustomer)
			r.Put("/", customerHandler.UpdateCustomer)
			r.Delete("/", customerHandler.DeleteCustomer)
		})
	})
}
