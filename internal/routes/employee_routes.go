package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/handlers"
	"backoffice/internal/refcheck"
	"backoffice/internal/repository"
)

func RegisterEmployeeRoutes(router chi.Router, db *sql.DB, registry *refcheck.Registry) {
	employeeRepo := repository.NewEmployeeRepository(db)
	payslipRepo := repository.NewPayslipRepository(db)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo, payslipRepo, registry)

	router.Route("/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.ListEmployees)
		r.Post("/", employeeHandler.CreateEmployee)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", employeeHandler.GetEmployee)
			r.Put("/", employeeHandler.UpdateEmployee)
			r.Delete("/", employeeHandler.DeleteEmployee)

			r.Get("/payslips", employeeHandler.ListPayslips)
			r.Post("/payslips", employeeHandler.CreatePayslip)
		})
	})

	router.Delete("/payslips/{payslipID}", employeeHandler.DeletePayslip)
}
