package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/handlers"
	"backoffice/internal/refcheck"
	"backoffice/internal/repository"
)

func RegisterVehicleRoutes(router chi.Router, db *sql.DB, registry *refcheck.Registry) {
	vehicleRepo := repository.NewVehicleRepository(db)
	vehicleHandler := handlers.NewVehicleHandler(vehicleRepo, registry)

	router.Route("/vehicles", func(r chi.Router) {
		r.Get("/", vehicleHandler.ListVehicles)
		r.Post("/", vehicleHandler.CreateVehicle)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", vehicleHandler.GetVehicle)
			r.Put("/", vehicleHandler.UpdateVehicle)
			r.Delete("/", vehicleHandler.DeleteVehicle)
		})
	})
}
