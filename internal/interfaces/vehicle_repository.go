package interfaces

import (
	"context"

	"backoffice/internal/models"
)

// VehicleRepository defines the interface for vehicle data operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	Update(ctx context.Context, id string, req *models.UpdateVehicleRequest) error
	Delete(ctx context.Context, id string) error
}
