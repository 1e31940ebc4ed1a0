package interfaces

import (
	"context"

	"backoffice/internal/models"
)

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id string) (*models.Vendor, error)
	List(ctx context.Context) ([]models.Vendor, error)
	Update(ctx context.Context, id string, req *models.UpdateVendorRequest) error
	Delete(ctx context.Context, id string) error
}
