package interfaces

import (
	"context"

	"backoffice/internal/models"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, id string, req *models.UpdateCustomerRequest) error
	Delete(ctx context.Context, id string) error
}
