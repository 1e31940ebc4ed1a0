package interfaces

import (
	"context"

	"backoffice/internal/models"
)

// PurchaseOrderRepository defines the interface for purchase order data operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *models.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*models.PurchaseOrder, error)
	List(ctx context.Context) ([]models.PurchaseOrder, error)
	Update(ctx context.Context, id string, req *models.UpdatePurchaseOrderRequest) error
	Delete(ctx context.Context, id string) error
}
