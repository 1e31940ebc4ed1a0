package interfaces

import (
	"context"

	"backoffice/internal/models"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	List(ctx context.Context) ([]models.Invoice, error)
	Update(ctx context.Context, id string, req *models.UpdateInvoiceRequest) error
	Delete(ctx context.Context, id string) error
}

// AttachmentRepository defines the interface for invoice attachment rows.
// The blob bytes themselves live in the blob store under BlobKey.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.InvoiceAttachment) error
	GetByID(ctx context.Context, id string) (*models.InvoiceAttachment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]models.InvoiceAttachment, error)
	Delete(ctx context.Context, id string) error
}
