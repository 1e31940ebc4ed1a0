package interfaces

import (
	"context"

	"backoffice/internal/models"
)

// QuoteRepository defines the interface for quote data operations. Line
// items live and die with their quote: Create inserts them with the quote,
// Update replaces them when the request carries any, and Delete cascades
// them at the engine.
type QuoteRepository interface {
	Create(ctx context.Context, quote *models.Quote) error
	GetByID(ctx context.Context, id string) (*models.Quote, error)
	List(ctx context.Context) ([]models.Quote, error)
	Update(ctx context.Context, id string, req *models.UpdateQuoteRequest) error
	Delete(ctx context.Context, id string) error
}
