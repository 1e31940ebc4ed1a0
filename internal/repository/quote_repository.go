package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/db"
	"backoffice/internal/interfaces"
	"backoffice/internal/models"
)

type quoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(database *sql.DB) interfaces.QuoteRepository {
	return &quoteRepository{db: database}
}

func (r *quoteRepository) Create(ctx context.Context, quote *models.Quote) error {
	quote.ID = uuid.NewString()
	now := time.Now().UTC()
	quote.CreatedAt = now
	quote.UpdatedAt = now
	if quote.Status == "" {
		quote.Status = models.QuoteStatusDraft
	}
	quote.Total = quoteTotal(quote.Items)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO quotes (id, quote_number, customer_id, quote_date, status, notes, total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		quote.ID,
		quote.QuoteNumber,
		quote.CustomerID,
		quote.QuoteDate,
		quote.Status,
		quote.Notes,
		quote.Total,
		quote.CreatedAt,
		quote.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating quote: %v", err)
		return fmt.Errorf("failed to create quote: %w", err)
	}

	if err := insertQuoteItems(ctx, tx, quote.ID, quote.Items); err != nil {
		return err
	}
	for i := range quote.Items {
		quote.Items[i].QuoteID = quote.ID
	}

	return tx.Commit()
}

func insertQuoteItems(ctx context.Context, tx *sql.Tx, quoteID string, items []models.QuoteItem) error {
	for i := range items {
		items[i].ID = uuid.NewString()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO quote_items (id, quote_id, vehicle_type_id, description, quantity, unit_price)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			items[i].ID,
			quoteID,
			items[i].VehicleTypeID,
			items[i].Description,
			items[i].Quantity,
			items[i].UnitPrice,
		)
		if err != nil {
			log.Printf("Error creating quote item: %v", err)
			return fmt.Errorf("failed to create quote item: %w", err)
		}
	}
	return nil
}

func quoteTotal(items []models.QuoteItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*models.Quote, error) {
	query := `
		SELECT id, quote_number, customer_id, quote_date, status, notes, total, created_at, updated_at
		FROM quotes
		WHERE id = ?
	`

	var quote models.Quote
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&quote.ID,
		&quote.QuoteNumber,
		&quote.CustomerID,
		&quote.QuoteDate,
		&quote.Status,
		&quote.Notes,
		&quote.Total,
		&quote.CreatedAt,
		&quote.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting quote: %v", err)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	items, err := r.itemsFor(ctx, quote.ID)
	if err != nil {
		return nil, err
	}
	quote.Items = items

	return &quote, nil
}

func (r *quoteRepository) itemsFor(ctx context.Context, quoteID string) ([]models.QuoteItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quote_id, vehicle_type_id, description, quantity, unit_price
		FROM quote_items
		WHERE quote_id = ?
		ORDER BY rowid
	`, quoteID)
	if err != nil {
		log.Printf("Error listing quote items: %v", err)
		return nil, fmt.Errorf("failed to list quote items: %w", err)
	}
	defer rows.Close()

	items := []models.QuoteItem{}
	for rows.Next() {
		var item models.QuoteItem
		if err := rows.Scan(
			&item.ID,
			&item.QuoteID,
			&item.VehicleTypeID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			log.Printf("Error scanning quote item: %v", err)
			return nil, fmt.Errorf("failed to scan quote item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *quoteRepository) List(ctx context.Context) ([]models.Quote, error) {
	query := `
		SELECT id, quote_number, customer_id, quote_date, status, notes, total, created_at, updated_at
		FROM quotes
		ORDER BY quote_number
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing quotes: %v", err)
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(
			&q.ID,
			&q.QuoteNumber,
			&q.CustomerID,
			&q.QuoteDate,
			&q.Status,
			&q.Notes,
			&q.Total,
			&q.CreatedAt,
			&q.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning quote: %v", err)
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err = rows.Err(); err != nil {
		log.Printf("Error iterating quotes: %v", err)
		return nil, fmt.Errorf("error iterating quotes: %w", err)
	}

	for i := range quotes {
		items, err := r.itemsFor(ctx, quotes[i].ID)
		if err != nil {
			return nil, err
		}
		quotes[i].Items = items
	}

	return quotes, nil
}

func (r *quoteRepository) Update(ctx context.Context, id string, req *models.UpdateQuoteRequest) error {
	setValues := []string{}
	args := []interface{}{}

	if req.QuoteNumber != nil {
		setValues = append(setValues, "quote_number = ?")
		args = append(args, *req.QuoteNumber)
	}
	if req.CustomerID != nil {
		setValues = append(setValues, "customer_id = ?")
		args = append(args, *req.CustomerID)
	}
	if req.QuoteDate != nil {
		setValues = append(setValues, "quote_date = ?")
		args = append(args, *req.QuoteDate)
	}
	if req.Status != nil {
		setValues = append(setValues, "status = ?")
		args = append(args, *req.Status)
	}
	if req.Notes != nil {
		setValues = append(setValues, "notes = ?")
		args = append(args, *req.Notes)
	}

	if len(setValues) == 0 && req.Items == nil {
		return fmt.Errorf("no fields to update")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}
	defer tx.Rollback()

	if req.Items != nil {
		items := make([]models.QuoteItem, len(req.Items))
		for i, item := range req.Items {
			items[i] = models.QuoteItem{
				VehicleTypeID: item.VehicleTypeID,
				Description:   item.Description,
				Quantity:      item.Quantity,
				UnitPrice:     item.UnitPrice,
			}
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM quote_items WHERE quote_id = ?`, id); err != nil {
			log.Printf("Error replacing quote items: %v", err)
			return fmt.Errorf("failed to update quote: %w", err)
		}
		if err := insertQuoteItems(ctx, tx, id, items); err != nil {
			return err
		}
		setValues = append(setValues, "total = ?")
		args = append(args, quoteTotal(items))
	}

	setValues = append(setValues, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE quotes SET %s WHERE id = ?", strings.Join(setValues, ", "))

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating quote: %v", err)
		return fmt.Errorf("failed to update quote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update quote: %w", err)
	}
	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return tx.Commit()
}

// Delete removes the quote and, through the engine's cascade, its line
// items. Invoices raised from the quote block it at the foreign key.
func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return &interfaces.ConstraintViolationError{Op: "delete quote", Err: err}
		}
		log.Printf("Error deleting quote: %v", err)
		return fmt.Errorf("failed to delete quote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete quote: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
