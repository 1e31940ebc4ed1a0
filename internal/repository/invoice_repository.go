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

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(database *sql.DB) interfaces.InvoiceRepository {
	return &invoiceRepository{db: database}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	invoice.ID = uuid.NewString()
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusDraft
	}

	query := `
		INSERT INTO invoices (id, invoice_number, customer_id, vendor_id, quote_id, purchase_order_id,
			invoice_date, due_date, status, total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID,
		invoice.InvoiceNumber,
		invoice.CustomerID,
		invoice.VendorID,
		invoice.QuoteID,
		invoice.PurchaseOrderID,
		invoice.InvoiceDate,
		invoice.DueDate,
		invoice.Status,
		invoice.Total,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating invoice: %v", err)
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	query := `
		SELECT id, invoice_number, customer_id, vendor_id, quote_id, purchase_order_id,
			invoice_date, due_date, status, total, created_at, updated_at
		FROM invoices
		WHERE id = ?
	`

	var invoice models.Invoice
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.InvoiceNumber,
		&invoice.CustomerID,
		&invoice.VendorID,
		&invoice.QuoteID,
		&invoice.PurchaseOrderID,
		&invoice.InvoiceDate,
		&invoice.DueDate,
		&invoice.Status,
		&invoice.Total,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting invoice: %v", err)
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	query := `
		SELECT id, invoice_number, customer_id, vendor_id, quote_id, purchase_order_id,
			invoice_date, due_date, status, total, created_at, updated_at
		FROM invoices
		ORDER BY invoice_number
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing invoices: %v", err)
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(
			&inv.ID,
			&inv.InvoiceNumber,
			&inv.CustomerID,
			&inv.VendorID,
			&inv.QuoteID,
			&inv.PurchaseOrderID,
			&inv.InvoiceDate,
			&inv.DueDate,
			&inv.Status,
			&inv.Total,
			&inv.CreatedAt,
			&inv.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning invoice: %v", err)
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating invoices: %v", err)
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) Update(ctx context.Context, id string, req *models.UpdateInvoiceRequest) error {
	setValues := []string{}
	args := []interface{}{}

	if req.InvoiceNumber != nil {
		setValues = append(setValues, "invoice_number = ?")
		args = append(args, *req.InvoiceNumber)
	}
	if req.InvoiceDate != nil {
		setValues = append(setValues, "invoice_date = ?")
		args = append(args, *req.InvoiceDate)
	}
	if req.DueDate != nil {
		setValues = append(setValues, "due_date = ?")
		args = append(args, *req.DueDate)
	}
	if req.Status != nil {
		setValues = append(setValues, "status = ?")
		args = append(args, *req.Status)
	}
	if req.Total != nil {
		setValues = append(setValues, "total = ?")
		args = append(args, *req.Total)
	}

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE invoices SET %s WHERE id = ?", strings.Join(setValues, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating invoice: %v", err)
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

// Delete removes the invoice; attachment rows cascade at the engine. Nothing
// references invoices, so a constraint failure here would be a schema change
// the finder registry has not caught up with yet.
func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return &interfaces.ConstraintViolationError{Op: "delete invoice", Err: err}
		}
		log.Printf("Error deleting invoice: %v", err)
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
