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

type purchaseOrderRepository struct {
	db *sql.DB
}

func NewPurchaseOrderRepository(database *sql.DB) interfaces.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: database}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, po *models.PurchaseOrder) error {
	po.ID = uuid.NewString()
	now := time.Now().UTC()
	po.CreatedAt = now
	po.UpdatedAt = now
	if po.Status == "" {
		po.Status = models.PurchaseOrderStatusDraft
	}

	query := `
		INSERT INTO purchase_orders (id, po_number, vendor_id, order_date, status, notes, total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		po.ID,
		po.PONumber,
		po.VendorID,
		po.OrderDate,
		po.Status,
		po.Notes,
		po.Total,
		po.CreatedAt,
		po.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating purchase order: %v", err)
		return fmt.Errorf("failed to create purchase order: %w", err)
	}

	return nil
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	query := `
		SELECT id, po_number, vendor_id, order_date, status, notes, total, created_at, updated_at
		FROM purchase_orders
		WHERE id = ?
	`

	var po models.PurchaseOrder
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&po.ID,
		&po.PONumber,
		&po.VendorID,
		&po.OrderDate,
		&po.Status,
		&po.Notes,
		&po.Total,
		&po.CreatedAt,
		&po.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting purchase order: %v", err)
		return nil, fmt.Errorf("failed to get purchase order: %w", err)
	}

	return &po, nil
}

func (r *purchaseOrderRepository) List(ctx context.Context) ([]models.PurchaseOrder, error) {
	query := `
		SELECT id, po_number, vendor_id, order_date, status, notes, total, created_at, updated_at
		FROM purchase_orders
		ORDER BY po_number
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing purchase orders: %v", err)
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []models.PurchaseOrder
	for rows.Next() {
		var po models.PurchaseOrder
		if err := rows.Scan(
			&po.ID,
			&po.PONumber,
			&po.VendorID,
			&po.OrderDate,
			&po.Status,
			&po.Notes,
			&po.Total,
			&po.CreatedAt,
			&po.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning purchase order: %v", err)
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, po)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating purchase orders: %v", err)
		return nil, fmt.Errorf("error iterating purchase orders: %w", err)
	}

	return orders, nil
}

func (r *purchaseOrderRepository) Update(ctx context.Context, id string, req *models.UpdatePurchaseOrderRequest) error {
	setValues := []string{}
	args := []interface{}{}

	if req.PONumber != nil {
		setValues = append(setValues, "po_number = ?")
		args = append(args, *req.PONumber)
	}
	if req.VendorID != nil {
		setValues = append(setValues, "vendor_id = ?")
		args = append(args, *req.VendorID)
	}
	if req.OrderDate != nil {
		setValues = append(setValues, "order_date = ?")
		args = append(args, *req.OrderDate)
	}
	if req.Status != nil {
		setValues = append(setValues, "status = ?")
		args = append(args, *req.Status)
	}
	if req.Notes != nil {
		setValues = append(setValues, "notes = ?")
		args = append(args, *req.Notes)
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

	query := fmt.Sprintf("UPDATE purchase_orders SET %s WHERE id = ?", strings.Join(setValues, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating purchase order: %v", err)
		return fmt.Errorf("failed to update purchase order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update purchase order: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM purchase_orders WHERE id = ?`, id)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return &interfaces.ConstraintViolationError{Op: "delete purchase order", Err: err}
		}
		log.Printf("Error deleting purchase order: %v", err)
		return fmt.Errorf("failed to delete purchase order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete purchase order: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
