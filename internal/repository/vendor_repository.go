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

type vendorRepository struct {
	db *sql.DB
}

func NewVendorRepository(database *sql.DB) interfaces.VendorRepository {
	return &vendorRepository{db: database}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	vendor.ID = uuid.NewString()
	now := time.Now().UTC()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	query := `
		INSERT INTO vendors (id, name, email, phone, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.Email,
		vendor.Phone,
		vendor.Address,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating vendor: %v", err)
		return fmt.Errorf("failed to create vendor: %w", err)
	}

	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM vendors
		WHERE id = ?
	`

	var vendor models.Vendor
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.Email,
		&vendor.Phone,
		&vendor.Address,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting vendor: %v", err)
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}

	return &vendor, nil
}

func (r *vendorRepository) List(ctx context.Context) ([]models.Vendor, error) {
	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM vendors
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing vendors: %v", err)
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Email,
			&v.Phone,
			&v.Address,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning vendor: %v", err)
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating vendors: %v", err)
		return nil, fmt.Errorf("error iterating vendors: %w", err)
	}

	return vendors, nil
}

func (r *vendorRepository) Update(ctx context.Context, id string, req *models.UpdateVendorRequest) error {
	setValues := []string{}
	args := []interface{}{}

	if req.Name != nil {
		setValues = append(setValues, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Email != nil {
		setValues = append(setValues, "email = ?")
		args = append(args, *req.Email)
	}
	if req.Phone != nil {
		setValues = append(setValues, "phone = ?")
		args = append(args, *req.Phone)
	}
	if req.Address != nil {
		setValues = append(setValues, "address = ?")
		args = append(args, *req.Address)
	}

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE vendors SET %s WHERE id = ?", strings.Join(setValues, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating vendor: %v", err)
		return fmt.Errorf("failed to update vendor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update vendor: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vendors WHERE id = ?`, id)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return &interfaces.ConstraintViolationError{Op: "delete vendor", Err: err}
		}
		log.Printf("Error deleting vendor: %v", err)
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
