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

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(database *sql.DB) interfaces.CustomerRepository {
	return &customerRepository{db: database}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	customer.ID = uuid.NewString()
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `
		INSERT INTO customers (id, name, email, phone, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating customer: %v", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM customers
		WHERE id = ?
	`

	var customer models.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting customer: %v", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context) ([]models.Customer, error) {
	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM customers
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Phone,
			&c.Address,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning customer: %v", err)
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating customers: %v", err)
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, id string, req *models.UpdateCustomerRequest) error {
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

	query := fmt.Sprintf("UPDATE customers SET %s WHERE id = ?", strings.Join(setValues, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating customer: %v", err)
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update customer: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return &interfaces.ConstraintViolationError{Op: "delete customer", Err: err}
		}
		log.Printf("Error deleting customer: %v", err)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
