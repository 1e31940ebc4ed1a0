package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/interfaces"
	"backoffice/internal/models"
)

type payslipRepository struct {
	db *sql.DB
}

func NewPayslipRepository(database *sql.DB) interfaces.PayslipRepository {
	return &payslipRepository{db: database}
}

func (r *payslipRepository) Create(ctx context.Context, payslip *models.Payslip) error {
	payslip.ID = uuid.NewString()
	payslip.Net = payslip.Gross - payslip.Deductions
	payslip.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO payslips (id, employee_id, period, gross, deductions, net, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		payslip.ID,
		payslip.EmployeeID,
		payslip.Period,
		payslip.Gross,
		payslip.Deductions,
		payslip.Net,
		payslip.CreatedAt,
	)
	if err != nil {
		log.Printf("Error creating payslip: %v", err)
		return fmt.Errorf("failed to create payslip: %w", err)
	}

	return nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (*models.Payslip, error) {
	query := `
		SELECT id, employee_id, period, gross, deductions, net, created_at
		FROM payslips
		WHERE id = ?
	`

	var payslip models.Payslip
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&payslip.ID,
		&payslip.EmployeeID,
		&payslip.Period,
		&payslip.Gross,
		&payslip.Deductions,
		&payslip.Net,
		&payslip.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting payslip: %v", err)
		return nil, fmt.Errorf("failed to get payslip: %w", err)
	}

	return &payslip, nil
}

func (r *payslipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]models.Payslip, error) {
	query := `
		SELECT id, employee_id, period, gross, deductions, net, created_at
		FROM payslips
		WHERE employee_id = ?
		ORDER BY period
	`

	rows, err := r.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		log.Printf("Error listing payslips: %v", err)
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []models.Payslip
	for rows.Next() {
		var p models.Payslip
		if err := rows.Scan(
			&p.ID,
			&p.EmployeeID,
			&p.Period,
			&p.Gross,
			&p.Deductions,
			&p.Net,
			&p.CreatedAt,
		); err != nil {
			log.Printf("Error scanning payslip: %v", err)
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating payslips: %v", err)
		return nil, fmt.Errorf("error iterating payslips: %w", err)
	}

	return payslips, nil
}

func (r *payslipRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payslips WHERE id = ?`, id)
	if err != nil {
		log.Printf("Error deleting payslip: %v", err)
		return fmt.Errorf("failed to delete payslip: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete payslip: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
