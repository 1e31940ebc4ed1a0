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

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(database *sql.DB) interfaces.EmployeeRepository {
	return &employeeRepository{db: database}
}

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	employee.ID = uuid.NewString()
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	query := `
		INSERT INTO employees (id, name, position, email, monthly_salary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		employee.ID,
		employee.Name,
		employee.Position,
		employee.Email,
		employee.MonthlySalary,
		employee.CreatedAt,
		employee.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating employee: %v", err)
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	query := `
		SELECT id, name, position, email, monthly_salary, created_at, updated_at
		FROM employees
		WHERE id = ?
	`

	var employee models.Employee
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Position,
		&employee.Email,
		&employee.MonthlySalary,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting employee: %v", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	query := `
		SELECT id, name, position, email, monthly_salary, created_at, updated_at
		FROM employees
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing employees: %v", err)
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Position,
			&e.Email,
			&e.MonthlySalary,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning employee: %v", err)
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating employees: %v", err)
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, id string, req *models.UpdateEmployeeRequest) error {
	setValues := []string{}
	args := []interface{}{}

	if req.Name != nil {
		setValues = append(setValues, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Position != nil {
		setValues = append(setValues, "position = ?")
		args = append(args, *req.Position)
	}
	if req.Email != nil {
		setValues = append(setValues, "email = ?")
		args = append(args, *req.Email)
	}
	if req.MonthlySalary != nil {
		setValues = append(setValues, "monthly_salary = ?")
		args = append(args, *req.MonthlySalary)
	}

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = ?", strings.Join(setValues, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating employee: %v", err)
		return fmt.Errorf("failed to update employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return &interfaces.ConstraintViolationError{Op: "delete employee", Err: err}
		}
		log.Printf("Error deleting employee: %v", err)
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
