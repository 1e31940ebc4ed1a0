package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"backoffice/internal/interfaces"
	"backoffice/internal/models"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(database *sql.DB) interfaces.ExpenseRepository {
	return &expenseRepository{db: database}
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	expense.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (id, category_id, description, amount, expense_date)
		VALUES (?, ?, ?, ?, ?)
	`,
		expense.ID,
		expense.CategoryID,
		expense.Description,
		expense.Amount,
		expense.ExpenseDate,
	)
	if err != nil {
		log.Printf("Error creating expense: %v", err)
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.QueryRowContext(ctx, `
		SELECT id, category_id, description, amount, expense_date
		FROM expenses
		WHERE id = ?
	`, id).Scan(
		&expense.ID,
		&expense.CategoryID,
		&expense.Description,
		&expense.Amount,
		&expense.ExpenseDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting expense: %v", err)
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return &expense, nil
}

func (r *expenseRepository) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category_id, description, amount, expense_date
		FROM expenses
		ORDER BY expense_date, rowid
	`)
	if err != nil {
		log.Printf("Error listing expenses: %v", err)
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(
			&e.ID,
			&e.CategoryID,
			&e.Description,
			&e.Amount,
			&e.ExpenseDate,
		); err != nil {
			log.Printf("Error scanning expense: %v", err)
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating expenses: %v", err)
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		log.Printf("Error deleting expense: %v", err)
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
