package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"backoffice/internal/db"
	"backoffice/internal/interfaces"
	"backoffice/internal/models"
	"backoffice/internal/refcheck"
)

type expenseCategoryRepository struct {
	db *sql.DB
}

func NewExpenseCategoryRepository(database *sql.DB) interfaces.ExpenseCategoryRepository {
	return &expenseCategoryRepository{db: database}
}

func (r *expenseCategoryRepository) Create(ctx context.Context, category *models.ExpenseCategory) error {
	category.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expense_categories (id, name) VALUES (?, ?)`,
		category.ID, category.Name)
	if err != nil {
		log.Printf("Error creating expense category: %v", err)
		return fmt.Errorf("failed to create expense category: %w", err)
	}

	return nil
}

func (r *expenseCategoryRepository) GetByID(ctx context.Context, id string) (*models.ExpenseCategory, error) {
	var category models.ExpenseCategory
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM expense_categories WHERE id = ?`, id).
		Scan(&category.ID, &category.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting expense category: %v", err)
		return nil, fmt.Errorf("failed to get expense category: %w", err)
	}

	return &category, nil
}

func (r *expenseCategoryRepository) List(ctx context.Context) ([]models.ExpenseCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM expense_categories ORDER BY name`)
	if err != nil {
		log.Printf("Error listing expense categories: %v", err)
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	defer rows.Close()

	var categories []models.ExpenseCategory
	for rows.Next() {
		var c models.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			log.Printf("Error scanning expense category: %v", err)
			return nil, fmt.Errorf("failed to scan expense category: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating expense categories: %v", err)
		return nil, fmt.Errorf("error iterating expense categories: %w", err)
	}

	return categories, nil
}

func (r *expenseCategoryRepository) Update(ctx context.Context, id string, name string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE expense_categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		log.Printf("Error updating expense category: %v", err)
		return fmt.Errorf("failed to update expense category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update expense category: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

// Delete checks for dependent expenses itself before touching the row and
// returns a fully formatted conflict, so the resolver's passthrough branch
// handles it without running any finders.
func (r *expenseCategoryRepository) Delete(ctx context.Context, id string) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT description
		FROM expenses
		WHERE category_id = ?
		ORDER BY expense_date, rowid
	`, id)
	if err != nil {
		log.Printf("Error checking expense category references: %v", err)
		return fmt.Errorf("failed to delete expense category: %w", err)
	}
	defer rows.Close()

	var refs []refcheck.Reference
	for rows.Next() {
		var description string
		if err := rows.Scan(&description); err != nil {
			log.Printf("Error scanning expense reference: %v", err)
			return fmt.Errorf("failed to delete expense category: %w", err)
		}
		refs = append(refs, refcheck.Reference{Type: "Expense", Label: description})
	}
	if err = rows.Err(); err != nil {
		log.Printf("Error iterating expense references: %v", err)
		return fmt.Errorf("failed to delete expense category: %w", err)
	}
	if len(refs) > 0 {
		return refcheck.NewConflictError("Expense Category", refs)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM expense_categories WHERE id = ?`, id)
	if err != nil {
		// An expense inserted after the precheck still trips the engine's
		// foreign key; classify it so the resolver answers 409, not 500.
		if db.IsConstraintViolation(err) {
			return &interfaces.ConstraintViolationError{Op: "delete expense category", Err: err}
		}
		log.Printf("Error deleting expense category: %v", err)
		return fmt.Errorf("failed to delete expense category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete expense category: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
