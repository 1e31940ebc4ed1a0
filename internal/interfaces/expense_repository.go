package interfaces

import (
	"context"

	"backoffice/internal/models"
)

// ExpenseCategoryRepository defines the interface for expense category data
// operations. Delete performs its own reference check against expenses and
// returns a formatted conflict, which the resolver passes through untouched.
type ExpenseCategoryRepository interface {
	Create(ctx context.Context, category *models.ExpenseCategory) error
	GetByID(ctx context.Context, id string) (*models.ExpenseCategory, error)
	List(ctx context.Context) ([]models.ExpenseCategory, error)
	Update(ctx context.Context, id string, name string) error
	Delete(ctx context.Context, id string) error
}

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id string) (*models.Expense, error)
	List(ctx context.Context) ([]models.Expense, error)
	Delete(ctx context.Context, id string) error
}
