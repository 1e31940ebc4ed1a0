package models

type ExpenseCategory struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,min=2,max=255"`
}

type CreateExpenseCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

type Expense struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id" validate:"required"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	ExpenseDate string  `json:"expense_date" validate:"required,datetime=2006-01-02"`
}

type CreateExpenseRequest struct {
	CategoryID  string  `json:"category_id" validate:"required"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	ExpenseDate string  `json:"expense_date" validate:"required,datetime=2006-01-02"`
}
