package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/interfaces"
	"backoffice/internal/models"
	"backoffice/internal/refcheck"
)

type mockCategoryRepo struct {
	deleteErr error
}

var _ interfaces.ExpenseCategoryRepository = (*mockCategoryRepo)(nil)

func (m *mockCategoryRepo) Create(ctx context.Context, category *models.ExpenseCategory) error {
	return nil
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*models.ExpenseCategory, error) {
	return nil, interfaces.ErrNotFound
}
func (m *mockCategoryRepo) List(ctx context.Context) ([]models.ExpenseCategory, error) {
	return nil, nil
}
func (m *mockCategoryRepo) Update(ctx context.Context, id string, name string) error { return nil }
func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error              { return m.deleteErr }

type mockExpenseRepo struct{}

var _ interfaces.ExpenseRepository = (*mockExpenseRepo)(nil)

func (m *mockExpenseRepo) Create(ctx context.Context, expense *models.Expense) error { return nil }
func (m *mockExpenseRepo) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	return nil, interfaces.ErrNotFound
}
func (m *mockExpenseRepo) List(ctx context.Context) ([]models.Expense, error) { return nil, nil }
func (m *mockExpenseRepo) Delete(ctx context.Context, id string) error        { return nil }

// The category store formats its own conflict; the handler must surface it
// verbatim without consulting any finder.
func TestDeleteExpenseCategoryPassesStoreConflictThrough(t *testing.T) {
	conflict := refcheck.NewConflictError("Expense Category", []refcheck.Reference{
		{Type: "Expense", Label: "Diesel top-up"},
	})
	finderCalled := false
	registry := refcheck.NewRegistry(map[string][]refcheck.Finder{
		"Expense Category": {
			func(ctx context.Context, id string) ([]refcheck.Reference, error) {
				finderCalled = true
				return nil, nil
			},
		},
	})

	h := NewExpenseHandler(&mockCategoryRepo{deleteErr: conflict}, &mockExpenseRepo{}, registry)
	r := chi.NewRouter()
	r.Delete("/expense-categories/{id}", h.DeleteCategory)

	req := httptest.NewRequest(http.MethodDelete, "/expense-categories/ec1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
	if finderCalled {
		t.Fatal("finder must not run for a preformatted conflict")
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := "Cannot delete Expense Category as it is referenced in Expense Diesel top-up"
	if resp["error"] != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", resp["error"], want)
	}
}
