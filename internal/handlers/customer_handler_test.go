package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/interfaces"
	"backoffice/internal/models"
	"backoffice/internal/refcheck"
)

type mockCustomerRepo struct {
	deleteErr error
}

var _ interfaces.CustomerRepository = (*mockCustomerRepo)(nil)

func (m *mockCustomerRepo) Create(ctx context.Context, customer *models.Customer) error { return nil }
func (m *mockCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return nil, interfaces.ErrNotFound
}
func (m *mockCustomerRepo) List(ctx context.Context) ([]models.Customer, error) { return nil, nil }
func (m *mockCustomerRepo) Update(ctx context.Context, id string, req *models.UpdateCustomerRequest) error {
	return nil
}
func (m *mockCustomerRepo) Delete(ctx context.Context, id string) error { return m.deleteErr }

func newCustomerRouter(repo interfaces.CustomerRepository, registry *refcheck.Registry) *chi.Mux {
	h := NewCustomerHandler(repo, registry)
	r := chi.NewRouter()
	r.Get("/customers/{id}", h.GetCustomer)
	r.Delete("/customers/{id}", h.DeleteCustomer)
	return r
}

func emptyRegistry() *refcheck.Registry {
	return refcheck.NewRegistry(nil)
}

func TestGetCustomerNotFoundJSON(t *testing.T) {
	r := newCustomerRouter(&mockCustomerRepo{}, emptyRegistry())

	req := httptest.NewRequest(http.MethodGet, "/customers/c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content-type got %q", ct)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] == nil {
		t.Fatalf("expected error field, got %v", resp)
	}
}

func TestDeleteCustomerNoContent(t *testing.T) {
	r := newCustomerRouter(&mockCustomerRepo{}, emptyRegistry())

	req := httptest.NewRequest(http.MethodDelete, "/customers/c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d (%s)", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}
}

func TestDeleteCustomerNotFound(t *testing.T) {
	r := newCustomerRouter(&mockCustomerRepo{deleteErr: interfaces.ErrNotFound}, emptyRegistry())

	req := httptest.NewRequest(http.MethodDelete, "/customers/c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "customer not found" {
		t.Fatalf("unexpected error message %q", resp["error"])
	}
}

func TestDeleteCustomerConflictItemizesReferences(t *testing.T) {
	repo := &mockCustomerRepo{deleteErr: &interfaces.ConstraintViolationError{
		Op:  "delete customer",
		Err: errors.New("FOREIGN KEY constraint failed"),
	}}
	registry := refcheck.NewRegistry(map[string][]refcheck.Finder{
		"Customer": {
			func(ctx context.Context, id string) ([]refcheck.Reference, error) {
				return []refcheck.Reference{
					{Type: "Quote", Label: "Q-100"},
					{Type: "Invoice", Label: "INV-200"},
				}, nil
			},
		},
	})
	r := newCustomerRouter(repo, registry)

	req := httptest.NewRequest(http.MethodDelete, "/customers/c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := "Cannot delete Customer as it is referenced in Quote Q-100 and Invoice INV-200"
	if resp["error"] != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", resp["error"], want)
	}
}

func TestDeleteCustomerConflictWithoutFindersIsGeneric(t *testing.T) {
	repo := &mockCustomerRepo{deleteErr: &interfaces.ConstraintViolationError{
		Op:  "delete customer",
		Err: errors.New("FOREIGN KEY constraint failed"),
	}}
	r := newCustomerRouter(repo, emptyRegistry())

	req := httptest.NewRequest(http.MethodDelete, "/customers/c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := "Cannot delete Customer as it is referenced in other records"
	if resp["error"] != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", resp["error"], want)
	}
}

func TestDeleteCustomerUnrelatedErrorIs500(t *testing.T) {
	repo := &mockCustomerRepo{deleteErr: errors.New("disk I/O error")}
	r := newCustomerRouter(repo, emptyRegistry())

	req := httptest.NewRequest(http.MethodDelete, "/customers/c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d (%s)", w.Code, w.Body.String())
	}
}
