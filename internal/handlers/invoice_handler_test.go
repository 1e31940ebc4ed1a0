package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/blob"
	"backoffice/internal/interfaces"
	"backoffice/internal/models"
	"backoffice/internal/refcheck"
)

type mockInvoiceRepo struct {
	deleteErr error
	deleted   []string
}

var _ interfaces.InvoiceRepository = (*mockInvoiceRepo)(nil)

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error { return nil }
func (m *mockInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	return nil, interfaces.ErrNotFound
}
func (m *mockInvoiceRepo) List(ctx context.Context) ([]models.Invoice, error) { return nil, nil }
func (m *mockInvoiceRepo) Update(ctx context.Context, id string, req *models.UpdateInvoiceRequest) error {
	return nil
}
func (m *mockInvoiceRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockAttachmentRepo struct {
	attachments []models.InvoiceAttachment
}

var _ interfaces.AttachmentRepository = (*mockAttachmentRepo)(nil)

func (m *mockAttachmentRepo) Create(ctx context.Context, attachment *models.InvoiceAttachment) error {
	return nil
}
func (m *mockAttachmentRepo) GetByID(ctx context.Context, id string) (*models.InvoiceAttachment, error) {
	return nil, interfaces.ErrNotFound
}
func (m *mockAttachmentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]models.InvoiceAttachment, error) {
	return m.attachments, nil
}
func (m *mockAttachmentRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeBlobStore struct {
	deleted []string
}

var _ blob.Store = (*fakeBlobStore)(nil)

func (f *fakeBlobStore) Save(ctx context.Context, key string, body io.Reader, contentType string) error {
	return nil
}
func (f *fakeBlobStore) Read(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, errors.New("not stored")
}
func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}
func (f *fakeBlobStore) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func newInvoiceDeleteRouter(repo *mockInvoiceRepo, attachments *mockAttachmentRepo, files blob.Store) *chi.Mux {
	h := NewInvoiceHandler(repo, &mockCustomerRepo{}, attachments, files, refcheck.NewRegistry(nil))
	r := chi.NewRouter()
	r.Delete("/invoices/{id}", h.DeleteInvoice)
	return r
}

// Attachment rows cascade with the invoice; their blobs must go too.
func TestDeleteInvoiceCleansUpAttachmentBlobs(t *testing.T) {
	repo := &mockInvoiceRepo{}
	attachments := &mockAttachmentRepo{attachments: []models.InvoiceAttachment{
		{ID: "a1", InvoiceID: "i1", BlobKey: "attachments/i1/a1.pdf"},
		{ID: "a2", InvoiceID: "i1", BlobKey: "attachments/i1/a2.png"},
	}}
	files := &fakeBlobStore{}
	r := newInvoiceDeleteRouter(repo, attachments, files)

	req := httptest.NewRequest(http.MethodDelete, "/invoices/i1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d (%s)", w.Code, w.Body.String())
	}
	if len(files.deleted) != 2 {
		t.Fatalf("expected 2 blobs deleted, got %v", files.deleted)
	}
	if files.deleted[0] != "attachments/i1/a1.pdf" || files.deleted[1] != "attachments/i1/a2.png" {
		t.Fatalf("unexpected blob keys %v", files.deleted)
	}
}

// A blocked delete must leave the blobs alone.
func TestDeleteInvoiceBlockedKeepsBlobs(t *testing.T) {
	repo := &mockInvoiceRepo{deleteErr: &interfaces.ConstraintViolationError{
		Op:  "delete invoice",
		Err: errors.New("FOREIGN KEY constraint failed"),
	}}
	attachments := &mockAttachmentRepo{attachments: []models.InvoiceAttachment{
		{ID: "a1", InvoiceID: "i1", BlobKey: "attachments/i1/a1.pdf"},
	}}
	files := &fakeBlobStore{}
	r := newInvoiceDeleteRouter(repo, attachments, files)

	req := httptest.NewRequest(http.MethodDelete, "/invoices/i1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
	if len(files.deleted) != 0 {
		t.Fatalf("blobs must survive a blocked delete, got %v", files.deleted)
	}
}

// Without a blob store the delete path is the plain repository call.
func TestDeleteInvoiceWithoutBlobStore(t *testing.T) {
	repo := &mockInvoiceRepo{}
	h := NewInvoiceHandler(repo, &mockCustomerRepo{}, nil, nil, refcheck.NewRegistry(nil))
	r := chi.NewRouter()
	r.Delete("/invoices/{id}", h.DeleteInvoice)

	req := httptest.NewRequest(http.MethodDelete, "/invoices/i1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d (%s)", w.Code, w.Body.String())
	}
}
