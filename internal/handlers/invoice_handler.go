package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"backoffice/internal/blob"
	"backoffice/internal/interfaces"
	"backoffice/internal/models"
	"backoffice/internal/refcheck"
)

type InvoiceHandler struct {
	repo        interfaces.InvoiceRepository
	customers   interfaces.CustomerRepository
	attachments interfaces.AttachmentRepository
	files       blob.Store
	registry    *refcheck.Registry
	validator   *validator.Validate
}

// NewInvoiceHandler wires the invoice endpoints. attachments and files may
// be nil when no blob store is configured; invoice deletes then skip blob
// cleanup.
func NewInvoiceHandler(repo interfaces.InvoiceRepository, customers interfaces.CustomerRepository, attachments interfaces.AttachmentRepository, files blob.Store, registry *refcheck.Registry) *InvoiceHandler {
	return &InvoiceHandler{
		repo:        repo,
		customers:   customers,
		attachments: attachments,
		files:       files,
		registry:    registry,
		validator:   validator.New(),
	}
}

// @Tags Invoices
// @Summary Create an invoice
// @Accept json
// @Produce json
// @Param invoice body models.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} map[string]string
// @Router /api/v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.customers.GetByID(r.Context(), req.CustomerID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusBadRequest, "customer_id not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	invoice := &models.Invoice{
		InvoiceNumber:   req.InvoiceNumber,
		CustomerID:      req.CustomerID,
		VendorID:        req.VendorID,
		QuoteID:         req.QuoteID,
		PurchaseOrderID: req.PurchaseOrderID,
		InvoiceDate:     req.InvoiceDate,
		DueDate:         req.DueDate,
		Total:           req.Total,
	}

	if err := h.repo.Create(r.Context(), invoice); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to create invoice: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Invoice ID is required")
		return
	}

	invoice, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "invoice not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.repo.List(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list invoices: "+err.Error())
		return
	}

	if invoices == nil {
		invoices = []models.Invoice{}
	}

	writeJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Invoice ID is required")
		return
	}

	var req models.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.InvoiceNumber == nil && req.InvoiceDate == nil && req.DueDate == nil &&
		req.Status == nil && req.Total == nil {
		writeJSONError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "invoice not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Failed to update invoice: "+err.Error())
		return
	}

	invoice, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, invoice)
}

// DeleteInvoice removes the invoice; attachment rows cascade with it at the
// engine, so their blobs are snapshotted before the delete and cleaned up
// best-effort afterwards. A blob-store failure only logs: the invoice is
// already gone and an orphaned blob is the cheaper leftover.
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	deleteFn := h.repo.Delete
	if h.attachments != nil && h.files != nil {
		deleteFn = func(ctx context.Context, id string) error {
			attachments, err := h.attachments.ListByInvoice(ctx, id)
			if err != nil {
				log.Printf("Failed to list attachments for invoice %s: %v", id, err)
				attachments = nil
			}

			if err := h.repo.Delete(ctx, id); err != nil {
				return err
			}

			for _, attachment := range attachments {
				if err := h.files.Delete(ctx, attachment.BlobKey); err != nil {
					log.Printf("Failed to delete blob %s: %v", attachment.BlobKey, err)
				}
			}
			return nil
		}
	}

	deleteWithConflictCheck(w, r, "Invoice", h.registry, deleteFn)
}
