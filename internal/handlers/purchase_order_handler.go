package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"backoffice/internal/interfaces"
	"backoffice/internal/models"
	"backoffice/internal/refcheck"
)

type PurchaseOrderHandler struct {
	repo      interfaces.PurchaseOrderRepository
	vendors   interfaces.VendorRepository
	registry  *refcheck.Registry
	validator *validator.Validate
}

func NewPurchaseOrderHandler(repo interfaces.PurchaseOrderRepository, vendors interfaces.VendorRepository, registry *refcheck.Registry) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		repo:      repo,
		vendors:   vendors,
		registry:  registry,
		validator: validator.New(),
	}
}

func (h *PurchaseOrderHandler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.vendors.GetByID(r.Context(), req.VendorID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusBadRequest, "vendor_id not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	po := &models.PurchaseOrder{
		PONumber:  req.PONumber,
		VendorID:  req.VendorID,
		OrderDate: req.OrderDate,
		Notes:     req.Notes,
		Total:     req.Total,
	}

	if err := h.repo.Create(r.Context(), po); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to create purchase order: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, po)
}

func (h *PurchaseOrderHandler) GetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Purchase order ID is required")
		return
	}

	po, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "purchase order not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, po)
}

func (h *PurchaseOrderHandler) ListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.List(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list purchase orders: "+err.Error())
		return
	}

	if orders == nil {
		orders = []models.PurchaseOrder{}
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *PurchaseOrderHandler) UpdatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Purchase order ID is required")
		return
	}

	var req models.UpdatePurchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PONumber == nil && req.VendorID == nil && req.OrderDate == nil &&
		req.Status == nil && req.Notes == nil && req.Total == nil {
		writeJSONError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "purchase order not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Failed to update purchase order: "+err.Error())
		return
	}

	po, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, po)
}

func (h *PurchaseOrderHandler) DeletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	deleteWithConflictCheck(w, r, "Purchase Order", h.registry, h.repo.Delete)
}
