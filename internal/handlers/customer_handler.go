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

type CustomerHandler struct {
	repo      interfaces.CustomerRepository
	registry  *refcheck.Registry
	validator *validator.Validate
}

func NewCustomerHandler(repo interfaces.CustomerRepository, registry *refcheck.Registry) *CustomerHandler {
	return &CustomerHandler{
		repo:      repo,
		registry:  registry,
		validator: validator.New(),
	}
}

// @Tags Customers
// @Summary Create a customer
// @Accept json
// @Produce json
// @Param customer body models.CreateCustomerRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} map[string]string
// @Router /api/v1/customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer := &models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := h.repo.Create(r.Context(), customer); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to create customer: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Customer ID is required")
		return
	}

	customer, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "customer not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.repo.List(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list customers: "+err.Error())
		return
	}

	if customers == nil {
		customers = []models.Customer{} // Return empty array instead of null
	}

	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Customer ID is required")
		return
	}

	var req models.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == nil && req.Email == nil && req.Phone == nil && req.Address == nil {
		writeJSONError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "customer not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Failed to update customer: "+err.Error())
		return
	}

	customer, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// @Tags Customers
// @Summary Delete a customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Blocked by quotes or invoices that reference the customer"
// @Router /api/v1/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	deleteWithConflictCheck(w, r, "Customer", h.registry, h.repo.Delete)
}
