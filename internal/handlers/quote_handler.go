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

type QuoteHandler struct {
	repo      interfaces.QuoteRepository
	customers interfaces.CustomerRepository
	registry  *refcheck.Registry
	validator *validator.Validate
}

func NewQuoteHandler(repo interfaces.QuoteRepository, customers interfaces.CustomerRepository, registry *refcheck.Registry) *QuoteHandler {
	return &QuoteHandler{
		repo:      repo,
		customers: customers,
		registry:  registry,
		validator: validator.New(),
	}
}

func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuoteRequest
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

	items := make([]models.QuoteItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.QuoteItem{
			VehicleTypeID: item.VehicleTypeID,
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
		}
	}

	quote := &models.Quote{
		QuoteNumber: req.QuoteNumber,
		CustomerID:  req.CustomerID,
		QuoteDate:   req.QuoteDate,
		Notes:       req.Notes,
		Items:       items,
	}

	if err := h.repo.Create(r.Context(), quote); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to create quote: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, quote)
}

func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Quote ID is required")
		return
	}

	quote, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "quote not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.repo.List(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list quotes: "+err.Error())
		return
	}

	if quotes == nil {
		quotes = []models.Quote{}
	}

	writeJSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Quote ID is required")
		return
	}

	var req models.UpdateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.QuoteNumber == nil && req.CustomerID == nil && req.QuoteDate == nil &&
		req.Status == nil && req.Notes == nil && req.Items == nil {
		writeJSONError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "quote not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Failed to update quote: "+err.Error())
		return
	}

	quote, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

// @Tags Quotes
// @Summary Delete a quote
// @Produce json
// @Param id path string true "Quote ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Blocked by invoices raised from the quote"
// @Router /api/v1/quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	deleteWithConflictCheck(w, r, "Quote", h.registry, h.repo.Delete)
}
