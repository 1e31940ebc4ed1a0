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

type VehicleHandler struct {
	repo      interfaces.VehicleRepository
	registry  *refcheck.Registry
	validator *validator.Validate
}

func NewVehicleHandler(repo interfaces.VehicleRepository, registry *refcheck.Registry) *VehicleHandler {
	return &VehicleHandler{
		repo:      repo,
		registry:  registry,
		validator: validator.New(),
	}
}

func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	vehicle := &models.Vehicle{
		Name:         req.Name,
		Registration: req.Registration,
		DailyRate:    req.DailyRate,
	}

	if err := h.repo.Create(r.Context(), vehicle); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to create vehicle: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Vehicle ID is required")
		return
	}

	vehicle, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "vehicle not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.repo.List(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list vehicles: "+err.Error())
		return
	}

	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Vehicle ID is required")
		return
	}

	var req models.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == nil && req.Registration == nil && req.DailyRate == nil {
		writeJSONError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "vehicle not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Failed to update vehicle: "+err.Error())
		return
	}

	vehicle, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

// DeleteVehicle reports conflicts under the quote numbers that use the
// vehicle, not the opaque line-item ids.
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	deleteWithConflictCheck(w, r, "Vehicle", h.registry, h.repo.Delete)
}
