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

type EmployeeHandler struct {
	repo      interfaces.EmployeeRepository
	payslips  interfaces.PayslipRepository
	registry  *refcheck.Registry
	validator *validator.Validate
}

func NewEmployeeHandler(repo interfaces.EmployeeRepository, payslips interfaces.PayslipRepository, registry *refcheck.Registry) *EmployeeHandler {
	return &EmployeeHandler{
		repo:      repo,
		payslips:  payslips,
		registry:  registry,
		validator: validator.New(),
	}
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee := &models.Employee{
		Name:          req.Name,
		Position:      req.Position,
		Email:         req.Email,
		MonthlySalary: req.MonthlySalary,
	}

	if err := h.repo.Create(r.Context(), employee); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to create employee: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Employee ID is required")
		return
	}

	employee, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repo.List(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list employees: "+err.Error())
		return
	}

	if employees == nil {
		employees = []models.Employee{}
	}

	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Employee ID is required")
		return
	}

	var req models.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == nil && req.Position == nil && req.Email == nil && req.MonthlySalary == nil {
		writeJSONError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Failed to update employee: "+err.Error())
		return
	}

	employee, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// DeleteEmployee refuses to remove an employee with issued payslips; pay
// history is an audit record.
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	deleteWithConflictCheck(w, r, "Employee", h.registry, h.repo.Delete)
}

func (h *EmployeeHandler) CreatePayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		writeJSONError(w, http.StatusBadRequest, "Employee ID is required")
		return
	}

	var req models.CreatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.EmployeeID = employeeID

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.repo.GetByID(r.Context(), employeeID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payslip := &models.Payslip{
		EmployeeID: req.EmployeeID,
		Period:     req.Period,
		Gross:      req.Gross,
		Deductions: req.Deductions,
	}

	if err := h.payslips.Create(r.Context(), payslip); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to create payslip: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, payslip)
}

func (h *EmployeeHandler) ListPayslips(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		writeJSONError(w, http.StatusBadRequest, "Employee ID is required")
		return
	}

	payslips, err := h.payslips.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list payslips: "+err.Error())
		return
	}

	if payslips == nil {
		payslips = []models.Payslip{}
	}

	writeJSON(w, http.StatusOK, payslips)
}

func (h *EmployeeHandler) DeletePayslip(w http.ResponseWriter, r *http.Request) {
	payslipID := chi.URLParam(r, "payslipID")
	if payslipID == "" {
		writeJSONError(w, http.StatusBadRequest, "Payslip ID is required")
		return
	}

	if err := h.payslips.Delete(r.Context(), payslipID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "payslip not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete payslip: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
