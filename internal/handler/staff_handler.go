package handler

import (
	"log/slog"
	"net/http"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/service"
)

// StaffHandler обслуживает сотрудников, их подчинение и смены
type StaffHandler struct {
	base
	empService   service.EmployeeService
	shiftService service.ShiftService
}

func NewStaffHandler(empService service.EmployeeService, shiftService service.ShiftService, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{
		base:         newBase(logger),
		empService:   empService,
		shiftService: shiftService,
	}
}

func (h *StaffHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.NewEmployeeResponse(emp))
}

func (h *StaffHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "employee")
	if !ok {
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewEmployeeResponse(emp))
}

func (h *StaffHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var role *domain.EmployeeRole
	if raw := r.URL.Query().Get("role"); raw != "" {
		v := domain.EmployeeRole(raw)
		role = &v
	}

	employees, err := h.empService.List(r.Context(), role)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewEmployeeResponses(employees))
}

func (h *StaffHandler) Subordinates(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "employee")
	if !ok {
		return
	}

	employees, err := h.empService.GetSubordinates(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewEmployeeResponses(employees))
}

// SetManager назначает руководителя, null в manager_id снимает его
func (h *StaffHandler) SetManager(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "employee")
	if !ok {
		return
	}

	var req dto.UpdateManagerRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.SetManager(r.Context(), id, req.ManagerID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewEmployeeResponse(emp))
}

func (h *StaffHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "employee")
	if !ok {
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *StaffHandler) EmployeeShifts(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "employee")
	if !ok {
		return
	}

	shifts, err := h.shiftService.ListByEmployee(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewShiftResponses(shifts))
}

func (h *StaffHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShiftRequest
	if !h.decode(w, r, &req) {
		return
	}

	shift, err := h.shiftService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.NewShiftResponse(shift))
}

func (h *StaffHandler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "shift")
	if !ok {
		return
	}

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
