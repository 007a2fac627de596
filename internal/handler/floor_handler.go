package handler

import (
	"log/slog"
	"net/http"

	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/service"
)

// FloorHandler обслуживает столики и брони
type FloorHandler struct {
	base
	tableService       service.TableService
	reservationService service.ReservationService
}

func NewFloorHandler(tableService service.TableService, reservationService service.ReservationService, logger *slog.Logger) *FloorHandler {
	return &FloorHandler{
		base:               newBase(logger),
		tableService:       tableService,
		reservationService: reservationService,
	}
}

func (h *FloorHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTableRequest
	if !h.decode(w, r, &req) {
		return
	}

	table, err := h.tableService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.NewTableResponse(table))
}

func (h *FloorHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "table")
	if !ok {
		return
	}

	table, err := h.tableService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewTableResponse(table))
}

// ListTables по умолчанию отдаёт все столики, ?active=true оставляет только активные
func (h *FloorHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	tables, err := h.tableService.List(r.Context(), activeOnly)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewTableResponses(tables))
}

func (h *FloorHandler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "table")
	if !ok {
		return
	}

	var req dto.UpdateTableRequest
	if !h.decode(w, r, &req) {
		return
	}

	table, err := h.tableService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewTableResponse(table))
}

func (h *FloorHandler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "table")
	if !ok {
		return
	}

	if err := h.tableService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FloorHandler) AvailableTables(w http.ResponseWriter, r *http.Request) {
	query := dto.AvailableTablesQuery{
		Date: r.URL.Query().Get("date"),
		Time: r.URL.Query().Get("time"),
	}
	if !h.validate(w, &query) {
		return
	}

	tables, err := h.tableService.Available(r.Context(), query.Date, query.Time)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewTableResponses(tables))
}

func (h *FloorHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReservationRequest
	if !h.decode(w, r, &req) {
		return
	}

	reservation, err := h.reservationService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.NewReservationResponse(reservation))
}

func (h *FloorHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "reservation")
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewReservationResponse(reservation))
}

func (h *FloorHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.respondError(w, http.StatusBadRequest, "validation error", "date is required")
		return
	}

	reservations, err := h.reservationService.ListByDate(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewReservationResponses(reservations))
}

func (h *FloorHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "reservation")
	if !ok {
		return
	}

	var req dto.UpdateReservationStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	reservation, err := h.reservationService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewReservationResponse(reservation))
}

func (h *FloorHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "reservation")
	if !ok {
		return
	}

	if err := h.reservationService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
