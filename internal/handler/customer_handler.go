package handler

import (
	"log/slog"
	"net/http"

	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/service"
)

type CustomerHandler struct {
	base
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		base:            newBase(logger),
		customerService: customerService,
	}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if !h.decode(w, r, &req) {
		return
	}

	customer, err := h.customerService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.NewCustomerResponse(customer))
}

func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "customer")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewCustomerResponse(customer))
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewCustomerResponses(customers))
}

// Delete удаляет гостя вместе с его бронями, заказы остаются без гостя
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "customer")
	if !ok {
		return
	}

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
