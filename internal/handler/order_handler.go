package handler

import (
	"log/slog"
	"net/http"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
	"github.com/restaurant-backoffice/internal/service"
)

// OrderHandler обслуживает заказы и их позиции
type OrderHandler struct {
	base
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		base:         newBase(logger),
		orderService: orderService,
	}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orderService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "order")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// List поддерживает фильтры ?status= и ?date=
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.OrderFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.OrderStatus(raw)
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid date", err.Error())
			return
		}
		filter.Date = &date
	}

	orders, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewOrderResponses(orders))
}

func (h *OrderHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "order")
	if !ok {
		return
	}

	totals, err := h.orderService.GetTotals(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewTotalsResponse(id, totals))
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "order")
	if !ok {
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "order")
	if !ok {
		return
	}

	var req dto.AddOrderItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, order, err := h.orderService.AddItem(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	itemResp := dto.NewOrderItemResponse(item)
	h.respondJSON(w, http.StatusCreated, dto.OrderItemMutationResponse{
		Item:   &itemResp,
		Totals: dto.NewTotalsResponse(order.ID, order.Totals()),
	})
}

func (h *OrderHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.pathID(w, r, "order item")
	if !ok {
		return
	}

	var req dto.UpdateOrderItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orderService.UpdateItemQuantity(r.Context(), itemID, req.Quantity)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := dto.OrderItemMutationResponse{Totals: dto.NewTotalsResponse(order.ID, order.Totals())}
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			itemResp := dto.NewOrderItemResponse(&order.Items[i])
			resp.Item = &itemResp
			break
		}
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.pathID(w, r, "order item")
	if !ok {
		return
	}

	order, err := h.orderService.RemoveItem(r.Context(), itemID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.OrderItemMutationResponse{
		Totals: dto.NewTotalsResponse(order.ID, order.Totals()),
	})
}

func (h *OrderHandler) SetTip(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "order")
	if !ok {
		return
	}

	var req dto.SetTipRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orderService.SetTip(r.Context(), id, req.Tip)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewTotalsResponse(order.ID, order.Totals()))
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "order")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// Recalculate принудительно пересчитывает суммы заказа по позициям
func (h *OrderHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "order")
	if !ok {
		return
	}

	order, err := h.orderService.Recalculate(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewTotalsResponse(order.ID, order.Totals()))
}
