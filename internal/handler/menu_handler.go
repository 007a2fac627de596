package handler

import (
	"log/slog"
	"net/http"

	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
	"github.com/restaurant-backoffice/internal/service"
)

type MenuHandler struct {
	base
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		base:        newBase(logger),
		menuService: menuService,
	}
}

func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	category, err := h.menuService.CreateCategory(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.NewCategoryResponse(category))
}

func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.menuService.ListCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewCategoryResponses(categories))
}

func (h *MenuHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "category")
	if !ok {
		return
	}

	if err := h.menuService.DeleteCategory(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMenuItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.menuService.CreateItem(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.NewMenuItemResponse(item))
}

func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "menu item")
	if !ok {
		return
	}

	item, err := h.menuService.GetItem(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewMenuItemResponse(item))
}

// ListItems поддерживает фильтры ?category= и ?available=true
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	categoryID, err := queryID(r, "category")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid category id", err.Error())
		return
	}

	filter := repository.MenuFilter{
		CategoryID:    categoryID,
		AvailableOnly: r.URL.Query().Get("available") == "true",
	}

	items, err := h.menuService.ListItems(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewMenuItemResponses(items))
}

func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "menu item")
	if !ok {
		return
	}

	var req dto.UpdateMenuItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.menuService.UpdateItem(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewMenuItemResponse(item))
}

func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "menu item")
	if !ok {
		return
	}

	if err := h.menuService.DeleteItem(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
