package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
)

// base содержит общие для всех обработчиков разбор запроса и формирование ответа
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	return base{
		validator: dto.NewValidator(),
		logger:    logger,
	}
}

// decode читает тело запроса и проверяет его. При ошибке ответ уже отправлен
func (h *base) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return h.validate(w, req)
}

func (h *base) validate(w http.ResponseWriter, req any) bool {
	if err := h.validator.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}
	return true
}

// pathID извлекает положительный идентификатор из сегмента {id}
func (h *base) pathID(w http.ResponseWriter, r *http.Request, what string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err == nil && id <= 0 {
		err = errors.New("id must be positive")
	}
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s id", what), err.Error())
		return 0, false
	}
	return id, true
}

// queryInt разбирает необязательный целочисленный параметр запроса
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// queryID разбирает необязательный идентификатор из параметра запроса
func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (h *base) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrOrderItemNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrShiftNotFound),
		errors.Is(err, domain.ErrReferenceNotFound):
		h.respondError(w, http.StatusNotFound, err.Error(), "")

	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidTip),
		errors.Is(err, domain.ErrInvalidOrderType),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, domain.ErrInvalidCapacity),
		errors.Is(err, domain.ErrInvalidPartySize),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidTableForOrder),
		errors.Is(err, domain.ErrInvalidShiftTime),
		errors.Is(err, domain.ErrPastReservation),
		errors.Is(err, domain.ErrSelfSupervision),
		errors.Is(err, domain.ErrMalformedDateTime),
		errors.Is(err, domain.ErrAmountOutOfRange):
		h.respondError(w, http.StatusBadRequest, err.Error(), "")

	case errors.Is(err, domain.ErrConstraintViolation):
		h.respondError(w, http.StatusBadRequest, domain.ErrConstraintViolation.Error(), err.Error())

	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateCategoryName),
		errors.Is(err, domain.ErrDuplicateTableNumber),
		errors.Is(err, domain.ErrDeleteRestricted),
		errors.Is(err, domain.ErrOrderClosed),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrMenuItemUnavailable),
		errors.Is(err, domain.ErrTableInactive),
		errors.Is(err, domain.ErrTableAlreadyReserved),
		errors.Is(err, domain.ErrSupervisionCycle):
		h.respondError(w, http.StatusConflict, err.Error(), "")

	case errors.Is(err, domain.ErrConcurrentUpdate):
		h.respondError(w, http.StatusServiceUnavailable, domain.ErrConcurrentUpdate.Error(), "")

	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *base) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
