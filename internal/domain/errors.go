package domain

import "errors"

// Ошибки валидации
var (
	ErrInvalidQuantity      = errors.New("quantity must be between 1 and 1000")
	ErrInvalidPrice         = errors.New("price must be greater than zero with at most two decimal places")
	ErrInvalidTip           = errors.New("tip must be non-negative with at most two decimal places")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidRole          = errors.New("invalid employee role")
	ErrInvalidLocation      = errors.New("invalid table location")
	ErrInvalidCapacity      = errors.New("capacity must be between 1 and 20")
	ErrInvalidPartySize     = errors.New("party size must be greater than zero")
	ErrInvalidPeriod        = errors.New("period start must not be after its end")
	ErrMalformedDateTime    = errors.New("malformed date or time")
	ErrInvalidTableForOrder = errors.New("dine-in orders require a table and takeout orders must not have one")
	ErrInvalidShiftTime     = errors.New("shift end time must be after start time")
	ErrPastReservation      = errors.New("cannot create reservation for a past date")
	ErrSelfSupervision      = errors.New("employee cannot supervise themselves")
	ErrSupervisionCycle     = errors.New("assigning this manager would create a supervision cycle")
	ErrConstraintViolation  = errors.New("value violates a storage constraint")
	ErrAmountOutOfRange     = errors.New("order amounts exceed the numeric(10,2) range")
)

// Ошибки ссылочной целостности
var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrTableNotFound       = errors.New("table not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrShiftNotFound       = errors.New("shift not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderItemNotFound   = errors.New("order item not found")
	ErrReferenceNotFound   = errors.New("referenced record does not exist")
	ErrDeleteRestricted    = errors.New("record is still referenced and cannot be deleted")
)

// Ошибки состояния
var (
	ErrDuplicateEmail        = errors.New("email is already registered")
	ErrDuplicateCategoryName = errors.New("category with this name already exists")
	ErrDuplicateTableNumber  = errors.New("table with this number already exists")
	ErrOrderClosed           = errors.New("order is completed or cancelled")
	ErrInvalidTransition     = errors.New("status transition is not allowed")
	ErrMenuItemUnavailable   = errors.New("menu item is currently unavailable")
	ErrTableInactive         = errors.New("table is not active")
	ErrTableAlreadyReserved  = errors.New("table already reserved at this time")
)

// Ошибки поддержания инварианта и конкурентного доступа
var (
	ErrTotalsInconsistent = errors.New("order disappeared during totals recalculation")
	ErrConcurrentUpdate   = errors.New("order was modified concurrently, retry the request")
)
