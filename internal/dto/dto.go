package dto

import (
	"github.com/restaurant-backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest - запрос на регистрацию гостя
type CreateCustomerRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=50"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Email     string  `json:"email" validate:"required,email,max=100"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	FirstName  string              `json:"first_name" validate:"required,min=1,max=50"`
	LastName   string              `json:"last_name" validate:"required,min=1,max=50"`
	Role       domain.EmployeeRole `json:"role" validate:"required,employee_role"`
	Phone      *string             `json:"phone" validate:"omitempty,max=20"`
	Email      *string             `json:"email" validate:"omitempty,email,max=100"`
	HireDate   string              `json:"hire_date" validate:"required,datetime=2006-01-02"`
	HourlyWage decimal.Decimal     `json:"hourly_wage" validate:"gt=0"`
	ManagerID  *int64              `json:"manager_id" validate:"omitempty,min=1"`
}

// UpdateManagerRequest - смена руководителя, null снимает руководителя
type UpdateManagerRequest struct {
	ManagerID *int64 `json:"manager_id" validate:"omitempty,min=1"`
}

// CreateTableRequest - запрос на добавление столика
type CreateTableRequest struct {
	TableNumber string               `json:"table_number" validate:"required,min=1,max=10"`
	Capacity    int                  `json:"capacity" validate:"min=1,max=20"`
	Location    domain.TableLocation `json:"location" validate:"required,table_location"`
	IsActive    *bool                `json:"is_active"`
}

// UpdateTableRequest - частичное обновление столика
type UpdateTableRequest struct {
	Capacity *int                  `json:"capacity" validate:"omitempty,min=1,max=20"`
	Location *domain.TableLocation `json:"location" validate:"omitempty,table_location"`
	IsActive *bool                 `json:"is_active"`
}

// CreateCategoryRequest - запрос на создание раздела меню
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=50"`
	Description *string `json:"description"`
}

// CreateMenuItemRequest - запрос на создание позиции меню
type CreateMenuItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	IsAvailable *bool           `json:"is_available"`
	CategoryID  int64           `json:"category_id" validate:"required,min=1"`
}

// UpdateMenuItemRequest - частичное обновление позиции меню
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	IsAvailable *bool            `json:"is_available"`
	CategoryID  *int64           `json:"category_id" validate:"omitempty,min=1"`
}

// CreateReservationRequest - запрос на бронирование
type CreateReservationRequest struct {
	CustomerID      int64   `json:"customer_id" validate:"required,min=1"`
	TableID         int64   `json:"table_id" validate:"required,min=1"`
	ReservationDate string  `json:"reservation_date" validate:"required,datetime=2006-01-02"`
	ReservationTime string  `json:"reservation_time" validate:"required,datetime=15:04"`
	PartySize       int     `json:"party_size" validate:"min=1"`
	SpecialRequests *string `json:"special_requests"`
}

// UpdateReservationStatusRequest - смена статуса брони
type UpdateReservationStatusRequest struct {
	Status domain.ReservationStatus `json:"status" validate:"required,reservation_status"`
}

// CreateShiftRequest - запрос на назначение смены
type CreateShiftRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,min=1"`
	ShiftDate  string `json:"shift_date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
}

// CreateOrderRequest - запрос на открытие заказа. Без даты и времени
// заказ открывается текущим моментом
type CreateOrderRequest struct {
	CustomerID *int64           `json:"customer_id" validate:"omitempty,min=1"`
	EmployeeID int64            `json:"employee_id" validate:"required,min=1"`
	TableID    *int64           `json:"table_id" validate:"omitempty,min=1"`
	OrderType  domain.OrderType `json:"order_type" validate:"required,order_type"`
	OrderDate  *string          `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	OrderTime  *string          `json:"order_time" validate:"omitempty,datetime=15:04"`
}

// AddOrderItemRequest - добавление позиции в заказ. Без unit_price
// фиксируется текущая цена из меню
type AddOrderItemRequest struct {
	ItemID              int64            `json:"item_id" validate:"required,min=1"`
	Quantity            int              `json:"quantity" validate:"min=1,max=1000"`
	UnitPrice           *decimal.Decimal `json:"unit_price" validate:"omitempty,gt=0"`
	SpecialInstructions *string          `json:"special_instructions"`
	AllowUnavailable    bool             `json:"allow_unavailable"`
}

// UpdateOrderItemRequest - смена количества в позиции заказа
type UpdateOrderItemRequest struct {
	Quantity int `json:"quantity" validate:"min=1,max=1000"`
}

// SetTipRequest - установка чаевых
type SetTipRequest struct {
	Tip decimal.Decimal `json:"tip" validate:"gte=0"`
}

// UpdateOrderStatusRequest - смена статуса заказа
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required,order_status"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AvailableTablesQuery - параметры поиска свободных столиков
type AvailableTablesQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
	Time string `validate:"required,datetime=15:04"`
}

// OrderLedgerQuery - период журнала заказов
type OrderLedgerQuery struct {
	From string `validate:"required,datetime=2006-01-02"`
	To   string `validate:"required,datetime=2006-01-02"`
}

// DailyRevenueQuery - глубина отчёта по дням
type DailyRevenueQuery struct {
	Days int `validate:"min=1,max=366"`
}

// PopularItemsQuery - размер рейтинга позиций
type PopularItemsQuery struct {
	Limit int `validate:"min=1,max=100"`
}
