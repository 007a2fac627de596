package dto

import (
	"time"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// Money - денежная сумма, сериализуется строкой с двумя знаками после запятой
type Money string

// NewMoney форматирует сумму для ответа
func NewMoney(d decimal.Decimal) Money {
	return Money(d.StringFixed(domain.MoneyScale))
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// CustomerResponse - ответ с данными гостя
type CustomerResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID         int64               `json:"id"`
	FirstName  string              `json:"first_name"`
	LastName   string              `json:"last_name"`
	Role       domain.EmployeeRole `json:"role"`
	Phone      *string             `json:"phone,omitempty"`
	Email      *string             `json:"email,omitempty"`
	HireDate   string              `json:"hire_date"`
	HourlyWage Money               `json:"hourly_wage"`
	ManagerID  *int64              `json:"manager_id"`
	CreatedAt  time.Time           `json:"created_at"`
}

func NewEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Role:       e.Role,
		Phone:      e.Phone,
		Email:      e.Email,
		HireDate:   formatDate(e.HireDate),
		HourlyWage: NewMoney(e.HourlyWage),
		ManagerID:  e.ManagerID,
		CreatedAt:  e.CreatedAt,
	}
}

func NewEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = NewEmployeeResponse(&employees[i])
	}
	return resp
}

// TableResponse - ответ с данными столика
type TableResponse struct {
	ID          int64                `json:"id"`
	TableNumber string               `json:"table_number"`
	Capacity    int                  `json:"capacity"`
	Location    domain.TableLocation `json:"location"`
	IsActive    bool                 `json:"is_active"`
}

func NewTableResponse(t *domain.Table) TableResponse {
	return TableResponse{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		Location:    t.Location,
		IsActive:    t.IsActive,
	}
}

func NewTableResponses(tables []domain.Table) []TableResponse {
	resp := make([]TableResponse, len(tables))
	for i := range tables {
		resp[i] = NewTableResponse(&tables[i])
	}
	return resp
}

// CategoryResponse - ответ с данными раздела меню
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func NewCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

// MenuItemResponse - ответ с данными позиции меню
type MenuItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       Money   `json:"price"`
	IsAvailable bool    `json:"is_available"`
	CategoryID  int64   `json:"category_id"`
}

func NewMenuItemResponse(m *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       NewMoney(m.Price),
		IsAvailable: m.IsAvailable,
		CategoryID:  m.CategoryID,
	}
}

func NewMenuItemResponses(items []domain.MenuItem) []MenuItemResponse {
	resp := make([]MenuItemResponse, len(items))
	for i := range items {
		resp[i] = NewMenuItemResponse(&items[i])
	}
	return resp
}

// ReservationResponse - ответ с данными брони
type ReservationResponse struct {
	ID              int64                    `json:"id"`
	CustomerID      int64                    `json:"customer_id"`
	TableID         int64                    `json:"table_id"`
	ReservationDate string                   `json:"reservation_date"`
	ReservationTime string                   `json:"reservation_time"`
	PartySize       int                      `json:"party_size"`
	Status          domain.ReservationStatus `json:"status"`
	SpecialRequests *string                  `json:"special_requests,omitempty"`
}

func NewReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		TableID:         r.TableID,
		ReservationDate: formatDate(r.ReservationDate),
		ReservationTime: r.ReservationTime,
		PartySize:       r.PartySize,
		Status:          r.Status,
		SpecialRequests: r.SpecialRequests,
	}
}

func NewReservationResponses(reservations []domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		resp[i] = NewReservationResponse(&reservations[i])
	}
	return resp
}

// ShiftResponse - ответ с данными смены
type ShiftResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	ShiftDate  string `json:"shift_date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func NewShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		ShiftDate:  formatDate(s.ShiftDate),
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

func NewShiftResponses(shifts []domain.Shift) []ShiftResponse {
	resp := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		resp[i] = NewShiftResponse(&shifts[i])
	}
	return resp
}

// TotalsResponse - суммы заказа
type TotalsResponse struct {
	OrderID  int64 `json:"order_id"`
	Subtotal Money `json:"subtotal"`
	Tax      Money `json:"tax"`
	Tip      Money `json:"tip"`
	Total    Money `json:"total"`
}

func NewTotalsResponse(orderID int64, t domain.OrderTotals) TotalsResponse {
	return TotalsResponse{
		OrderID:  orderID,
		Subtotal: NewMoney(t.Subtotal),
		Tax:      NewMoney(t.Tax),
		Tip:      NewMoney(t.Tip),
		Total:    NewMoney(t.Total),
	}
}

// OrderItemResponse - ответ с позицией заказа
type OrderItemResponse struct {
	ID                  int64   `json:"id"`
	OrderID             int64   `json:"order_id"`
	ItemID              int64   `json:"item_id"`
	Quantity            int     `json:"quantity"`
	UnitPrice           Money   `json:"unit_price"`
	LineTotal           Money   `json:"line_total"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

func NewOrderItemResponse(i *domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:                  i.ID,
		OrderID:             i.OrderID,
		ItemID:              i.ItemID,
		Quantity:            i.Quantity,
		UnitPrice:           NewMoney(i.UnitPrice),
		LineTotal:           NewMoney(i.LineTotal()),
		SpecialInstructions: i.SpecialInstructions,
	}
}

// OrderResponse - ответ с заказом и его позициями
type OrderResponse struct {
	ID         int64               `json:"id"`
	CustomerID *int64              `json:"customer_id"`
	EmployeeID int64               `json:"employee_id"`
	TableID    *int64              `json:"table_id"`
	OrderType  domain.OrderType    `json:"order_type"`
	Status     domain.OrderStatus  `json:"status"`
	OrderDate  string              `json:"order_date"`
	OrderTime  string              `json:"order_time"`
	Subtotal   Money               `json:"subtotal"`
	Tax        Money               `json:"tax"`
	Tip        Money               `json:"tip"`
	Total      Money               `json:"total"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

func NewOrderResponse(o *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		EmployeeID: o.EmployeeID,
		TableID:    o.TableID,
		OrderType:  o.OrderType,
		Status:     o.Status,
		OrderDate:  formatDate(o.OrderDate),
		OrderTime:  o.OrderTime,
		Subtotal:   NewMoney(o.Subtotal),
		Tax:        NewMoney(o.Tax),
		Tip:        NewMoney(o.Tip),
		Total:      NewMoney(o.Total),
		Items:      make([]OrderItemResponse, len(o.Items)),
		CreatedAt:  o.CreatedAt,
	}
	for i := range o.Items {
		resp.Items[i] = NewOrderItemResponse(&o.Items[i])
	}
	return resp
}

// OrderItemMutationResponse - позиция заказа и пересчитанные суммы
type OrderItemMutationResponse struct {
	Item   *OrderItemResponse `json:"item,omitempty"`
	Totals TotalsResponse     `json:"totals"`
}

func NewOrderResponses(orders []domain.Order) []OrderResponse {
	resp := make([]OrderResponse, len(orders))
	for i := range orders {
		resp[i] = NewOrderResponse(&orders[i])
	}
	return resp
}

func NewCustomerResponses(customers []domain.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = NewCustomerResponse(&customers[i])
	}
	return resp
}

func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	resp := make([]CategoryResponse, len(categories))
	for i := range categories {
		resp[i] = NewCategoryResponse(&categories[i])
	}
	return resp
}
