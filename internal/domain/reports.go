package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLedgerRow - строка журнала заказов для отчётов о выручке
type OrderLedgerRow struct {
	OrderID   int64           `json:"order_id"`
	OrderDate time.Time       `json:"order_date"`
	Status    OrderStatus     `json:"status"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Tip       decimal.Decimal `json:"tip"`
	Total     decimal.Decimal `json:"total"`
}

// DailyRevenueRow - выручка за день по закрытым заказам
type DailyRevenueRow struct {
	OrderDate  time.Time       `json:"order_date"`
	OrderCount int64           `json:"order_count"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Tips       decimal.Decimal `json:"tips"`
	Total      decimal.Decimal `json:"total"`
}

// CategoryRevenueRow - выручка по разделу меню
type CategoryRevenueRow struct {
	CategoryID int64           `json:"category_id"`
	Category   string          `json:"category"`
	OrderCount int64           `json:"order_count"`
	ItemsSold  int64           `json:"items_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ServerRevenueRow - выручка по сотруднику, оформившему заказы
type ServerRevenueRow struct {
	EmployeeID int64           `json:"employee_id"`
	ServerName string          `json:"server_name"`
	Role       EmployeeRole    `json:"role"`
	OrderCount int64           `json:"order_count"`
	GrossSales decimal.Decimal `json:"gross_sales"`
	Tips       decimal.Decimal `json:"tips"`
	Total      decimal.Decimal `json:"total"`
}

// PopularItemRow - популярность позиции меню
type PopularItemRow struct {
	ItemID       int64           `json:"item_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	TimesOrdered int64           `json:"times_ordered"`
	Quantity     int64           `json:"quantity"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// CustomerSpendRow - гость с тратами выше среднего
type CustomerSpendRow struct {
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	OrderCount   int64           `json:"order_count"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	AverageSpent decimal.Decimal `json:"avg_customer_spending"`
}

// OverbookedRow - бронь, в которой гостей больше, чем мест за столиком
type OverbookedRow struct {
	ReservationID   int64     `json:"reservation_id"`
	ReservationDate time.Time `json:"reservation_date"`
	ReservationTime string    `json:"reservation_time"`
	TableID         int64     `json:"table_id"`
	TableNumber     string    `json:"table_number"`
	Capacity        int       `json:"capacity"`
	PartySize       int       `json:"party_size"`
}

// UpcomingReservationRow - предстоящая бронь с именем гостя и номером столика
type UpcomingReservationRow struct {
	ReservationID   int64             `json:"reservation_id"`
	ReservationDate time.Time         `json:"reservation_date"`
	ReservationTime string            `json:"reservation_time"`
	CustomerName    string            `json:"customer_name"`
	TableNumber     string            `json:"table_number"`
	PartySize       int               `json:"party_size"`
	Status          ReservationStatus `json:"status"`
}
