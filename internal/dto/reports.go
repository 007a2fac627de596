package dto

import "github.com/restaurant-backoffice/internal/domain"

// OrderLedgerResponse - строка журнала заказов
type OrderLedgerResponse struct {
	OrderID   int64              `json:"order_id"`
	OrderDate string             `json:"order_date"`
	Status    domain.OrderStatus `json:"status"`
	Subtotal  Money              `json:"subtotal"`
	Tax       Money              `json:"tax"`
	Tip       Money              `json:"tip"`
	Total     Money              `json:"total"`
}

func NewOrderLedgerResponses(rows []domain.OrderLedgerRow) []OrderLedgerResponse {
	resp := make([]OrderLedgerResponse, len(rows))
	for i, r := range rows {
		resp[i] = OrderLedgerResponse{
			OrderID:   r.OrderID,
			OrderDate: formatDate(r.OrderDate),
			Status:    r.Status,
			Subtotal:  NewMoney(r.Subtotal),
			Tax:       NewMoney(r.Tax),
			Tip:       NewMoney(r.Tip),
			Total:     NewMoney(r.Total),
		}
	}
	return resp
}

// DailyRevenueResponse - выручка за день
type DailyRevenueResponse struct {
	OrderDate  string `json:"order_date"`
	OrderCount int64  `json:"order_count"`
	Subtotal   Money  `json:"subtotal"`
	Tax        Money  `json:"tax"`
	Tips       Money  `json:"tips"`
	Total      Money  `json:"total"`
}

func NewDailyRevenueResponses(rows []domain.DailyRevenueRow) []DailyRevenueResponse {
	resp := make([]DailyRevenueResponse, len(rows))
	for i, r := range rows {
		resp[i] = DailyRevenueResponse{
			OrderDate:  formatDate(r.OrderDate),
			OrderCount: r.OrderCount,
			Subtotal:   NewMoney(r.Subtotal),
			Tax:        NewMoney(r.Tax),
			Tips:       NewMoney(r.Tips),
			Total:      NewMoney(r.Total),
		}
	}
	return resp
}

// CategoryRevenueResponse - выручка по разделу меню
type CategoryRevenueResponse struct {
	CategoryID int64  `json:"category_id"`
	Category   string `json:"category"`
	OrderCount int64  `json:"order_count"`
	ItemsSold  int64  `json:"items_sold"`
	Revenue    Money  `json:"revenue"`
}

func NewCategoryRevenueResponses(rows []domain.CategoryRevenueRow) []CategoryRevenueResponse {
	resp := make([]CategoryRevenueResponse, len(rows))
	for i, r := range rows {
		resp[i] = CategoryRevenueResponse{
			CategoryID: r.CategoryID,
			Category:   r.Category,
			OrderCount: r.OrderCount,
			ItemsSold:  r.ItemsSold,
			Revenue:    NewMoney(r.Revenue),
		}
	}
	return resp
}

// ServerRevenueResponse - выручка по сотруднику
type ServerRevenueResponse struct {
	EmployeeID int64               `json:"employee_id"`
	ServerName string              `json:"server_name"`
	Role       domain.EmployeeRole `json:"role"`
	OrderCount int64               `json:"order_count"`
	GrossSales Money               `json:"gross_sales"`
	Tips       Money               `json:"tips"`
	Total      Money               `json:"total"`
}

func NewServerRevenueResponses(rows []domain.ServerRevenueRow) []ServerRevenueResponse {
	resp := make([]ServerRevenueResponse, len(rows))
	for i, r := range rows {
		resp[i] = ServerRevenueResponse{
			EmployeeID: r.EmployeeID,
			ServerName: r.ServerName,
			Role:       r.Role,
			OrderCount: r.OrderCount,
			GrossSales: NewMoney(r.GrossSales),
			Tips:       NewMoney(r.Tips),
			Total:      NewMoney(r.Total),
		}
	}
	return resp
}

// PopularItemResponse - позиция в рейтинге популярности
type PopularItemResponse struct {
	ItemID       int64  `json:"item_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	TimesOrdered int64  `json:"times_ordered"`
	Quantity     int64  `json:"quantity"`
	Revenue      Money  `json:"revenue"`
}

func NewPopularItemResponses(rows []domain.PopularItemRow) []PopularItemResponse {
	resp := make([]PopularItemResponse, len(rows))
	for i, r := range rows {
		resp[i] = PopularItemResponse{
			ItemID:       r.ItemID,
			Name:         r.Name,
			Category:     r.Category,
			TimesOrdered: r.TimesOrdered,
			Quantity:     r.Quantity,
			Revenue:      NewMoney(r.Revenue),
		}
	}
	return resp
}

// CustomerSpendResponse - гость с тратами выше среднего
type CustomerSpendResponse struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	OrderCount   int64  `json:"order_count"`
	TotalSpent   Money  `json:"total_spent"`
	AverageSpent Money  `json:"avg_customer_spending"`
}

func NewCustomerSpendResponses(rows []domain.CustomerSpendRow) []CustomerSpendResponse {
	resp := make([]CustomerSpendResponse, len(rows))
	for i, r := range rows {
		resp[i] = CustomerSpendResponse{
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			Email:        r.Email,
			OrderCount:   r.OrderCount,
			TotalSpent:   NewMoney(r.TotalSpent),
			AverageSpent: NewMoney(r.AverageSpent),
		}
	}
	return resp
}

// OverbookedResponse - бронь сверх вместимости столика
type OverbookedResponse struct {
	ReservationID   int64  `json:"reservation_id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	TableID         int64  `json:"table_id"`
	TableNumber     string `json:"table_number"`
	Capacity        int    `json:"capacity"`
	PartySize       int    `json:"party_size"`
}

func NewOverbookedResponses(rows []domain.OverbookedRow) []OverbookedResponse {
	resp := make([]OverbookedResponse, len(rows))
	for i, r := range rows {
		resp[i] = OverbookedResponse{
			ReservationID:   r.ReservationID,
			ReservationDate: formatDate(r.ReservationDate),
			ReservationTime: r.ReservationTime,
			TableID:         r.TableID,
			TableNumber:     r.TableNumber,
			Capacity:        r.Capacity,
			PartySize:       r.PartySize,
		}
	}
	return resp
}

// UpcomingReservationResponse - предстоящая бронь
type UpcomingReservationResponse struct {
	ReservationID   int64                    `json:"reservation_id"`
	ReservationDate string                   `json:"reservation_date"`
	ReservationTime string                   `json:"reservation_time"`
	CustomerName    string                   `json:"customer_name"`
	TableNumber     string                   `json:"table_number"`
	PartySize       int                      `json:"party_size"`
	Status          domain.ReservationStatus `json:"status"`
}

func NewUpcomingReservationResponses(rows []domain.UpcomingReservationRow) []UpcomingReservationResponse {
	resp := make([]UpcomingReservationResponse, len(rows))
	for i, r := range rows {
		resp[i] = UpcomingReservationResponse{
			ReservationID:   r.ReservationID,
			ReservationDate: formatDate(r.ReservationDate),
			ReservationTime: r.ReservationTime,
			CustomerName:    r.CustomerName,
			TableNumber:     r.TableNumber,
			PartySize:       r.PartySize,
			Status:          r.Status,
		}
	}
	return resp
}

// StatusResponse - количество записей по таблицам
type StatusResponse struct {
	Counts map[string]int64 `json:"counts"`
}
