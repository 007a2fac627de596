package handler

import (
	"log/slog"
	"net/http"

	"github.com/restaurant-backoffice/internal/middleware"
)

// Handlers - набор обработчиков, из которых собираются маршруты
type Handlers struct {
	Orders    *OrderHandler
	Customers *CustomerHandler
	Staff     *StaffHandler
	Floor     *FloorHandler
	Menu      *MenuHandler
	Reports   *ReportHandler
}

// Router настраивает маршруты API
type Router struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	handlers Handlers
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, logger *slog.Logger) *Router {
	return &Router{
		mux:      http.NewServeMux(),
		logger:   logger,
		handlers: handlers,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.orderRoutes()
	r.recordRoutes()
	r.reportRoutes()

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

func (r *Router) orderRoutes() {
	h := r.handlers.Orders

	r.mux.HandleFunc("POST /orders", h.Create)
	r.mux.HandleFunc("GET /orders", h.List)
	r.mux.HandleFunc("GET /orders/{id}", h.GetByID)
	r.mux.HandleFunc("DELETE /orders/{id}", h.Delete)
	r.mux.HandleFunc("GET /orders/{id}/totals", h.GetTotals)
	r.mux.HandleFunc("PATCH /orders/{id}/tip", h.SetTip)
	r.mux.HandleFunc("PATCH /orders/{id}/status", h.UpdateStatus)
	r.mux.HandleFunc("POST /orders/{id}/recalculate", h.Recalculate)
	r.mux.HandleFunc("POST /orders/{id}/items", h.AddItem)
	r.mux.HandleFunc("PATCH /order-items/{id}", h.UpdateItem)
	r.mux.HandleFunc("DELETE /order-items/{id}", h.RemoveItem)
}

func (r *Router) recordRoutes() {
	customers := r.handlers.Customers
	r.mux.HandleFunc("POST /customers", customers.Create)
	r.mux.HandleFunc("GET /customers", customers.List)
	r.mux.HandleFunc("GET /customers/{id}", customers.GetByID)
	r.mux.HandleFunc("DELETE /customers/{id}", customers.Delete)

	staff := r.handlers.Staff
	r.mux.HandleFunc("POST /employees", staff.CreateEmployee)
	r.mux.HandleFunc("GET /employees", staff.ListEmployees)
	r.mux.HandleFunc("GET /employees/{id}", staff.GetEmployee)
	r.mux.HandleFunc("DELETE /employees/{id}", staff.DeleteEmployee)
	r.mux.HandleFunc("PATCH /employees/{id}/manager", staff.SetManager)
	r.mux.HandleFunc("GET /employees/{id}/subordinates", staff.Subordinates)
	r.mux.HandleFunc("GET /employees/{id}/shifts", staff.EmployeeShifts)
	r.mux.HandleFunc("POST /shifts", staff.CreateShift)
	r.mux.HandleFunc("DELETE /shifts/{id}", staff.DeleteShift)

	floor := r.handlers.Floor
	r.mux.HandleFunc("POST /tables", floor.CreateTable)
	r.mux.HandleFunc("GET /tables", floor.ListTables)
	r.mux.HandleFunc("GET /tables/available", floor.AvailableTables)
	r.mux.HandleFunc("GET /tables/{id}", floor.GetTable)
	r.mux.HandleFunc("PATCH /tables/{id}", floor.UpdateTable)
	r.mux.HandleFunc("DELETE /tables/{id}", floor.DeleteTable)
	r.mux.HandleFunc("POST /reservations", floor.CreateReservation)
	r.mux.HandleFunc("GET /reservations", floor.ListReservations)
	r.mux.HandleFunc("GET /reservations/{id}", floor.GetReservation)
	r.mux.HandleFunc("PATCH /reservations/{id}/status", floor.UpdateReservationStatus)
	r.mux.HandleFunc("DELETE /reservations/{id}", floor.DeleteReservation)

	menu := r.handlers.Menu
	r.mux.HandleFunc("POST /categories", menu.CreateCategory)
	r.mux.HandleFunc("GET /categories", menu.ListCategories)
	r.mux.HandleFunc("DELETE /categories/{id}", menu.DeleteCategory)
	r.mux.HandleFunc("POST /menu-items", menu.CreateItem)
	r.mux.HandleFunc("GET /menu-items", menu.ListItems)
	r.mux.HandleFunc("GET /menu-items/{id}", menu.GetItem)
	r.mux.HandleFunc("PATCH /menu-items/{id}", menu.UpdateItem)
	r.mux.HandleFunc("DELETE /menu-items/{id}", menu.DeleteItem)
}

func (r *Router) reportRoutes() {
	h := r.handlers.Reports

	r.mux.HandleFunc("GET /reports/orders", h.OrderLedger)
	r.mux.HandleFunc("GET /reports/daily", h.DailyRevenue)
	r.mux.HandleFunc("GET /reports/categories", h.RevenueByCategory)
	r.mux.HandleFunc("GET /reports/servers", h.RevenueByServer)
	r.mux.HandleFunc("GET /reports/popular", h.PopularItems)
	r.mux.HandleFunc("GET /reports/customers", h.AboveAverageCustomers)
	r.mux.HandleFunc("GET /reports/overbooked", h.OverbookedReservations)
	r.mux.HandleFunc("GET /reports/upcoming", h.UpcomingReservations)
	r.mux.HandleFunc("GET /status", h.Status)
}
