package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/restaurant-backoffice/internal/database/dbtest"
	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
	"github.com/restaurant-backoffice/internal/service"
	"github.com/shopspring/decimal"
)

// now - фиксированный момент для всех сервисов в тестах
var now = time.Date(2024, 5, 10, 18, 45, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

type env struct {
	customers    service.CustomerService
	employees    service.EmployeeService
	shifts       service.ShiftService
	tables       service.TableService
	menu         service.MenuService
	reservations service.ReservationService
	orders       service.OrderService
	reports      service.ReportService

	server   *domain.Employee
	table    *domain.Table
	category *domain.Category
	burger   *domain.MenuItem
	fries    *domain.MenuItem
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := dbtest.New(t)
	logger := dbtest.DiscardLogger()

	customerRepo := repository.NewCustomerRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db, domain.DefaultTaxRate)

	e := &env{
		customers:    service.NewCustomerService(customerRepo),
		employees:    service.NewEmployeeService(empRepo),
		shifts:       service.NewShiftService(repository.NewShiftRepository(db), empRepo),
		tables:       service.NewTableService(tableRepo),
		menu:         service.NewMenuService(menuRepo),
		reservations: service.NewReservationService(reservationRepo, customerRepo, tableRepo, fixedClock, logger),
		orders:       service.NewOrderService(orderRepo, empRepo, customerRepo, tableRepo, fixedClock, logger),
		reports:      service.NewReportService(repository.NewReportRepository(db), fixedClock),
	}

	ctx := context.Background()
	var err error

	e.server, err = e.employees.Create(ctx, &dto.CreateEmployeeRequest{
		FirstName:  "Sam",
		LastName:   "Rivera",
		Role:       domain.RoleServer,
		HireDate:   "2023-03-01",
		HourlyWage: money("18.50"),
	})
	if err != nil {
		t.Fatalf("create server: %v", err)
	}

	e.table, err = e.tables.Create(ctx, &dto.CreateTableRequest{TableNumber: "T1", Capacity: 4, Location: domain.LocationMainDining})
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	e.category, err = e.menu.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Grill"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	e.burger = e.mustMenuItem(t, "Burger", "15.99")
	e.fries = e.mustMenuItem(t, "Fries", "4.50")

	return e
}

func (e *env) mustMenuItem(t *testing.T, name, price string) *domain.MenuItem {
	t.Helper()
	item, err := e.menu.CreateItem(context.Background(), &dto.CreateMenuItemRequest{
		Name:       name,
		Price:      money(price),
		CategoryID: e.category.ID,
	})
	if err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return item
}

func (e *env) mustOpenOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := e.orders.Create(context.Background(), &dto.CreateOrderRequest{
		EmployeeID: e.server.ID,
		TableID:    &e.table.ID,
		OrderType:  domain.OrderDineIn,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func (e *env) mustCustomer(t *testing.T, email string) *domain.Customer {
	t.Helper()
	customer, err := e.customers.Create(context.Background(), &dto.CreateCustomerRequest{
		FirstName: "Dana",
		LastName:  "Wells",
		Email:     email,
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}

func assertMoney(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(money(want)) {
		t.Errorf("%s: expected %s, got %s", field, want, got.StringFixed(2))
	}
}
