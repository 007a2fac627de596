package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/restaurant-backoffice/internal/database/dbtest"
	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(money(want)) {
		t.Errorf("%s: expected %s, got %s", field, want, got.StringFixed(2))
	}
}

// fixture - минимальный набор связанных записей для тестов заказов
type fixture struct {
	db        *gorm.DB
	orders    repository.OrderRepository
	menu      repository.MenuRepository
	employees repository.EmployeeRepository
	customers repository.CustomerRepository
	tables    repository.TableRepository

	category *domain.Category
	steak    *domain.MenuItem
	salad    *domain.MenuItem
	dessert  *domain.MenuItem
	server   *domain.Employee
	table    *domain.Table
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)
	f := &fixture{
		db:        db,
		orders:    repository.NewOrderRepository(db, domain.DefaultTaxRate),
		menu:      repository.NewMenuRepository(db),
		employees: repository.NewEmployeeRepository(db),
		customers: repository.NewCustomerRepository(db),
		tables:    repository.NewTableRepository(db),
	}
	ctx := context.Background()

	f.category = &domain.Category{Name: "Mains"}
	if err := f.menu.CreateCategory(ctx, f.category); err != nil {
		t.Fatalf("create category: %v", err)
	}

	f.steak = f.mustMenuItem(t, "Ribeye", "42.99")
	f.salad = f.mustMenuItem(t, "Caesar Salad", "12.50")
	f.dessert = f.mustMenuItem(t, "Tiramisu", "10.00")

	f.server = f.mustEmployee(t, "Sam", "Rivera", domain.RoleServer, nil)

	f.table = &domain.Table{TableNumber: "T1", Capacity: 4, Location: domain.LocationMainDining, IsActive: true}
	if err := f.tables.Create(ctx, f.table); err != nil {
		t.Fatalf("create table: %v", err)
	}

	return f
}

func (f *fixture) mustMenuItem(t *testing.T, name, price string) *domain.MenuItem {
	t.Helper()
	item := &domain.MenuItem{Name: name, Price: money(price), IsAvailable: true, CategoryID: f.category.ID}
	if err := f.menu.CreateItem(context.Background(), item); err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return item
}

func (f *fixture) mustEmployee(t *testing.T, first, last string, role domain.EmployeeRole, managerID *int64) *domain.Employee {
	t.Helper()
	emp := &domain.Employee{
		FirstName:  first,
		LastName:   last,
		Role:       role,
		HireDate:   time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		HourlyWage: money("18.50"),
		ManagerID:  managerID,
	}
	if err := f.employees.Create(context.Background(), emp); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return emp
}

func (f *fixture) mustOrder(t *testing.T) *domain.Order {
	t.Helper()
	order := &domain.Order{
		EmployeeID: f.server.ID,
		TableID:    &f.table.ID,
		OrderType:  domain.OrderDineIn,
		Status:     domain.OrderOpen,
		OrderDate:  time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		OrderTime:  "19:30",
	}
	if err := f.orders.Create(context.Background(), order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func (f *fixture) addItem(t *testing.T, orderID int64, menuItem *domain.MenuItem, qty int) (*domain.Order, int64) {
	t.Helper()
	var itemID int64
	order, err := f.orders.Mutate(context.Background(), orderID, func(tx repository.OrderTx) error {
		item := &domain.OrderItem{ItemID: menuItem.ID, Quantity: qty, UnitPrice: menuItem.Price}
		if err := tx.InsertItem(item); err != nil {
			return err
		}
		itemID = item.ID
		return nil
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	return order, itemID
}

func (f *fixture) setTip(t *testing.T, orderID int64, tip string) *domain.Order {
	t.Helper()
	order, err := f.orders.Mutate(context.Background(), orderID, func(tx repository.OrderTx) error {
		return tx.UpdateTip(money(tip))
	})
	if err != nil {
		t.Fatalf("set tip: %v", err)
	}
	return order
}

// assertConsistent проверяет, что сохранённые суммы совпадают с пересчётом по позициям
func (f *fixture) assertConsistent(t *testing.T, orderID int64) *domain.Order {
	t.Helper()
	stored, err := f.orders.GetByID(context.Background(), orderID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	want := domain.CalculateTotals(stored.Items, stored.Tip, domain.DefaultTaxRate)
	if !stored.Totals().Equal(want) {
		t.Errorf("stored totals %+v do not match recomputation %+v", stored.Totals(), want)
	}
	return stored
}
