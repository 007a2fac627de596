package database_test

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/restaurant-backoffice/internal/database"
	"github.com/restaurant-backoffice/internal/database/dbtest"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	db := dbtest.New(t)

	tables := []string{
		"customers", "employees", "restaurant_tables", "categories", "menu_items",
		"reservations", "shifts", "orders", "order_items",
	}
	for _, name := range tables {
		if !db.Migrator().HasTable(name) {
			t.Errorf("expected table %s to exist", name)
		}
	}
}

func TestClassify_SQLiteConstraints(t *testing.T) {
	db := dbtest.New(t)

	mustExec := func(query string, args ...any) {
		t.Helper()
		if err := db.Exec(query, args...).Error; err != nil {
			t.Fatalf("exec %q: %v", query, err)
		}
	}

	mustExec(`INSERT INTO categories (name) VALUES ('Mains')`)

	err := db.Exec(`INSERT INTO categories (name) VALUES ('Mains')`).Error
	if !database.IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}

	err = db.Exec(`INSERT INTO menu_items (name, price, category_id) VALUES ('Ghost', 5, 999)`).Error
	if !database.IsForeignKeyViolation(err) {
		t.Errorf("expected foreign key violation, got %v", err)
	}

	err = db.Exec(`INSERT INTO menu_items (name, price, category_id) VALUES ('Free', 0, 1)`).Error
	if !database.IsCheckViolation(err) {
		t.Errorf("expected check violation, got %v", err)
	}

	err = db.Exec(`INSERT INTO restaurant_tables (table_number, capacity, location) VALUES ('T1', 4, 'Roof')`).Error
	if !database.IsCheckViolation(err) {
		t.Errorf("expected check violation for location, got %v", err)
	}

	mustExec(`INSERT INTO menu_items (name, price, category_id) VALUES ('Soup', 5, 1)`)

	err = db.Exec(`DELETE FROM categories WHERE id = 1`).Error
	if !database.IsForeignKeyViolation(err) {
		t.Errorf("expected restrict on category delete, got %v", err)
	}
}

func TestSchema_ShiftEndAfterStart(t *testing.T) {
	db := dbtest.New(t)

	if err := db.Exec(`INSERT INTO employees (first_name, last_name, role, hire_date, hourly_wage)
		VALUES ('Ann', 'Lee', 'Cook', '2024-01-01', 18.5)`).Error; err != nil {
		t.Fatalf("insert employee: %v", err)
	}

	err := db.Exec(`INSERT INTO shifts (employee_id, shift_date, start_time, end_time)
		VALUES (1, '2024-02-01', '18:00', '09:00')`).Error
	if !database.IsCheckViolation(err) {
		t.Errorf("expected check violation, got %v", err)
	}
}

func TestClassify_Nil(t *testing.T) {
	if got := database.Classify(nil); got != database.ClassUnknown {
		t.Errorf("expected unknown class for nil, got %v", got)
	}
}

func TestClassify_PostgresCodes(t *testing.T) {
	tests := []struct {
		code string
		want database.ErrorClass
	}{
		{"23505", database.ClassUniqueViolation},
		{"23503", database.ClassForeignKeyViolation},
		{"23514", database.ClassCheckViolation},
		{"22003", database.ClassCheckViolation},
		{"40001", database.ClassTransient},
		{"40P01", database.ClassTransient},
		{"42P01", database.ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := database.Classify(&pgconn.PgError{Code: tt.code}); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
