package repository

import (
	"context"
	"time"

	"github.com/restaurant-backoffice/internal/domain"
	"gorm.io/gorm"
)

// ReportRepository определяет интерфейс агрегирующих запросов только для чтения
type ReportRepository interface {
	OrderLedger(ctx context.Context, from, to time.Time) ([]domain.OrderLedgerRow, error)
	DailyRevenue(ctx context.Context, since time.Time) ([]domain.DailyRevenueRow, error)
	RevenueByCategory(ctx context.Context) ([]domain.CategoryRevenueRow, error)
	RevenueByServer(ctx context.Context) ([]domain.ServerRevenueRow, error)
	PopularItems(ctx context.Context, limit int) ([]domain.PopularItemRow, error)
	AboveAverageCustomers(ctx context.Context) ([]domain.CustomerSpendRow, error)
	OverbookedReservations(ctx context.Context) ([]domain.OverbookedRow, error)
	UpcomingReservations(ctx context.Context, from time.Time) ([]domain.UpcomingReservationRow, error)
	TableCounts(ctx context.Context) (map[string]int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository создаёт новый экземпляр репозитория
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// CountedTables - таблицы, которые попадают в сводку по количеству записей
var CountedTables = []string{
	"customers", "employees", "restaurant_tables", "categories", "menu_items",
	"reservations", "shifts", "orders", "order_items",
}

func (r *reportRepository) OrderLedger(ctx context.Context, from, to time.Time) ([]domain.OrderLedgerRow, error) {
	var rows []domain.OrderLedgerRow
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("id AS order_id, order_date, status, subtotal, tax, tip, total").
		Where("order_date BETWEEN ? AND ?", domain.DateOnly(from), domain.DateOnly(to)).
		Order("order_date ASC, id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) DailyRevenue(ctx context.Context, since time.Time) ([]domain.DailyRevenueRow, error) {
	var rows []domain.DailyRevenueRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT order_date,
		       COUNT(*)      AS order_count,
		       SUM(subtotal) AS subtotal,
		       SUM(tax)      AS tax,
		       SUM(tip)      AS tips,
		       SUM(total)    AS total
		FROM orders
		WHERE status = ? AND order_date >= ?
		GROUP BY order_date
		ORDER BY order_date DESC
	`, domain.OrderCompleted, domain.DateOnly(since)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Subtotal = domain.RoundMoney(rows[i].Subtotal)
		rows[i].Tax = domain.RoundMoney(rows[i].Tax)
		rows[i].Tips = domain.RoundMoney(rows[i].Tips)
		rows[i].Total = domain.RoundMoney(rows[i].Total)
	}
	return rows, nil
}

func (r *reportRepository) RevenueByCategory(ctx context.Context) ([]domain.CategoryRevenueRow, error) {
	var rows []domain.CategoryRevenueRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id                            AS category_id,
		       c.name                          AS category,
		       COUNT(DISTINCT o.id)            AS order_count,
		       SUM(oi.quantity)                AS items_sold,
		       SUM(oi.quantity * oi.unit_price) AS revenue
		FROM order_items oi
		INNER JOIN orders o ON o.id = oi.order_id
		INNER JOIN menu_items mi ON mi.id = oi.item_id
		INNER JOIN categories c ON c.id = mi.category_id
		WHERE o.status = ?
		GROUP BY c.id, c.name
		ORDER BY revenue DESC, c.name ASC
	`, domain.OrderCompleted).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Revenue = domain.RoundMoney(rows[i].Revenue)
	}
	return rows, nil
}

func (r *reportRepository) RevenueByServer(ctx context.Context) ([]domain.ServerRevenueRow, error) {
	var rows []domain.ServerRevenueRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.id                              AS employee_id,
		       e.first_name || ' ' || e.last_name AS server_name,
		       e.role                            AS role,
		       COUNT(o.id)                       AS order_count,
		       SUM(o.subtotal)                   AS gross_sales,
		       SUM(o.tip)                        AS tips,
		       SUM(o.total)                      AS total
		FROM orders o
		INNER JOIN employees e ON e.id = o.employee_id
		WHERE o.status = ?
		GROUP BY e.id, e.first_name, e.last_name, e.role
		ORDER BY total DESC, e.id ASC
	`, domain.OrderCompleted).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].GrossSales = domain.RoundMoney(rows[i].GrossSales)
		rows[i].Tips = domain.RoundMoney(rows[i].Tips)
		rows[i].Total = domain.RoundMoney(rows[i].Total)
	}
	return rows, nil
}

// PopularItems учитывает все заказы, кроме отменённых
func (r *reportRepository) PopularItems(ctx context.Context, limit int) ([]domain.PopularItemRow, error) {
	var rows []domain.PopularItemRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT mi.id                            AS item_id,
		       mi.name                          AS name,
		       c.name                           AS category,
		       COUNT(oi.id)                     AS times_ordered,
		       SUM(oi.quantity)                 AS quantity,
		       SUM(oi.quantity * oi.unit_price) AS revenue
		FROM order_items oi
		INNER JOIN orders o ON o.id = oi.order_id
		INNER JOIN menu_items mi ON mi.id = oi.item_id
		INNER JOIN categories c ON c.id = mi.category_id
		WHERE o.status <> ?
		GROUP BY mi.id, mi.name, c.name
		ORDER BY quantity DESC, revenue DESC, mi.id ASC
		LIMIT ?
	`, domain.OrderCancelled, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Revenue = domain.RoundMoney(rows[i].Revenue)
	}
	return rows, nil
}

// AboveAverageCustomers возвращает гостей, потративших больше среднего
// по всем гостям с закрытыми заказами
func (r *reportRepository) AboveAverageCustomers(ctx context.Context) ([]domain.CustomerSpendRow, error) {
	var rows []domain.CustomerSpendRow
	err := r.db.WithContext(ctx).Raw(`
		WITH spend AS (
			SELECT customer_id, COUNT(*) AS order_count, SUM(total) AS total_spent
			FROM orders
			WHERE status = ? AND customer_id IS NOT NULL
			GROUP BY customer_id
		), average AS (
			SELECT AVG(total_spent) AS avg_spent FROM spend
		)
		SELECT c.id                               AS customer_id,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       c.email                            AS email,
		       s.order_count                      AS order_count,
		       s.total_spent                      AS total_spent,
		       a.avg_spent                        AS average_spent
		FROM spend s
		INNER JOIN customers c ON c.id = s.customer_id
		CROSS JOIN average a
		WHERE s.total_spent > a.avg_spent
		ORDER BY s.total_spent DESC, c.id ASC
	`, domain.OrderCompleted).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].TotalSpent = domain.RoundMoney(rows[i].TotalSpent)
		rows[i].AverageSpent = domain.RoundMoney(rows[i].AverageSpent)
	}
	return rows, nil
}

// OverbookedReservations находит брони, в которых гостей больше вместимости столика.
// Такие брони допускаются при создании и только помечаются этим отчётом
func (r *reportRepository) OverbookedReservations(ctx context.Context) ([]domain.OverbookedRow, error) {
	var rows []domain.OverbookedRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT r.id               AS reservation_id,
		       r.reservation_date AS reservation_date,
		       r.reservation_time AS reservation_time,
		       t.id               AS table_id,
		       t.table_number     AS table_number,
		       t.capacity         AS capacity,
		       r.party_size       AS party_size
		FROM reservations r
		INNER JOIN restaurant_tables t ON t.id = r.table_id
		WHERE r.party_size > t.capacity
		ORDER BY r.reservation_date ASC, r.reservation_time ASC, r.id ASC
	`).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) UpcomingReservations(ctx context.Context, from time.Time) ([]domain.UpcomingReservationRow, error) {
	var rows []domain.UpcomingReservationRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT r.id                               AS reservation_id,
		       r.reservation_date                 AS reservation_date,
		       r.reservation_time                 AS reservation_time,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       t.table_number                     AS table_number,
		       r.party_size                       AS party_size,
		       r.status                           AS status
		FROM reservations r
		INNER JOIN customers c ON c.id = r.customer_id
		INNER JOIN restaurant_tables t ON t.id = r.table_id
		WHERE r.reservation_date >= ? AND r.status IN ?
		ORDER BY r.reservation_date ASC, r.reservation_time ASC, r.id ASC
	`, domain.DateOnly(from), []domain.ReservationStatus{domain.ReservationConfirmed, domain.ReservationSeated}).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(CountedTables))
	for _, table := range CountedTables {
		var count int64
		if err := r.db.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
			return nil, err
		}
		counts[table] = count
	}
	return counts, nil
}
