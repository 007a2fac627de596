package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/restaurant-backoffice/internal/database"
	"github.com/restaurant-backoffice/internal/domain"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultConflictRetryDelay - пауза перед повтором транзакции после конфликта
const DefaultConflictRetryDelay = 50 * time.Millisecond

// OrderRepository определяет интерфейс для работы с заказами.
// Все изменения позиций и чаевых проходят через Mutate, который в той же
// транзакции пересчитывает subtotal, tax и total
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetItem(ctx context.Context, itemID int64) (*domain.OrderItem, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	Delete(ctx context.Context, id int64) error
	Mutate(ctx context.Context, orderID int64, fn func(tx OrderTx) error) (*domain.Order, error)
	Recalculate(ctx context.Context, orderID int64) (*domain.Order, error)
	TaxRate() decimal.Decimal
}

// OrderFilter - параметры выборки заказов
type OrderFilter struct {
	Status *domain.OrderStatus
	Date   *time.Time
}

// OrderTx - операции над заблокированным заказом внутри транзакции пересчёта
type OrderTx interface {
	// Order возвращает заказ в том виде, в каком он был заблокирован
	Order() *domain.Order
	MenuItem(id int64) (*domain.MenuItem, error)
	Item(id int64) (*domain.OrderItem, error)
	InsertItem(item *domain.OrderItem) error
	DeleteItem(id int64) error
	UpdateItemQuantity(id int64, quantity int) error
	UpdateTip(tip decimal.Decimal) error
	UpdateStatus(status domain.OrderStatus) error
}

type orderRepository struct {
	db         *gorm.DB
	taxRate    decimal.Decimal
	retryDelay time.Duration
}

// OrderRepositoryOption настраивает репозиторий заказов
type OrderRepositoryOption func(*orderRepository)

// WithConflictRetryDelay задаёт паузу перед повтором после конфликта
func WithConflictRetryDelay(d time.Duration) OrderRepositoryOption {
	return func(r *orderRepository) {
		r.retryDelay = d
	}
}

// NewOrderRepository создаёт новый экземпляр репозитория с заданной ставкой налога
func NewOrderRepository(db *gorm.DB, taxRate decimal.Decimal, opts ...OrderRepositoryOption) OrderRepository {
	r := &orderRepository{
		db:         db,
		taxRate:    taxRate,
		retryDelay: DefaultConflictRetryDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *orderRepository) TaxRate() decimal.Decimal {
	return r.taxRate
}

// Create сохраняет заказ с нулевыми суммами
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	order.OrderDate = domain.DateOnly(order.OrderDate)
	order.Items = nil
	order.ApplyTotals(domain.CalculateTotals(nil, decimal.Zero, r.taxRate))

	err := r.db.WithContext(ctx).Create(order).Error
	return translateWrite(err, nil)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items", orderItemsByID).
		First(&order, id).Error
	if err != nil {
		return nil, notFound(err, domain.ErrOrderNotFound)
	}
	return &order, nil
}

func (r *orderRepository) GetItem(ctx context.Context, itemID int64) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := r.db.WithContext(ctx).First(&item, itemID).Error; err != nil {
		return nil, notFound(err, domain.ErrOrderItemNotFound)
	}
	return &item, nil
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]domain.Order, error) {
	var orders []domain.Order
	query := r.db.WithContext(ctx)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Date != nil {
		query = query.Where("order_date = ?", domain.DateOnly(*filter.Date))
	}
	err := query.Order("order_date DESC, order_time DESC, id DESC").Find(&orders).Error
	return orders, err
}

// Delete удаляет заказ вместе с позициями одним оператором, пересчёт не нужен
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.Order{}, id, domain.ErrOrderNotFound)
}

// Recalculate принудительно пересчитывает суммы заказа. Повторный вызов
// даёт тот же результат
func (r *orderRepository) Recalculate(ctx context.Context, orderID int64) (*domain.Order, error) {
	return r.Mutate(ctx, orderID, func(OrderTx) error { return nil })
}

// Mutate блокирует заказ, выполняет fn и пересчитывает суммы в одной транзакции.
// При конфликте с параллельной транзакцией попытка повторяется один раз
func (r *orderRepository) Mutate(ctx context.Context, orderID int64, fn func(tx OrderTx) error) (*domain.Order, error) {
	var order *domain.Order

	backoff := retry.WithMaxRetries(1, retry.NewConstant(r.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		o, err := r.mutate(ctx, orderID, fn)
		if err != nil {
			if database.IsTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		if database.IsTransient(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) mutate(ctx context.Context, orderID int64, fn func(tx OrderTx) error) (*domain.Order, error) {
	var result *domain.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked domain.Order
		if err := lockOrder(tx, orderID, &locked); err != nil {
			return notFound(err, domain.ErrOrderNotFound)
		}

		if err := fn(&orderTx{tx: tx, order: &locked}); err != nil {
			return err
		}

		order, err := r.recalculate(tx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrTotalsInconsistent
		}

		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// lockOrder берёт блокировку строки заказа до конца транзакции. В sqlite
// блокировка на запись уже взята при BEGIN IMMEDIATE
func lockOrder(tx *gorm.DB, orderID int64, order *domain.Order) error {
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx.First(order, orderID).Error
}

// recalculate выполняет полный пересчёт по текущим позициям заказа и
// записывает subtotal, tax и total. Если заказа нет, ничего не делает и возвращает nil
func (r *orderRepository) recalculate(tx *gorm.DB, orderID int64) (*domain.Order, error) {
	var order domain.Order
	err := tx.Preload("Items", orderItemsByID).First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	totals := domain.CalculateTotals(order.Items, order.Tip, r.taxRate)
	if !totals.FitsMoneyColumns() {
		return nil, fmt.Errorf("%w: subtotal %s, total %s", domain.ErrAmountOutOfRange, totals.Subtotal, totals.Total)
	}

	err = tx.Model(&domain.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"subtotal": totals.Subtotal,
			"tax":      totals.Tax,
			"total":    totals.Total,
		}).Error
	if err != nil {
		return nil, translateWrite(err, nil)
	}

	order.ApplyTotals(totals)
	return &order, nil
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// orderTx реализует OrderTx поверх открытой транзакции
type orderTx struct {
	tx    *gorm.DB
	order *domain.Order
}

func (t *orderTx) Order() *domain.Order {
	return t.order
}

func (t *orderTx) MenuItem(id int64) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := t.tx.First(&item, id).Error; err != nil {
		return nil, notFound(err, domain.ErrMenuItemNotFound)
	}
	return &item, nil
}

// Item ищет позицию только среди позиций заблокированного заказа
func (t *orderTx) Item(id int64) (*domain.OrderItem, error) {
	var item domain.OrderItem
	err := t.tx.Where("id = ? AND order_id = ?", id, t.order.ID).First(&item).Error
	if err != nil {
		return nil, notFound(err, domain.ErrOrderItemNotFound)
	}
	return &item, nil
}

func (t *orderTx) InsertItem(item *domain.OrderItem) error {
	// id мог остаться от откатившейся попытки
	item.ID = 0
	item.OrderID = t.order.ID

	err := t.tx.Create(item).Error
	if err = translateWrite(err, nil); errors.Is(err, domain.ErrReferenceNotFound) {
		return domain.ErrMenuItemNotFound
	}
	return err
}

func (t *orderTx) DeleteItem(id int64) error {
	result := t.tx.Where("order_id = ?", t.order.ID).Delete(&domain.OrderItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderItemNotFound
	}
	return nil
}

func (t *orderTx) UpdateItemQuantity(id int64, quantity int) error {
	result := t.tx.Model(&domain.OrderItem{}).
		Where("id = ? AND order_id = ?", id, t.order.ID).
		Update("quantity", quantity)
	if result.Error != nil {
		return translateWrite(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderItemNotFound
	}
	return nil
}

func (t *orderTx) UpdateTip(tip decimal.Decimal) error {
	err := t.tx.Model(&domain.Order{}).
		Where("id = ?", t.order.ID).
		Update("tip", tip).Error
	return translateWrite(err, nil)
}

func (t *orderTx) UpdateStatus(status domain.OrderStatus) error {
	err := t.tx.Model(&domain.Order{}).
		Where("id = ?", t.order.ID).
		Update("status", status).Error
	return translateWrite(err, nil)
}
