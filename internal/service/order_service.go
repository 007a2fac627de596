package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
	"github.com/shopspring/decimal"
)

// Clock возвращает текущий момент. В тестах подменяется фиксированным временем
type Clock func() time.Time

// OrderService определяет интерфейс бизнес-логики заказов
type OrderService interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetTotals(ctx context.Context, id int64) (domain.OrderTotals, error)
	List(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error)
	Delete(ctx context.Context, id int64) error
	AddItem(ctx context.Context, orderID int64, req *dto.AddOrderItemRequest) (*domain.OrderItem, *domain.Order, error)
	RemoveItem(ctx context.Context, itemID int64) (*domain.Order, error)
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.Order, error)
	SetTip(ctx context.Context, orderID int64, tip decimal.Decimal) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error)
	Recalculate(ctx context.Context, orderID int64) (*domain.Order, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	empRepo      repository.EmployeeRepository
	customerRepo repository.CustomerRepository
	tableRepo    repository.TableRepository
	now          Clock
	logger       *slog.Logger
}

// NewOrderService создаёт новый экземпляр сервиса
func NewOrderService(
	orderRepo repository.OrderRepository,
	empRepo repository.EmployeeRepository,
	customerRepo repository.CustomerRepository,
	tableRepo repository.TableRepository,
	now Clock,
	logger *slog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		empRepo:      empRepo,
		customerRepo: customerRepo,
		tableRepo:    tableRepo,
		now:          now,
		logger:       logger,
	}
}

func (s *orderService) Create(ctx context.Context, req *dto.CreateOrderRequest) (*domain.Order, error) {
	if !req.OrderType.IsValid() {
		return nil, domain.ErrInvalidOrderType
	}

	// Столик обязателен в зале и запрещён для заказа навынос
	switch {
	case req.OrderType == domain.OrderDineIn && req.TableID == nil:
		return nil, domain.ErrInvalidTableForOrder
	case req.OrderType == domain.OrderTakeout && req.TableID != nil:
		return nil, domain.ErrInvalidTableForOrder
	}

	emp, err := s.empRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !emp.Role.CanServe() {
		s.logger.Warn("order opened by non-serving employee",
			slog.Int64("employee_id", emp.ID),
			slog.String("role", string(emp.Role)),
		)
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.GetByID(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
	}

	if req.TableID != nil {
		table, err := s.tableRepo.GetByID(ctx, *req.TableID)
		if err != nil {
			return nil, err
		}
		if !table.IsActive {
			return nil, domain.ErrTableInactive
		}
	}

	now := s.now()
	orderDate := domain.DateOnly(now)
	if req.OrderDate != nil {
		if orderDate, err = domain.ParseDate(*req.OrderDate); err != nil {
			return nil, err
		}
	}
	orderTime := now.Format(domain.TimeLayout)
	if req.OrderTime != nil {
		if _, err := domain.ParseClock(*req.OrderTime); err != nil {
			return nil, err
		}
		orderTime = *req.OrderTime
	}

	order := &domain.Order{
		CustomerID: req.CustomerID,
		EmployeeID: emp.ID,
		TableID:    req.TableID,
		OrderType:  req.OrderType,
		Status:     domain.OrderOpen,
		OrderDate:  orderDate,
		OrderTime:  orderTime,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// GetTotals читает сохранённые суммы. Они поддерживаются при каждом изменении
// заказа, поэтому пересчитывать их при чтении не нужно
func (s *orderService) GetTotals(ctx context.Context, id int64) (domain.OrderTotals, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return domain.OrderTotals{}, err
	}
	return order.Totals(), nil
}

func (s *orderService) List(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.orderRepo.List(ctx, filter)
}

func (s *orderService) Delete(ctx context.Context, id int64) error {
	return s.orderRepo.Delete(ctx, id)
}

func (s *orderService) AddItem(ctx context.Context, orderID int64, req *dto.AddOrderItemRequest) (*domain.OrderItem, *domain.Order, error) {
	if !validQuantity(req.Quantity) {
		return nil, nil, domain.ErrInvalidQuantity
	}
	if req.UnitPrice != nil && !isPositiveMoney(*req.UnitPrice) {
		return nil, nil, domain.ErrInvalidPrice
	}

	item := &domain.OrderItem{
		ItemID:              req.ItemID,
		Quantity:            req.Quantity,
		SpecialInstructions: req.SpecialInstructions,
	}

	order, err := s.mutate(ctx, orderID, "add_item", func(tx repository.OrderTx) error {
		if tx.Order().Status.IsTerminal() {
			return domain.ErrOrderClosed
		}

		menuItem, err := tx.MenuItem(req.ItemID)
		if err != nil {
			return err
		}
		if !menuItem.IsAvailable && !req.AllowUnavailable {
			return domain.ErrMenuItemUnavailable
		}

		// Цена фиксируется в позиции и не зависит от будущих изменений меню
		item.UnitPrice = menuItem.Price
		if req.UnitPrice != nil {
			item.UnitPrice = *req.UnitPrice
		}

		return tx.InsertItem(item)
	})
	if err != nil {
		return nil, nil, err
	}

	return item, order, nil
}

func (s *orderService) RemoveItem(ctx context.Context, itemID int64) (*domain.Order, error) {
	item, err := s.orderRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, item.OrderID, "remove_item", func(tx repository.OrderTx) error {
		if tx.Order().Status.IsTerminal() {
			return domain.ErrOrderClosed
		}
		return tx.DeleteItem(itemID)
	})
}

func (s *orderService) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.Order, error) {
	if !validQuantity(quantity) {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := s.orderRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, item.OrderID, "update_item_quantity", func(tx repository.OrderTx) error {
		if tx.Order().Status.IsTerminal() {
			return domain.ErrOrderClosed
		}
		return tx.UpdateItemQuantity(itemID, quantity)
	})
}

// SetTip меняет чаевые. Закрытому заказу чаевые ставить можно, отменённому нельзя
func (s *orderService) SetTip(ctx context.Context, orderID int64, tip decimal.Decimal) (*domain.Order, error) {
	if tip.IsNegative() || !domain.IsMoneyAmount(tip) {
		return nil, domain.ErrInvalidTip
	}

	return s.mutate(ctx, orderID, "set_tip", func(tx repository.OrderTx) error {
		if tx.Order().Status == domain.OrderCancelled {
			return domain.ErrOrderClosed
		}
		return tx.UpdateTip(tip)
	})
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	return s.mutate(ctx, orderID, "update_status", func(tx repository.OrderTx) error {
		if !tx.Order().Status.CanTransitionTo(status) {
			return domain.ErrInvalidTransition
		}
		return tx.UpdateStatus(status)
	})
}

func (s *orderService) Recalculate(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.Recalculate(ctx, orderID)
	if err != nil {
		s.logFailure("recalculate", orderID, err)
		return nil, err
	}
	return order, nil
}

// mutate проводит изменение через репозиторий и логирует сбои поддержания сумм
func (s *orderService) mutate(ctx context.Context, orderID int64, op string, fn func(tx repository.OrderTx) error) (*domain.Order, error) {
	order, err := s.orderRepo.Mutate(ctx, orderID, fn)
	if err != nil {
		s.logFailure(op, orderID, err)
		return nil, err
	}
	return order, nil
}

func (s *orderService) logFailure(op string, orderID int64, err error) {
	switch {
	case errors.Is(err, domain.ErrConcurrentUpdate):
		s.logger.Warn("order mutation lost a concurrent update twice",
			slog.String("op", op),
			slog.Int64("order_id", orderID),
			slog.Any("error", err),
		)
	case errors.Is(err, domain.ErrTotalsInconsistent):
		s.logger.Error("order totals recalculation found no order",
			slog.String("op", op),
			slog.Int64("order_id", orderID),
		)
	}
}

func validQuantity(q int) bool {
	return q > 0 && q <= domain.MaxItemQuantity
}

func isPositiveMoney(d decimal.Decimal) bool {
	return d.IsPositive() && domain.IsMoneyAmount(d)
}
