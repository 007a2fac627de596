package service

import (
	"context"
	"strings"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
)

// ReservationWindowMinutes - полуширина окна, в котором бронь занимает столик
const ReservationWindowMinutes = 60

// TableService определяет интерфейс бизнес-логики для столиков
type TableService interface {
	Create(ctx context.Context, req *dto.CreateTableRequest) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Table, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTableRequest) (*domain.Table, error)
	Delete(ctx context.Context, id int64) error
	Available(ctx context.Context, date, at string) ([]domain.Table, error)
}

type tableService struct {
	tableRepo repository.TableRepository
}

// NewTableService создаёт новый экземпляр сервиса
func NewTableService(tableRepo repository.TableRepository) TableService {
	return &tableService{tableRepo: tableRepo}
}

func (s *tableService) Create(ctx context.Context, req *dto.CreateTableRequest) (*domain.Table, error) {
	if err := validateTable(req.Capacity, req.Location); err != nil {
		return nil, err
	}

	table := &domain.Table{
		TableNumber: strings.TrimSpace(req.TableNumber),
		Capacity:    req.Capacity,
		Location:    req.Location,
		IsActive:    true,
	}
	if req.IsActive != nil {
		table.IsActive = *req.IsActive
	}

	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

func (s *tableService) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	return s.tableRepo.GetByID(ctx, id)
}

func (s *tableService) List(ctx context.Context, activeOnly bool) ([]domain.Table, error) {
	return s.tableRepo.List(ctx, activeOnly)
}

func (s *tableService) Update(ctx context.Context, id int64, req *dto.UpdateTableRequest) (*domain.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Location != nil {
		table.Location = *req.Location
	}
	if req.IsActive != nil {
		table.IsActive = *req.IsActive
	}

	if err := validateTable(table.Capacity, table.Location); err != nil {
		return nil, err
	}

	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

func (s *tableService) Delete(ctx context.Context, id int64) error {
	return s.tableRepo.Delete(ctx, id)
}

// Available возвращает активные столики без действующей брони в пределах часа от указанного времени
func (s *tableService) Available(ctx context.Context, date, at string) ([]domain.Table, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	from, to, err := domain.ClockWindow(at, ReservationWindowMinutes)
	if err != nil {
		return nil, err
	}
	return s.tableRepo.ListAvailable(ctx, day, from, to)
}

func validateTable(capacity int, location domain.TableLocation) error {
	if capacity < 1 || capacity > 20 {
		return domain.ErrInvalidCapacity
	}
	if !location.IsValid() {
		return domain.ErrInvalidLocation
	}
	return nil
}
