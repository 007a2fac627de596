package service

import (
	"context"
	"log/slog"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
)

// ReservationService определяет интерфейс бизнес-логики для броней
type ReservationService interface {
	Create(ctx context.Context, req *dto.CreateReservationRequest) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	customerRepo    repository.CustomerRepository
	tableRepo       repository.TableRepository
	now             Clock
	logger          *slog.Logger
}

// NewReservationService создаёт новый экземпляр сервиса
func NewReservationService(
	reservationRepo repository.ReservationRepository,
	customerRepo repository.CustomerRepository,
	tableRepo repository.TableRepository,
	now Clock,
	logger *slog.Logger,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		tableRepo:       tableRepo,
		now:             now,
		logger:          logger,
	}
}

// Create бронирует столик. Бронь на прошедшую дату и пересечение с другой
// действующей бронью в пределах часа отклоняются. Гостей может быть больше
// вместимости, такие брони видны в отчёте о перегрузке
func (s *reservationService) Create(ctx context.Context, req *dto.CreateReservationRequest) (*domain.Reservation, error) {
	if req.PartySize <= 0 {
		return nil, domain.ErrInvalidPartySize
	}

	day, err := domain.ParseDate(req.ReservationDate)
	if err != nil {
		return nil, err
	}
	if day.Before(domain.DateOnly(s.now())) {
		return nil, domain.ErrPastReservation
	}

	from, to, err := domain.ClockWindow(req.ReservationTime, ReservationWindowMinutes)
	if err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	table, err := s.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		return nil, err
	}
	if !table.IsActive {
		return nil, domain.ErrTableInactive
	}

	conflict, err := s.reservationRepo.HasConflict(ctx, table.ID, day, from, to)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, domain.ErrTableAlreadyReserved
	}

	if req.PartySize > table.Capacity {
		s.logger.Warn("reservation exceeds table capacity",
			slog.Int64("table_id", table.ID),
			slog.Int("party_size", req.PartySize),
			slog.Int("capacity", table.Capacity),
		)
	}

	reservation := &domain.Reservation{
		CustomerID:      req.CustomerID,
		TableID:         table.ID,
		ReservationDate: day,
		ReservationTime: req.ReservationTime,
		PartySize:       req.PartySize,
		Status:          domain.ReservationConfirmed,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}

func (s *reservationService) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) ListByDate(ctx context.Context, date string) ([]domain.Reservation, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.reservationRepo.ListByDate(ctx, day)
}

func (s *reservationService) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) Delete(ctx context.Context, id int64) error {
	return s.reservationRepo.Delete(ctx, id)
}
