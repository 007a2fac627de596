package service

import (
	"context"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
)

// ShiftService определяет интерфейс бизнес-логики для смен
type ShiftService interface {
	Create(ctx context.Context, req *dto.CreateShiftRequest) (*domain.Shift, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Shift, error)
	Delete(ctx context.Context, id int64) error
}

type shiftService struct {
	shiftRepo repository.ShiftRepository
	empRepo   repository.EmployeeRepository
}

// NewShiftService создаёт новый экземпляр сервиса
func NewShiftService(shiftRepo repository.ShiftRepository, empRepo repository.EmployeeRepository) ShiftService {
	return &shiftService{
		shiftRepo: shiftRepo,
		empRepo:   empRepo,
	}
}

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest) (*domain.Shift, error) {
	shiftDate, err := domain.ParseDate(req.ShiftDate)
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock(req.EndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, domain.ErrInvalidShiftTime
	}

	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	shift := &domain.Shift{
		EmployeeID: req.EmployeeID,
		ShiftDate:  shiftDate,
		StartTime:  domain.FormatClock(start),
		EndTime:    domain.FormatClock(end),
	}

	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}

	return shift, nil
}

func (s *shiftService) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Shift, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.shiftRepo.ListByEmployee(ctx, employeeID)
}

func (s *shiftService) Delete(ctx context.Context, id int64) error {
	return s.shiftRepo.Delete(ctx, id)
}
