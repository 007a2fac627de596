package repository

import (
	"context"
	"errors"

	"github.com/restaurant-backoffice/internal/domain"
	"gorm.io/gorm"
)

// ShiftRepository определяет интерфейс для работы со сменами
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Shift, error)
	Delete(ctx context.Context, id int64) error
}

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository создаёт новый экземпляр репозитория
func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	shift.ShiftDate = domain.DateOnly(shift.ShiftDate)
	err := r.db.WithContext(ctx).Create(shift).Error
	if err = translateWrite(err, nil); errors.Is(err, domain.ErrReferenceNotFound) {
		return domain.ErrEmployeeNotFound
	}
	return err
}

func (r *shiftRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Shift, error) {
	var shifts []domain.Shift
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("shift_date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.Shift{}, id, domain.ErrShiftNotFound)
}
