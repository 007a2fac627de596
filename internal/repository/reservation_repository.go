package repository

import (
	"context"
	"time"

	"github.com/restaurant-backoffice/internal/domain"
	"gorm.io/gorm"
)

// ReservationRepository определяет интерфейс для работы с бронями
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
	HasConflict(ctx context.Context, tableID int64, date time.Time, from, to string) (bool, error)
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository создаёт новый экземпляр репозитория
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	reservation.ReservationDate = domain.DateOnly(reservation.ReservationDate)
	err := r.db.WithContext(ctx).Create(reservation).Error
	return translateWrite(err, nil)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, notFound(err, domain.ErrReservationNotFound)
	}
	return &reservation, nil
}

func (r *reservationRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("reservation_date = ?", domain.DateOnly(date)).
		Order("reservation_time ASC, id ASC").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return translateWrite(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.Reservation{}, id, domain.ErrReservationNotFound)
}

// HasConflict проверяет, занят ли столик действующей бронью в интервале [from, to]
func (r *reservationRepository) HasConflict(ctx context.Context, tableID int64, date time.Time, from, to string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("table_id = ?", tableID).
		Where("reservation_date = ?", domain.DateOnly(date)).
		Where("reservation_time BETWEEN ? AND ?", from, to).
		Where("status IN ?", []domain.ReservationStatus{domain.ReservationConfirmed, domain.ReservationSeated}).
		Count(&count).Error
	return count > 0, err
}
