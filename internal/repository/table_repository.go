package repository

import (
	"context"
	"time"

	"github.com/restaurant-backoffice/internal/domain"
	"gorm.io/gorm"
)

// TableRepository определяет интерфейс для работы со столиками
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) error
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Table, error)
	Update(ctx context.Context, table *domain.Table) error
	Delete(ctx context.Context, id int64) error
	ListAvailable(ctx context.Context, date time.Time, from, to string) ([]domain.Table, error)
}

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository создаёт новый экземпляр репозитория
func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *domain.Table) error {
	err := r.db.WithContext(ctx).Create(table).Error
	return translateWrite(err, domain.ErrDuplicateTableNumber)
}

func (r *tableRepository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	var table domain.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, notFound(err, domain.ErrTableNotFound)
	}
	return &table, nil
}

func (r *tableRepository) List(ctx context.Context, activeOnly bool) ([]domain.Table, error) {
	var tables []domain.Table
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("table_number ASC").Find(&tables).Error
	return tables, err
}

// Update сохраняет вместимость, зону и признак активности
func (r *tableRepository) Update(ctx context.Context, table *domain.Table) error {
	err := r.db.WithContext(ctx).
		Model(table).
		Select("capacity", "location", "is_active").
		Updates(table).Error
	return translateWrite(err, domain.ErrDuplicateTableNumber)
}

// Delete удаляет столик, если на него не ссылаются брони и заказы.
// Обычно столик деактивируют вместо удаления
func (r *tableRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.Table{}, id, domain.ErrTableNotFound)
}

// ListAvailable возвращает активные столики без действующих броней
// на дату в интервале времени [from, to]
func (r *tableRepository) ListAvailable(ctx context.Context, date time.Time, from, to string) ([]domain.Table, error) {
	var tables []domain.Table

	busy := r.db.
		Model(&domain.Reservation{}).
		Select("table_id").
		Where("reservation_date = ?", domain.DateOnly(date)).
		Where("reservation_time BETWEEN ? AND ?", from, to).
		Where("status IN ?", []domain.ReservationStatus{domain.ReservationConfirmed, domain.ReservationSeated})

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("id NOT IN (?)", busy).
		Order("capacity ASC, table_number ASC").
		Find(&tables).Error
	return tables, err
}
