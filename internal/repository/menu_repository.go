package repository

import (
	"context"
	"errors"

	"github.com/restaurant-backoffice/internal/domain"
	"gorm.io/gorm"
)

// MenuRepository определяет интерфейс для работы с разделами и позициями меню
type MenuRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item *domain.MenuItem) error
	GetItem(ctx context.Context, id int64) (*domain.MenuItem, error)
	ListItems(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, id int64) error
}

// MenuFilter - параметры выборки позиций меню
type MenuFilter struct {
	CategoryID    *int64
	AvailableOnly bool
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository создаёт новый экземпляр репозитория
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	return translateWrite(err, domain.ErrDuplicateCategoryName)
}

func (r *menuRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, notFound(err, domain.ErrCategoryNotFound)
	}
	return &category, nil
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

// DeleteCategory отклоняется, пока в разделе есть позиции
func (r *menuRepository) DeleteCategory(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.Category{}, id, domain.ErrCategoryNotFound)
}

func (r *menuRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if err = translateWrite(err, nil); errors.Is(err, domain.ErrReferenceNotFound) {
		return domain.ErrCategoryNotFound
	}
	return err
}

func (r *menuRepository) GetItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err, domain.ErrMenuItemNotFound)
	}
	return &item, nil
}

func (r *menuRepository) ListItems(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	query := r.db.WithContext(ctx)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}
	err := query.Order("category_id ASC, name ASC").Find(&items).Error
	return items, err
}

// UpdateItem меняет карточку позиции. Цены в уже оформленных заказах не меняются
func (r *menuRepository) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.db.WithContext(ctx).
		Model(item).
		Select("name", "description", "price", "is_available", "category_id").
		Updates(item).Error
	if err = translateWrite(err, nil); errors.Is(err, domain.ErrReferenceNotFound) {
		return domain.ErrCategoryNotFound
	}
	return err
}

// DeleteItem отклоняется, пока позиция встречается в заказах
func (r *menuRepository) DeleteItem(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.MenuItem{}, id, domain.ErrMenuItemNotFound)
}
