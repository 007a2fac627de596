package service

import (
	"context"
	"strings"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
)

// MenuService определяет интерфейс бизнес-логики для меню
type MenuService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, req *dto.CreateMenuItemRequest) (*domain.MenuItem, error)
	GetItem(ctx context.Context, id int64) (*domain.MenuItem, error)
	ListItems(ctx context.Context, filter repository.MenuFilter) ([]domain.MenuItem, error)
	UpdateItem(ctx context.Context, id int64, req *dto.UpdateMenuItemRequest) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

type menuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService создаёт новый экземпляр сервиса
func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*domain.Category, error) {
	category := &domain.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if err := s.menuRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *menuService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.menuRepo.GetCategory(ctx, id)
}

func (s *menuService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.menuRepo.ListCategories(ctx)
}

func (s *menuService) DeleteCategory(ctx context.Context, id int64) error {
	return s.menuRepo.DeleteCategory(ctx, id)
}

func (s *menuService) CreateItem(ctx context.Context, req *dto.CreateMenuItemRequest) (*domain.MenuItem, error) {
	if !isPositiveMoney(req.Price) {
		return nil, domain.ErrInvalidPrice
	}

	if _, err := s.menuRepo.GetCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: true,
		CategoryID:  req.CategoryID,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.menuRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *menuService) GetItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return s.menuRepo.GetItem(ctx, id)
}

func (s *menuService) ListItems(ctx context.Context, filter repository.MenuFilter) ([]domain.MenuItem, error) {
	return s.menuRepo.ListItems(ctx, filter)
}

func (s *menuService) UpdateItem(ctx context.Context, id int64, req *dto.UpdateMenuItemRequest) (*domain.MenuItem, error) {
	item, err := s.menuRepo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Price != nil {
		if !isPositiveMoney(*req.Price) {
			return nil, domain.ErrInvalidPrice
		}
		item.Price = *req.Price
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.CategoryID != nil && *req.CategoryID != item.CategoryID {
		if _, err := s.menuRepo.GetCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *req.CategoryID
	}

	if err := s.menuRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *menuService) DeleteItem(ctx context.Context, id int64) error {
	return s.menuRepo.DeleteItem(ctx, id)
}
