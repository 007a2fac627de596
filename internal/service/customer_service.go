package service

import (
	"context"
	"strings"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
)

// CustomerService определяет интерфейс бизнес-логики для гостей
type CustomerService interface {
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService создаёт новый экземпляр сервиса
func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := &domain.Customer{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     req.Phone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	return s.customerRepo.Delete(ctx, id)
}
