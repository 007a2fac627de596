package repository

import (
	"context"

	"github.com/restaurant-backoffice/internal/domain"
	"gorm.io/gorm"
)

// CustomerRepository определяет интерфейс для работы с гостями
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository создаёт новый экземпляр репозитория
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	err := r.db.WithContext(ctx).Create(customer).Error
	return translateWrite(err, domain.ErrDuplicateEmail)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, notFound(err, domain.ErrCustomerNotFound)
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&customers).Error
	return customers, err
}

// Delete удаляет гостя. Его брони удаляются каскадом, а заказы отвязываются
func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.Customer{}, id, domain.ErrCustomerNotFound)
}
