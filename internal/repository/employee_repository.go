package repository

import (
	"context"
	"slices"

	"github.com/restaurant-backoffice/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, role *domain.EmployeeRole) ([]domain.Employee, error)
	GetSubordinates(ctx context.Context, managerID int64) ([]domain.Employee, error)
	UpdateManager(ctx context.Context, id int64, managerID *int64) error
	Delete(ctx context.Context, id int64) error
	IsSubordinate(ctx context.Context, managerID, candidateID int64) (bool, error)
	GetAllSubordinateIDs(ctx context.Context, managerID int64) ([]int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Create(emp).Error
	return translateWrite(err, domain.ErrDuplicateEmail)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, notFound(err, domain.ErrEmployeeNotFound)
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, role *domain.EmployeeRole) ([]domain.Employee, error) {
	var employees []domain.Employee
	query := r.db.WithContext(ctx)
	if role != nil {
		query = query.Where("role = ?", *role)
	}
	err := query.Order("last_name ASC, first_name ASC").Find(&employees).Error
	return employees, err
}

// GetSubordinates возвращает прямых подчинённых
func (r *employeeRepository) GetSubordinates(ctx context.Context, managerID int64) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) UpdateManager(ctx context.Context, id int64, managerID *int64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Update("manager_id", managerID)
	if result.Error != nil {
		return translateWrite(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// Delete удаляет сотрудника. Подчинённые остаются без руководителя, смены
// удаляются каскадом, а оформленные им заказы блокируют удаление
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.Employee{}, id, domain.ErrEmployeeNotFound)
}

// IsSubordinate проверяет, находится ли candidateID в цепочке подчинения managerID
func (r *employeeRepository) IsSubordinate(ctx context.Context, managerID, candidateID int64) (bool, error) {
	subordinates, err := r.GetAllSubordinateIDs(ctx, managerID)
	if err != nil {
		return false, err
	}
	return slices.Contains(subordinates, candidateID), nil
}

func (r *employeeRepository) GetAllSubordinateIDs(ctx context.Context, managerID int64) ([]int64, error) {
	var result []int64

	// UNION вместо UNION ALL не даёт зациклиться на уже существующем цикле в данных
	query := `
		WITH RECURSIVE subordinates AS (
			SELECT id FROM employees WHERE manager_id = ?
			UNION
			SELECT e.id FROM employees e
			INNER JOIN subordinates s ON e.manager_id = s.id
		)
		SELECT id FROM subordinates
	`

	rows, err := r.db.WithContext(ctx).Raw(query, managerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}

	return result, rows.Err()
}
