package service

import (
	"context"
	"strings"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, role *domain.EmployeeRole) ([]domain.Employee, error)
	GetSubordinates(ctx context.Context, id int64) ([]domain.Employee, error)
	SetManager(ctx context.Context, id int64, managerID *int64) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if !req.Role.IsValid() {
		return nil, domain.ErrInvalidRole
	}
	if !isPositiveMoney(req.HourlyWage) {
		return nil, domain.ErrInvalidPrice
	}

	// Проверяем существование руководителя
	if req.ManagerID != nil {
		if _, err := s.empRepo.GetByID(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
	}

	hireDate, err := domain.ParseDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Role:       req.Role,
		Phone:      req.Phone,
		Email:      req.Email,
		HireDate:   hireDate,
		HourlyWage: req.HourlyWage,
		ManagerID:  req.ManagerID,
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, role *domain.EmployeeRole) ([]domain.Employee, error) {
	if role != nil && !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}
	return s.empRepo.List(ctx, role)
}

func (s *employeeService) GetSubordinates(ctx context.Context, id int64) ([]domain.Employee, error) {
	// Проверяем существование сотрудника
	if _, err := s.empRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.empRepo.GetSubordinates(ctx, id)
}

// SetManager назначает или снимает руководителя. Цепочка подчинения
// не может замыкаться на самого сотрудника
func (s *employeeService) SetManager(ctx context.Context, id int64, managerID *int64) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if managerID != nil {
		if *managerID == id {
			return nil, domain.ErrSelfSupervision
		}

		if _, err := s.empRepo.GetByID(ctx, *managerID); err != nil {
			return nil, err
		}

		// Нельзя подчинить сотрудника его же подчинённому
		isSubordinate, err := s.empRepo.IsSubordinate(ctx, id, *managerID)
		if err != nil {
			return nil, err
		}
		if isSubordinate {
			return nil, domain.ErrSupervisionCycle
		}
	}

	if err := s.empRepo.UpdateManager(ctx, id, managerID); err != nil {
		return nil, err
	}

	emp.ManagerID = managerID
	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}
