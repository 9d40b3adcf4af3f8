package employee

import (
	"context"
	"fmt"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

type Service interface {
	CreateEmployee(ctx context.Context, req *model.CreateEmployeeRequest) error
	GetEmployee(ctx context.Context, employeeID string) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req *model.UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, employeeID string) error
	ListEmployees(ctx context.Context) ([]*model.Employee, error)
}

type service struct {
	repo repository.EmployeeRepository
}

func NewService(repo repository.EmployeeRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreateEmployee(ctx context.Context, req *model.CreateEmployeeRequest) error {
	if err := s.repo.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (s *service) GetEmployee(ctx context.Context, employeeID string) (*model.Employee, error) {
	return s.repo.Get(ctx, employeeID)
}

func (s *service) UpdateEmployee(ctx context.Context, employeeID string, req *model.UpdateEmployeeRequest) error {
	return s.repo.Update(ctx, employeeID, req)
}

func (s *service) DeleteEmployee(ctx context.Context, employeeID string) error {
	return s.repo.Delete(ctx, employeeID)
}

func (s *service) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	return s.repo.List(ctx)
}
