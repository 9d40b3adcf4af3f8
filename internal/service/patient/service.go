package patient

import (
	"context"
	"fmt"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

type Service interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) error
	GetPatient(ctx context.Context, pid string) (*model.Patient, error)
	UpdatePatient(ctx context.Context, pid string, req *model.UpdatePatientRequest) error
	DeletePatient(ctx context.Context, pid string) error
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	ListPrescriptions(ctx context.Context, pid string) ([]*model.PatientPrescription, error)
	TotalSpending(ctx context.Context, pid string) (*model.RevenueResult, error)
}

type service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) error {
	if err := s.repo.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// GetPatient returns (nil, nil) when no patient matches; not-found is not an
// error at this layer or above it.
func (s *service) GetPatient(ctx context.Context, pid string) (*model.Patient, error) {
	return s.repo.Get(ctx, pid)
}

func (s *service) UpdatePatient(ctx context.Context, pid string, req *model.UpdatePatientRequest) error {
	return s.repo.Update(ctx, pid, req)
}

func (s *service) DeletePatient(ctx context.Context, pid string) error {
	return s.repo.Delete(ctx, pid)
}

func (s *service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

func (s *service) ListPrescriptions(ctx context.Context, pid string) ([]*model.PatientPrescription, error) {
	return s.repo.Prescriptions(ctx, pid)
}

// TotalSpending delegates the aggregation to the store; the total is null
// when the patient has no bills.
func (s *service) TotalSpending(ctx context.Context, pid string) (*model.RevenueResult, error) {
	return s.repo.TotalSpending(ctx, pid)
}
