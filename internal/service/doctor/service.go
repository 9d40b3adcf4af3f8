package doctor

import (
	"context"
	"fmt"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

type Service interface {
	CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) error
	GetDoctor(ctx context.Context, docID string) (*model.Doctor, error)
	UpdateDoctor(ctx context.Context, docID string, req *model.UpdateDoctorRequest) error
	DeleteDoctor(ctx context.Context, docID string) error
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
	PrescriptionCount(ctx context.Context, docID string) (*model.CountResult, error)
}

type service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) Service {
	return &service{repo: repo}
}

// CreateDoctor writes the doctor and its specialities atomically; the repo
// runs both inserts in one transaction.
func (s *service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) error {
	if err := s.repo.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (s *service) GetDoctor(ctx context.Context, docID string) (*model.Doctor, error) {
	return s.repo.Get(ctx, docID)
}

func (s *service) UpdateDoctor(ctx context.Context, docID string, req *model.UpdateDoctorRequest) error {
	return s.repo.Update(ctx, docID, req)
}

func (s *service) DeleteDoctor(ctx context.Context, docID string) error {
	return s.repo.Delete(ctx, docID)
}

func (s *service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *service) PrescriptionCount(ctx context.Context, docID string) (*model.CountResult, error) {
	return s.repo.PrescriptionCount(ctx, docID)
}
