package pharmacy

import (
	"context"
	"fmt"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

type Service interface {
	CreatePharmacy(ctx context.Context, req *model.CreatePharmacyRequest) error
	GetPharmacy(ctx context.Context, pharID string) (*model.Pharmacy, error)
	UpdatePharmacy(ctx context.Context, pharID string, req *model.UpdatePharmacyRequest) error
	DeletePharmacy(ctx context.Context, pharID string) error
	ListPharmacies(ctx context.Context) ([]*model.Pharmacy, error)
	DrugCount(ctx context.Context, pharID string) (*model.CountResult, error)
}

type service struct {
	repo repository.PharmacyRepository
}

func NewService(repo repository.PharmacyRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePharmacy(ctx context.Context, req *model.CreatePharmacyRequest) error {
	pharmacy := &model.Pharmacy{
		PharID:  req.PharID,
		Name:    req.Name,
		Address: req.Address,
		Fax:     req.Fax,
	}
	if err := s.repo.Create(ctx, pharmacy); err != nil {
		return fmt.Errorf("failed to create pharmacy: %w", err)
	}
	return nil
}

func (s *service) GetPharmacy(ctx context.Context, pharID string) (*model.Pharmacy, error) {
	return s.repo.Get(ctx, pharID)
}

func (s *service) UpdatePharmacy(ctx context.Context, pharID string, req *model.UpdatePharmacyRequest) error {
	return s.repo.Update(ctx, pharID, req)
}

func (s *service) DeletePharmacy(ctx context.Context, pharID string) error {
	return s.repo.Delete(ctx, pharID)
}

func (s *service) ListPharmacies(ctx context.Context) ([]*model.Pharmacy, error) {
	return s.repo.List(ctx)
}

func (s *service) DrugCount(ctx context.Context, pharID string) (*model.CountResult, error) {
	return s.repo.DrugCount(ctx, pharID)
}
