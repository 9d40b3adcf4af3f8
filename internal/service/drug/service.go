package drug

import (
	"context"
	"fmt"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

type Service interface {
	CreateDrug(ctx context.Context, req *model.CreateDrugRequest) error
	GetDrug(ctx context.Context, drugName string) (*model.Drug, error)
	UpdateDrug(ctx context.Context, drugName string, req *model.UpdateDrugRequest) error
	DeleteDrug(ctx context.Context, drugName string) error
	ListDrugs(ctx context.Context) ([]*model.Drug, error)
	ListBelowPrice(ctx context.Context, threshold float64) ([]*model.PricedDrug, error)
	UpdatePrice(ctx context.Context, req *model.UpdateDrugPriceRequest) error
}

type service struct {
	repo repository.DrugRepository
}

func NewService(repo repository.DrugRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreateDrug(ctx context.Context, req *model.CreateDrugRequest) error {
	if err := s.repo.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to create drug: %w", err)
	}
	return nil
}

func (s *service) GetDrug(ctx context.Context, drugName string) (*model.Drug, error) {
	return s.repo.Get(ctx, drugName)
}

func (s *service) UpdateDrug(ctx context.Context, drugName string, req *model.UpdateDrugRequest) error {
	return s.repo.Update(ctx, drugName, req)
}

func (s *service) DeleteDrug(ctx context.Context, drugName string) error {
	return s.repo.Delete(ctx, drugName)
}

func (s *service) ListDrugs(ctx context.Context) ([]*model.Drug, error) {
	return s.repo.List(ctx)
}

func (s *service) ListBelowPrice(ctx context.Context, threshold float64) ([]*model.PricedDrug, error) {
	return s.repo.ListBelowPrice(ctx, threshold)
}

func (s *service) UpdatePrice(ctx context.Context, req *model.UpdateDrugPriceRequest) error {
	return s.repo.UpdatePrice(ctx, req)
}
