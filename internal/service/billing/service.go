package billing

import (
	"context"
	"fmt"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

// Service covers the append-only billing surface: bills, prescriptions and
// the monthly sales report.
type Service interface {
	CreateBill(ctx context.Context, req *model.CreateBillRequest) error
	GetBill(ctx context.Context, billID string) (*model.Bill, error)
	ListBills(ctx context.Context) ([]*model.Bill, error)
	CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) error
	ListPrescriptions(ctx context.Context) ([]*model.Prescription, error)
	MonthlySales(ctx context.Context, month, year int) ([]*model.MonthlySalesRow, error)
}

type service struct {
	bills         repository.BillRepository
	prescriptions repository.PrescriptionRepository
}

func NewService(bills repository.BillRepository, prescriptions repository.PrescriptionRepository) Service {
	return &service{bills: bills, prescriptions: prescriptions}
}

func (s *service) CreateBill(ctx context.Context, req *model.CreateBillRequest) error {
	if err := s.bills.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

func (s *service) GetBill(ctx context.Context, billID string) (*model.Bill, error) {
	return s.bills.Get(ctx, billID)
}

func (s *service) ListBills(ctx context.Context) ([]*model.Bill, error) {
	return s.bills.List(ctx)
}

func (s *service) CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) error {
	if err := s.prescriptions.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (s *service) ListPrescriptions(ctx context.Context) ([]*model.Prescription, error) {
	return s.prescriptions.List(ctx)
}

// MonthlySales delegates the aggregation entirely to the store's report
// function; a month with no bills comes back as an empty result set.
func (s *service) MonthlySales(ctx context.Context, month, year int) ([]*model.MonthlySalesRow, error) {
	return s.bills.MonthlySales(ctx, month, year)
}
