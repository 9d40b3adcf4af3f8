package repository

import (
	"context"

	"github.com/pharmadesk/pharmacy-api/internal/model"
)

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, req *model.CreatePatientRequest) error
		Get(ctx context.Context, pid string) (*model.Patient, error)
		Update(ctx context.Context, pid string, req *model.UpdatePatientRequest) error
		Delete(ctx context.Context, pid string) error
		List(ctx context.Context) ([]*model.Patient, error)
		Prescriptions(ctx context.Context, pid string) ([]*model.PatientPrescription, error)
		TotalSpending(ctx context.Context, pid string) (*model.RevenueResult, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, req *model.CreateDoctorRequest) error
		Get(ctx context.Context, docID string) (*model.Doctor, error)
		Update(ctx context.Context, docID string, req *model.UpdateDoctorRequest) error
		Delete(ctx context.Context, docID string) error
		List(ctx context.Context) ([]*model.Doctor, error)
		PrescriptionCount(ctx context.Context, docID string) (*model.CountResult, error)
	}

	PharmacyRepository interface {
		Create(ctx context.Context, pharmacy *model.Pharmacy) error
		Get(ctx context.Context, pharID string) (*model.Pharmacy, error)
		Update(ctx context.Context, pharID string, req *model.UpdatePharmacyRequest) error
		Delete(ctx context.Context, pharID string) error
		List(ctx context.Context) ([]*model.Pharmacy, error)
		DrugCount(ctx context.Context, pharID string) (*model.CountResult, error)
	}

	DrugRepository interface {
		Create(ctx context.Context, req *model.CreateDrugRequest) error
		Get(ctx context.Context, drugName string) (*model.Drug, error)
		Update(ctx context.Context, drugName string, req *model.UpdateDrugRequest) error
		Delete(ctx context.Context, drugName string) error
		List(ctx context.Context) ([]*model.Drug, error)
		ListBelowPrice(ctx context.Context, threshold float64) ([]*model.PricedDrug, error)
		UpdatePrice(ctx context.Context, req *model.UpdateDrugPriceRequest) error
	}

	EmployeeRepository interface {
		Create(ctx context.Context, req *model.CreateEmployeeRequest) error
		Get(ctx context.Context, employeeID string) (*model.Employee, error)
		Update(ctx context.Context, employeeID string, req *model.UpdateEmployeeRequest) error
		Delete(ctx context.Context, employeeID string) error
		List(ctx context.Context) ([]*model.Employee, error)
	}

	BillRepository interface {
		Create(ctx context.Context, req *model.CreateBillRequest) error
		Get(ctx context.Context, billID string) (*model.Bill, error)
		List(ctx context.Context) ([]*model.Bill, error)
		ListRecent(ctx context.Context, limit int) ([]*model.Bill, error)
		MonthlySales(ctx context.Context, month, year int) ([]*model.MonthlySalesRow, error)
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, req *model.CreatePrescriptionRequest) error
		List(ctx context.Context) ([]*model.Prescription, error)
	}

	// StatsRepository serves the dashboard's independent count queries.
	StatsRepository interface {
		CountPatients(ctx context.Context) (*model.CountResult, error)
		CountDoctors(ctx context.Context) (*model.CountResult, error)
		CountPharmacies(ctx context.Context) (*model.CountResult, error)
		TotalRevenue(ctx context.Context) (*model.RevenueResult, error)
	}
)
