package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, req *model.CreatePatientRequest) error {
	// register_patient inserts the patient row plus the initial contact number.
	query := `SELECT register_patient($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		req.PID,
		req.FirstName,
		req.LastName,
		req.Sex,
		req.Address,
		req.Contact,
		req.InsuranceInfo,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, pid string) (*model.Patient, error) {
	query := `
		SELECT p.pid, p.first_name, p.last_name, p.sex, p.address, p.insurance_info,
		       string_agg(pc.contact_no, ', ' ORDER BY pc.contact_id) AS contacts
		FROM patient p
		LEFT JOIN patient_contact pc ON pc.pid = p.pid
		WHERE p.pid = $1
		GROUP BY p.pid
	`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, pid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, pid string, req *model.UpdatePatientRequest) error {
	query := `
		UPDATE patient
		SET first_name = $1, last_name = $2, sex = $3, address = $4, insurance_info = $5
		WHERE pid = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		req.FirstName,
		req.LastName,
		req.Sex,
		req.Address,
		req.InsuranceInfo,
		pid,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, pid string) error {
	query := `DELETE FROM patient WHERE pid = $1`
	_, err := r.db.ExecContext(ctx, query, pid)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `
		SELECT p.pid, p.first_name, p.last_name, p.sex, p.address, p.insurance_info,
		       string_agg(pc.contact_no, ', ' ORDER BY pc.contact_id) AS contacts
		FROM patient p
		LEFT JOIN patient_contact pc ON pc.pid = p.pid
		GROUP BY p.pid
		ORDER BY p.pid
	`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Prescriptions(ctx context.Context, pid string) ([]*model.PatientPrescription, error) {
	query := `SELECT drug_name, doctor_name, date, quantity FROM patient_prescriptions($1)`
	var prescriptions []*model.PatientPrescription
	if err := r.db.SelectContext(ctx, &prescriptions, query, pid); err != nil {
		return nil, fmt.Errorf("failed to list patient prescriptions: %w", err)
	}
	return prescriptions, nil
}

func (r *patientRepository) TotalSpending(ctx context.Context, pid string) (*model.RevenueResult, error) {
	query := `SELECT patient_total_spending($1) AS total`
	var result model.RevenueResult
	if err := r.db.GetContext(ctx, &result, query, pid); err != nil {
		return nil, fmt.Errorf("failed to get patient spending: %w", err)
	}
	return &result, nil
}
