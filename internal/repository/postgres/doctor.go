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

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

// Create inserts the doctor row and its speciality rows in one transaction.
func (r *doctorRepository) Create(ctx context.Context, req *model.CreateDoctorRequest) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO doctor (doc_id, d_name) VALUES ($1, $2)`,
		req.DocID, req.Name,
	); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}

	for _, speciality := range req.Specialities {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO doctor_speciality (doc_id, speciality) VALUES ($1, $2)`,
			req.DocID, speciality,
		); err != nil {
			return fmt.Errorf("failed to add doctor speciality: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit doctor creation: %w", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, docID string) (*model.Doctor, error) {
	query := `
		SELECT d.doc_id, d.d_name,
		       string_agg(ds.speciality, ', ' ORDER BY ds.speciality_id) AS specialities
		FROM doctor d
		LEFT JOIN doctor_speciality ds ON ds.doc_id = d.doc_id
		WHERE d.doc_id = $1
		GROUP BY d.doc_id
	`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, docID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, docID string, req *model.UpdateDoctorRequest) error {
	query := `UPDATE doctor SET d_name = $1 WHERE doc_id = $2`
	_, err := r.db.ExecContext(ctx, query, req.Name, docID)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, docID string) error {
	query := `DELETE FROM doctor WHERE doc_id = $1`
	_, err := r.db.ExecContext(ctx, query, docID)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `
		SELECT d.doc_id, d.d_name,
		       string_agg(ds.speciality, ', ' ORDER BY ds.speciality_id) AS specialities
		FROM doctor d
		LEFT JOIN doctor_speciality ds ON ds.doc_id = d.doc_id
		GROUP BY d.doc_id
		ORDER BY d.doc_id
	`
	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) PrescriptionCount(ctx context.Context, docID string) (*model.CountResult, error) {
	query := `SELECT doctor_prescription_count($1) AS count`
	var result model.CountResult
	if err := r.db.GetContext(ctx, &result, query, docID); err != nil {
		return nil, fmt.Errorf("failed to get doctor prescription count: %w", err)
	}
	return &result, nil
}
