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

type pharmacyRepository struct {
	db *sqlx.DB
}

func NewPharmacyRepository(db *sqlx.DB) repository.PharmacyRepository {
	return &pharmacyRepository{db: db}
}

func (r *pharmacyRepository) Create(ctx context.Context, pharmacy *model.Pharmacy) error {
	query := `INSERT INTO pharmacy (phar_id, name, address, fax) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, pharmacy.PharID, pharmacy.Name, pharmacy.Address, pharmacy.Fax)
	if err != nil {
		return fmt.Errorf("failed to create pharmacy: %w", err)
	}
	return nil
}

func (r *pharmacyRepository) Get(ctx context.Context, pharID string) (*model.Pharmacy, error) {
	query := `SELECT phar_id, name, address, fax FROM pharmacy WHERE phar_id = $1`
	var pharmacy model.Pharmacy
	err := r.db.GetContext(ctx, &pharmacy, query, pharID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pharmacy: %w", err)
	}
	return &pharmacy, nil
}

func (r *pharmacyRepository) Update(ctx context.Context, pharID string, req *model.UpdatePharmacyRequest) error {
	query := `UPDATE pharmacy SET name = $1, address = $2, fax = $3 WHERE phar_id = $4`
	_, err := r.db.ExecContext(ctx, query, req.Name, req.Address, req.Fax, pharID)
	if err != nil {
		return fmt.Errorf("failed to update pharmacy: %w", err)
	}
	return nil
}

func (r *pharmacyRepository) Delete(ctx context.Context, pharID string) error {
	query := `DELETE FROM pharmacy WHERE phar_id = $1`
	_, err := r.db.ExecContext(ctx, query, pharID)
	if err != nil {
		return fmt.Errorf("failed to delete pharmacy: %w", err)
	}
	return nil
}

func (r *pharmacyRepository) List(ctx context.Context) ([]*model.Pharmacy, error) {
	query := `SELECT phar_id, name, address, fax FROM pharmacy ORDER BY phar_id`
	var pharmacies []*model.Pharmacy
	if err := r.db.SelectContext(ctx, &pharmacies, query); err != nil {
		return nil, fmt.Errorf("failed to list pharmacies: %w", err)
	}
	return pharmacies, nil
}

func (r *pharmacyRepository) DrugCount(ctx context.Context, pharID string) (*model.CountResult, error) {
	query := `SELECT pharmacy_drug_count($1) AS count`
	var result model.CountResult
	if err := r.db.GetContext(ctx, &result, query, pharID); err != nil {
		return nil, fmt.Errorf("failed to get pharmacy drug count: %w", err)
	}
	return &result, nil
}
