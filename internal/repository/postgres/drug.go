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

type drugRepository struct {
	db *sqlx.DB
}

func NewDrugRepository(db *sqlx.DB) repository.DrugRepository {
	return &drugRepository{db: db}
}

func (r *drugRepository) Create(ctx context.Context, req *model.CreateDrugRequest) error {
	query := `INSERT INTO drug (drug_name, description, company_id) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, req.DrugName, req.Description, req.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to create drug: %w", err)
	}
	return nil
}

func (r *drugRepository) Get(ctx context.Context, drugName string) (*model.Drug, error) {
	query := `
		SELECT d.drug_name, d.description, d.company_id, dm.name AS manufacturer_name
		FROM drug d
		LEFT JOIN drug_manufacturer dm ON dm.company_id = d.company_id
		WHERE d.drug_name = $1
	`
	var drug model.Drug
	err := r.db.GetContext(ctx, &drug, query, drugName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drug: %w", err)
	}
	return &drug, nil
}

func (r *drugRepository) Update(ctx context.Context, drugName string, req *model.UpdateDrugRequest) error {
	query := `UPDATE drug SET description = $1, company_id = $2 WHERE drug_name = $3`
	_, err := r.db.ExecContext(ctx, query, req.Description, req.CompanyID, drugName)
	if err != nil {
		return fmt.Errorf("failed to update drug: %w", err)
	}
	return nil
}

func (r *drugRepository) Delete(ctx context.Context, drugName string) error {
	query := `DELETE FROM drug WHERE drug_name = $1`
	_, err := r.db.ExecContext(ctx, query, drugName)
	if err != nil {
		return fmt.Errorf("failed to delete drug: %w", err)
	}
	return nil
}

func (r *drugRepository) List(ctx context.Context) ([]*model.Drug, error) {
	query := `
		SELECT d.drug_name, d.description, d.company_id, dm.name AS manufacturer_name
		FROM drug d
		LEFT JOIN drug_manufacturer dm ON dm.company_id = d.company_id
		ORDER BY d.drug_name
	`
	var drugs []*model.Drug
	if err := r.db.SelectContext(ctx, &drugs, query); err != nil {
		return nil, fmt.Errorf("failed to list drugs: %w", err)
	}
	return drugs, nil
}

func (r *drugRepository) ListBelowPrice(ctx context.Context, threshold float64) ([]*model.PricedDrug, error) {
	query := `SELECT drug_name, phar_id, pharmacy_name, price FROM drugs_below_price($1)`
	var drugs []*model.PricedDrug
	if err := r.db.SelectContext(ctx, &drugs, query, threshold); err != nil {
		return nil, fmt.Errorf("failed to list drugs below price: %w", err)
	}
	return drugs, nil
}

// UpdatePrice targets one (pharmacy, drug) pair in the sells relation; the
// price of a drug is scoped to the pharmacy selling it.
func (r *drugRepository) UpdatePrice(ctx context.Context, req *model.UpdateDrugPriceRequest) error {
	query := `SELECT update_drug_price($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, req.PharID, req.DrugName, req.NewPrice)
	if err != nil {
		return fmt.Errorf("failed to update drug price: %w", err)
	}
	return nil
}
