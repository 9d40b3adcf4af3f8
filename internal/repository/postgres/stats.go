package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountPatients(ctx context.Context) (*model.CountResult, error) {
	return r.count(ctx, `SELECT COUNT(*) AS count FROM patient`)
}

func (r *statsRepository) CountDoctors(ctx context.Context) (*model.CountResult, error) {
	return r.count(ctx, `SELECT COUNT(*) AS count FROM doctor`)
}

func (r *statsRepository) CountPharmacies(ctx context.Context) (*model.CountResult, error) {
	return r.count(ctx, `SELECT COUNT(*) AS count FROM pharmacy`)
}

// TotalRevenue sums all bills; the total is null, not zero, when the bill
// table is empty.
func (r *statsRepository) TotalRevenue(ctx context.Context) (*model.RevenueResult, error) {
	var result model.RevenueResult
	if err := r.db.GetContext(ctx, &result, `SELECT SUM(total_amt) AS total FROM bill`); err != nil {
		return nil, fmt.Errorf("failed to get total revenue: %w", err)
	}
	return &result, nil
}

func (r *statsRepository) count(ctx context.Context, query string) (*model.CountResult, error) {
	var result model.CountResult
	if err := r.db.GetContext(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("failed to run count query: %w", err)
	}
	return &result, nil
}
