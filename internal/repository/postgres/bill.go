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

type billRepository struct {
	db *sqlx.DB
}

func NewBillRepository(db *sqlx.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, req *model.CreateBillRequest) error {
	query := `
		INSERT INTO bill (bill_id, date, total_amt, payment_method, pid, phar_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		req.BillID,
		req.Date,
		req.TotalAmt,
		req.PaymentMethod,
		req.PID,
		req.PharID,
	)
	if err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

func (r *billRepository) Get(ctx context.Context, billID string) (*model.Bill, error) {
	var bill model.Bill
	err := r.db.GetContext(ctx, &bill, billQuery+` WHERE b.bill_id = $1`, billID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context) ([]*model.Bill, error) {
	var bills []*model.Bill
	err := r.db.SelectContext(ctx, &bills, billQuery+` ORDER BY b.date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (r *billRepository) ListRecent(ctx context.Context, limit int) ([]*model.Bill, error) {
	var bills []*model.Bill
	err := r.db.SelectContext(ctx, &bills, billQuery+` ORDER BY b.date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent bills: %w", err)
	}
	return bills, nil
}

func (r *billRepository) MonthlySales(ctx context.Context, month, year int) ([]*model.MonthlySalesRow, error) {
	query := `SELECT phar_id, pharmacy_name, bill_count, total_sales FROM monthly_sales_report($1, $2)`
	var rows []*model.MonthlySalesRow
	if err := r.db.SelectContext(ctx, &rows, query, month, year); err != nil {
		return nil, fmt.Errorf("failed to get monthly sales report: %w", err)
	}
	return rows, nil
}

// billQuery joins the patient's full name and the pharmacy's name onto each
// bill row; dates are rendered as plain YYYY-MM-DD strings.
const billQuery = `
	SELECT b.bill_id, to_char(b.date, 'YYYY-MM-DD') AS date, b.total_amt, b.payment_method,
	       b.pid, b.phar_id,
	       p.first_name || ' ' || p.last_name AS patient_name,
	       ph.name AS pharmacy_name
	FROM bill b
	JOIN patient p ON p.pid = b.pid
	JOIN pharmacy ph ON ph.phar_id = b.phar_id
`
