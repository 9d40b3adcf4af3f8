package model

// Bill is append-only: created once, never updated or deleted.
type Bill struct {
	BillID        string  `json:"bill_id" db:"bill_id"`
	Date          string  `json:"date" db:"date"`
	TotalAmt      float64 `json:"total_amt" db:"total_amt"`
	PaymentMethod string  `json:"payment_method" db:"payment_method"`
	PID           string  `json:"pid" db:"pid"`
	PharID        string  `json:"phar_id" db:"phar_id"`
	PatientName   *string `json:"patient_name,omitempty" db:"patient_name"`
	PharmacyName  *string `json:"pharmacy_name,omitempty" db:"pharmacy_name"`
}

type CreateBillRequest struct {
	BillID        string  `json:"bill_id" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	TotalAmt      float64 `json:"total_amt" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	PID           string  `json:"pid" binding:"required"`
	PharID        string  `json:"phar_id" binding:"required"`
}

// MonthlySalesRow is one pharmacy's slice of a month's revenue.
type MonthlySalesRow struct {
	PharID       string  `json:"phar_id" db:"phar_id"`
	PharmacyName string  `json:"pharmacy_name" db:"pharmacy_name"`
	BillCount    int64   `json:"bill_count" db:"bill_count"`
	TotalSales   float64 `json:"total_sales" db:"total_sales"`
}
