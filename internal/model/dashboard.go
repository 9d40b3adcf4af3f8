package model

// DashboardStats maps slot name to that slot's outcome. A slot holds either
// the query's result (CountResult, RevenueResult or []*Bill) or a SlotError;
// consumers must be able to tell a failed slot from an empty one.
type DashboardStats map[string]interface{}

// Dashboard slot names.
const (
	SlotTotalPatients   = "total_patients"
	SlotTotalDoctors    = "total_doctors"
	SlotTotalPharmacies = "total_pharmacies"
	SlotTotalRevenue    = "total_revenue"
	SlotRecentBills     = "recent_bills"
)

type CountResult struct {
	Count int64 `json:"count" db:"count"`
}

// RevenueResult carries a nullable sum: over zero bills the total is null,
// not zero, and that distinction is part of the API contract.
type RevenueResult struct {
	Total *float64 `json:"total" db:"total"`
}

// SlotError marks a dashboard slot whose query failed.
type SlotError struct {
	Error string `json:"error"`
}
