package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pharmadesk/pharmacy-api/internal/model"
)

type mockStatsRepo struct {
	patients   int64
	doctors    int64
	pharmacies int64
	revenue    *float64
	failSlot   string
	delay      time.Duration
}

func (m *mockStatsRepo) CountPatients(ctx context.Context) (*model.CountResult, error) {
	return m.count(model.SlotTotalPatients, m.patients)
}

func (m *mockStatsRepo) CountDoctors(ctx context.Context) (*model.CountResult, error) {
	return m.count(model.SlotTotalDoctors, m.doctors)
}

func (m *mockStatsRepo) CountPharmacies(ctx context.Context) (*model.CountResult, error) {
	return m.count(model.SlotTotalPharmacies, m.pharmacies)
}

func (m *mockStatsRepo) TotalRevenue(ctx context.Context) (*model.RevenueResult, error) {
	time.Sleep(m.delay)
	if m.failSlot == model.SlotTotalRevenue {
		return nil, errors.New("revenue query failed")
	}
	return &model.RevenueResult{Total: m.revenue}, nil
}

func (m *mockStatsRepo) count(slot string, n int64) (*model.CountResult, error) {
	time.Sleep(m.delay)
	if m.failSlot == slot {
		return nil, errors.New("count query failed")
	}
	return &model.CountResult{Count: n}, nil
}

type mockBillRepo struct {
	bills    []*model.Bill
	failList bool
	delay    time.Duration
}

func (m *mockBillRepo) Create(ctx context.Context, req *model.CreateBillRequest) error { return nil }

func (m *mockBillRepo) Get(ctx context.Context, billID string) (*model.Bill, error) {
	return nil, nil
}

func (m *mockBillRepo) List(ctx context.Context) ([]*model.Bill, error) {
	return m.bills, nil
}

func (m *mockBillRepo) ListRecent(ctx context.Context, limit int) ([]*model.Bill, error) {
	time.Sleep(m.delay)
	if m.failList {
		return nil, errors.New("recent bills query failed")
	}
	if len(m.bills) > limit {
		return m.bills[:limit], nil
	}
	return m.bills, nil
}

func (m *mockBillRepo) MonthlySales(ctx context.Context, month, year int) ([]*model.MonthlySalesRow, error) {
	return nil, nil
}

func TestStats_AllSlotsSucceed(t *testing.T) {
	revenue := 1234.50
	svc := NewService(
		&mockStatsRepo{patients: 10, doctors: 4, pharmacies: 2, revenue: &revenue},
		&mockBillRepo{bills: []*model.Bill{{BillID: "B1"}, {BillID: "B2"}}},
	)

	stats := svc.Stats(context.Background())

	assert.Len(t, stats, 5)
	assert.Equal(t, int64(10), stats[model.SlotTotalPatients].(*model.CountResult).Count)
	assert.Equal(t, int64(4), stats[model.SlotTotalDoctors].(*model.CountResult).Count)
	assert.Equal(t, int64(2), stats[model.SlotTotalPharmacies].(*model.CountResult).Count)
	assert.Equal(t, &revenue, stats[model.SlotTotalRevenue].(*model.RevenueResult).Total)
	assert.Len(t, stats[model.SlotRecentBills].([]*model.Bill), 2)
}

func TestStats_OneFailingSlotIsIsolated(t *testing.T) {
	revenue := 99.0
	svc := NewService(
		&mockStatsRepo{patients: 3, revenue: &revenue, failSlot: model.SlotTotalDoctors},
		&mockBillRepo{},
	)

	stats := svc.Stats(context.Background())

	// All five slots are filled even though one query failed.
	assert.Len(t, stats, 5)

	slotErr, ok := stats[model.SlotTotalDoctors].(model.SlotError)
	assert.True(t, ok, "failed slot should hold an error descriptor")
	assert.Equal(t, "count query failed", slotErr.Error)

	// The siblings are untouched by the failure.
	assert.Equal(t, int64(3), stats[model.SlotTotalPatients].(*model.CountResult).Count)
	assert.Equal(t, &revenue, stats[model.SlotTotalRevenue].(*model.RevenueResult).Total)
	assert.NotNil(t, stats[model.SlotRecentBills])
}

func TestStats_FailingBillsSlotIsIsolated(t *testing.T) {
	svc := NewService(
		&mockStatsRepo{patients: 1, doctors: 1, pharmacies: 1},
		&mockBillRepo{failList: true},
	)

	stats := svc.Stats(context.Background())

	assert.Len(t, stats, 5)
	slotErr, ok := stats[model.SlotRecentBills].(model.SlotError)
	assert.True(t, ok)
	assert.Equal(t, "recent bills query failed", slotErr.Error)
	assert.IsType(t, &model.CountResult{}, stats[model.SlotTotalPatients])
}

func TestStats_RevenueOverZeroBillsIsNull(t *testing.T) {
	svc := NewService(&mockStatsRepo{}, &mockBillRepo{})

	stats := svc.Stats(context.Background())

	revenue := stats[model.SlotTotalRevenue].(*model.RevenueResult)
	assert.Nil(t, revenue.Total, "revenue over zero bills must be absent, not zero")

	bills := stats[model.SlotRecentBills].([]*model.Bill)
	assert.NotNil(t, bills)
	assert.Empty(t, bills)
}

func TestStats_QueriesRunConcurrently(t *testing.T) {
	delay := 50 * time.Millisecond
	svc := NewService(
		&mockStatsRepo{delay: delay},
		&mockBillRepo{delay: delay},
	)

	start := time.Now()
	stats := svc.Stats(context.Background())
	elapsed := time.Since(start)

	assert.Len(t, stats, 5)
	// Five queries at 50ms each: sequential execution would need 250ms.
	assert.Less(t, elapsed, 4*delay, "queries should overlap, not run in sequence")
}

func TestStats_RecentBillsCappedAtFive(t *testing.T) {
	bills := make([]*model.Bill, 8)
	for i := range bills {
		bills[i] = &model.Bill{BillID: string(rune('A' + i))}
	}
	svc := NewService(&mockStatsRepo{}, &mockBillRepo{bills: bills})

	stats := svc.Stats(context.Background())

	assert.Len(t, stats[model.SlotRecentBills].([]*model.Bill), 5)
}
