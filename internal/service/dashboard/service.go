package dashboard

import (
	"context"
	"sync"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

const recentBillLimit = 5

type Service interface {
	Stats(ctx context.Context) model.DashboardStats
}

type service struct {
	stats repository.StatsRepository
	bills repository.BillRepository
}

func NewService(stats repository.StatsRepository, bills repository.BillRepository) Service {
	return &service{stats: stats, bills: bills}
}

// Stats runs the five dashboard queries concurrently and joins them at a
// barrier, so total latency is bounded by the slowest query rather than the
// sum. Each slot fails independently: a failing query leaves a SlotError in
// its slot and never aborts its siblings. The snapshot is returned only once
// every slot has been filled.
func (s *service) Stats(ctx context.Context) model.DashboardStats {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		stats = make(model.DashboardStats, 5)
	)

	run := func(slot string, query func() (interface{}, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := query()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats[slot] = model.SlotError{Error: err.Error()}
				return
			}
			stats[slot] = result
		}()
	}

	run(model.SlotTotalPatients, func() (interface{}, error) {
		return s.stats.CountPatients(ctx)
	})
	run(model.SlotTotalDoctors, func() (interface{}, error) {
		return s.stats.CountDoctors(ctx)
	})
	run(model.SlotTotalPharmacies, func() (interface{}, error) {
		return s.stats.CountPharmacies(ctx)
	})
	run(model.SlotTotalRevenue, func() (interface{}, error) {
		return s.stats.TotalRevenue(ctx)
	})
	run(model.SlotRecentBills, func() (interface{}, error) {
		bills, err := s.bills.ListRecent(ctx, recentBillLimit)
		if err != nil {
			return nil, err
		}
		if bills == nil {
			bills = []*model.Bill{}
		}
		return bills, nil
	})

	wg.Wait()
	return stats
}
