package service

import (
	"context"
	"time"

	"github.com/metagym/metagym-api/internal/api/dto"
	"github.com/metagym/metagym-api/internal/types"
)

// growthWindowMonths is how far back the growth series reaches, current
// month included.
const growthWindowMonths = 7

// DashboardService aggregates the counters shown on the admin home screen.
type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetGrowth(ctx context.Context) (*dto.DashboardGrowthResponse, error)
}

type dashboardService struct {
	ServiceParams
}

func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{ServiceParams: params}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	counts, err := s.GymRequestRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	tenants, err := s.TenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, t := range tenants {
		if t.IsActive {
			active++
		}
	}

	stats := &dto.DashboardStatsResponse{
		TotalTenants:     len(tenants),
		ActiveTenants:    active,
		PendingRequests:  counts[types.GymRequestStatusPending],
		ApprovedRequests: counts[types.GymRequestStatusApproved],
		RejectedRequests: counts[types.GymRequestStatusRejected],
	}
	stats.TotalRequests = stats.PendingRequests + stats.ApprovedRequests + stats.RejectedRequests
	return stats, nil
}

// GetGrowth buckets requests and tenants by creation month over the
// trailing window, oldest month first. Months with no activity still
// appear with zero counts so charts stay continuous.
func (s *dashboardService) GetGrowth(ctx context.Context) (*dto.DashboardGrowthResponse, error) {
	requests, err := s.GymRequestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	tenants, err := s.TenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	// Anchor on the first of the month so month arithmetic never
	// normalizes across boundaries (e.g. March 31 minus one month).
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]dto.MonthlyGrowthPoint, 0, growthWindowMonths)
	index := make(map[string]int, growthWindowMonths)
	for i := growthWindowMonths - 1; i >= 0; i-- {
		m := monthStart.AddDate(0, -i, 0)
		key := m.Format("2006-01")
		index[key] = len(months)
		months = append(months, dto.MonthlyGrowthPoint{Month: key})
	}

	for _, r := range requests {
		if pos, ok := index[r.CreatedAt.Format("2006-01")]; ok {
			months[pos].Requests++
		}
	}
	for _, t := range tenants {
		if pos, ok := index[t.CreatedAt.Format("2006-01")]; ok {
			months[pos].Tenants++
		}
	}

	return &dto.DashboardGrowthResponse{Months: months}, nil
}
