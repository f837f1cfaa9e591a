package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	"github.com/metagym/metagym-api/internal/domain/tenant"
	"github.com/metagym/metagym-api/internal/testutil"
	"github.com/metagym/metagym-api/internal/types"
)

type DashboardServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DashboardService
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewDashboardService(ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		GymRequestRepo: s.GetStores().GymRequestRepo,
		TenantRepo:     s.GetStores().TenantRepo,
	})
}

func (s *DashboardServiceSuite) seedRequestAt(status types.GymRequestStatus, createdAt time.Time) {
	req := &gymrequest.GymRequest{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST),
		GymName:       "Iron Gym",
		CompanyName:   "Iron Gym SL",
		AdminName:     "Ana",
		AdminSurname1: "García",
		Email:         "owner@iron.gym",
		RequestedPlan: types.PlanBasic,
		Status:        status,
		Date:          createdAt,
		BaseModel: types.BaseModel{
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
	_, err := s.GetStores().GymRequestRepo.Create(s.GetContext(), req)
	s.Require().NoError(err)
}

func (s *DashboardServiceSuite) seedTenantAt(active bool, createdAt time.Time) {
	t := &tenant.Tenant{
		ID:                  types.GenerateTenantID(),
		CompanyName:         "Iron Gym SL",
		OwnerID:             "owner-1",
		CurrentPlanID:       types.TenantPlanBasic,
		SubscriptionEndDate: createdAt.AddDate(0, 0, 30),
		IsActive:            active,
		BaseModel: types.BaseModel{
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
	_, err := s.GetStores().TenantRepo.Create(s.GetContext(), t)
	s.Require().NoError(err)
}

func (s *DashboardServiceSuite) TestGetStats() {
	now := time.Now().UTC()
	s.seedRequestAt(types.GymRequestStatusPending, now)
	s.seedRequestAt(types.GymRequestStatusPending, now)
	s.seedRequestAt(types.GymRequestStatusApproved, now)
	s.seedRequestAt(types.GymRequestStatusRejected, now)
	s.seedTenantAt(true, now)
	s.seedTenantAt(false, now)

	stats, err := s.service.GetStats(s.GetContext())
	s.NoError(err)
	s.Require().NotNil(stats)
	s.Equal(4, stats.TotalRequests)
	s.Equal(2, stats.PendingRequests)
	s.Equal(1, stats.ApprovedRequests)
	s.Equal(1, stats.RejectedRequests)
	s.Equal(2, stats.TotalTenants)
	s.Equal(1, stats.ActiveTenants)
}

func (s *DashboardServiceSuite) TestGetStatsEmpty() {
	stats, err := s.service.GetStats(s.GetContext())
	s.NoError(err)
	s.Require().NotNil(stats)
	s.Equal(0, stats.TotalRequests)
	s.Equal(0, stats.TotalTenants)
}

func (s *DashboardServiceSuite) TestGetGrowthBucketsByMonth() {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	s.seedRequestAt(types.GymRequestStatusPending, monthStart)
	s.seedRequestAt(types.GymRequestStatusApproved, monthStart.AddDate(0, -1, 0))
	s.seedRequestAt(types.GymRequestStatusApproved, monthStart.AddDate(0, -1, 0))
	s.seedTenantAt(true, monthStart.AddDate(0, -1, 0))
	// Outside the window, must not appear in any bucket.
	s.seedRequestAt(types.GymRequestStatusRejected, monthStart.AddDate(0, -growthWindowMonths, 0))

	growth, err := s.service.GetGrowth(s.GetContext())
	s.NoError(err)
	s.Require().NotNil(growth)
	s.Require().Len(growth.Months, growthWindowMonths)

	// Oldest month first, current month last.
	s.Equal(monthStart.AddDate(0, -(growthWindowMonths-1), 0).Format("2006-01"), growth.Months[0].Month)
	s.Equal(monthStart.Format("2006-01"), growth.Months[growthWindowMonths-1].Month)

	current := growth.Months[growthWindowMonths-1]
	s.Equal(1, current.Requests)
	s.Equal(0, current.Tenants)

	previous := growth.Months[growthWindowMonths-2]
	s.Equal(2, previous.Requests)
	s.Equal(1, previous.Tenants)

	totalRequests := 0
	for _, m := range growth.Months {
		totalRequests += m.Requests
	}
	s.Equal(3, totalRequests)
}

func (s *DashboardServiceSuite) TestGetGrowthEmptyMonthsStayContinuous() {
	growth, err := s.service.GetGrowth(s.GetContext())
	s.NoError(err)
	s.Require().Len(growth.Months, growthWindowMonths)
	for _, m := range growth.Months {
		s.Equal(0, m.Requests)
		s.Equal(0, m.Tenants)
	}
}
