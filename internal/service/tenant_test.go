package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/metagym/metagym-api/internal/api/dto"
	"github.com/metagym/metagym-api/internal/domain/subscription"
	"github.com/metagym/metagym-api/internal/domain/tenant"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/testutil"
	"github.com/metagym/metagym-api/internal/types"
)

type TenantServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TenantService
	params  ServiceParams
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceSuite))
}

func (s *TenantServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		AuthProvider:     testutil.NewFakeAuthProvider(),
		Notifier:         testutil.NewFakeNotificationSender(),
		GymRequestRepo:   s.GetStores().GymRequestRepo,
		TenantRepo:       s.GetStores().TenantRepo,
		SubscriptionRepo: s.GetStores().SubscriptionRepo,
		GymRepo:          s.GetStores().GymRepo,
		UserRepo:         s.GetStores().UserRepo,
		PaymentRepo:      s.GetStores().PaymentRepo,
		PlanRepo:         s.GetStores().PlanRepo,
	}
	s.service = NewTenantService(s.params)
}

func (s *TenantServiceSuite) seedTenant(endDate time.Time) *tenant.Tenant {
	t := &tenant.Tenant{
		ID:                  types.GenerateTenantID(),
		CompanyName:         "Iron Gym SL",
		CompanyEmail:        "owner@iron.gym",
		CompanyPhone:        "+34 600 000 001",
		OwnerID:             "identity-1",
		CurrentPlanID:       types.TenantPlanBasic,
		SubscriptionEndDate: endDate,
		IsActive:            true,
		BaseModel:           types.GetDefaultBaseModel(s.GetContext()),
	}
	created, err := s.GetStores().TenantRepo.Create(s.GetContext(), t)
	s.Require().NoError(err)

	_, err = s.GetStores().SubscriptionRepo.Create(s.GetContext(), &subscription.Subscription{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		TenantID:      created.ID,
		PlanID:        types.TenantPlanBasic,
		Status:        types.SubscriptionStatusActive,
		StartDate:     endDate.AddDate(0, 0, -30),
		EndDate:       endDate,
		PaymentDate:   endDate.AddDate(0, 0, -30),
		PaymentAmount: decimal.NewFromFloat(29.99),
		AutoRenew:     true,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)
	return created
}

func (s *TenantServiceSuite) TestRecordPaymentExtendsFromCurrentEndDate() {
	// 2025-01-01 end date extends to 2025-01-31 regardless of today.
	endDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t := s.seedTenant(endDate)

	resp, err := s.service.RecordPayment(s.GetContext(), t.ID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromFloat(29.99),
	})
	s.Require().NoError(err)
	s.Equal(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), resp.NewEndDate)

	updated, err := s.GetStores().TenantRepo.Get(s.GetContext(), t.ID)
	s.NoError(err)
	s.Equal(resp.NewEndDate, updated.SubscriptionEndDate)

	payments, err := s.GetStores().PaymentRepo.ListByTenant(s.GetContext(), t.ID)
	s.NoError(err)
	s.Require().Len(payments, 1)
	s.Equal(endDate, payments[0].PeriodStart)
	s.Equal(resp.NewEndDate, payments[0].PeriodEnd)
	s.True(payments[0].HasPaid)
	s.NotNil(payments[0].PaidAt)
}

func (s *TenantServiceSuite) TestRecordPaymentPreservesFutureBuffer() {
	// A tenant paid ahead keeps the remaining buffer.
	endDate := time.Now().UTC().AddDate(0, 0, 10)
	t := s.seedTenant(endDate)

	resp, err := s.service.RecordPayment(s.GetContext(), t.ID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromFloat(29.99),
	})
	s.Require().NoError(err)
	s.Equal(endDate.AddDate(0, 0, 30), resp.NewEndDate)
}

func (s *TenantServiceSuite) TestRecordPaymentValidation() {
	t := s.seedTenant(time.Now().UTC())

	_, err := s.service.RecordPayment(s.GetContext(), t.ID, dto.RecordPaymentRequest{
		Amount: decimal.Zero,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.RecordPayment(s.GetContext(), t.ID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromFloat(-5),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	payments, err := s.GetStores().PaymentRepo.ListByTenant(s.GetContext(), t.ID)
	s.NoError(err)
	s.Empty(payments)
}

func (s *TenantServiceSuite) TestRecordPaymentUnknownTenant() {
	_, err := s.service.RecordPayment(s.GetContext(), "tenant_MISSING1", dto.RecordPaymentRequest{
		Amount: decimal.NewFromFloat(29.99),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *TenantServiceSuite) TestToggleTenantStatus() {
	t := s.seedTenant(time.Now().UTC().AddDate(0, 0, 30))

	resp, err := s.service.ToggleTenantStatus(s.GetContext(), t.ID)
	s.Require().NoError(err)
	s.False(resp.IsActive)

	resp, err = s.service.ToggleTenantStatus(s.GetContext(), t.ID)
	s.Require().NoError(err)
	s.True(resp.IsActive)
}

func (s *TenantServiceSuite) TestUpdateTenant() {
	t := s.seedTenant(time.Now().UTC().AddDate(0, 0, 30))

	newName := "New Iron Gym SL"
	newPlan := types.TenantPlanPremium.String()
	resp, err := s.service.UpdateTenant(s.GetContext(), t.ID, dto.UpdateTenantRequest{
		CompanyName:   &newName,
		CurrentPlanID: &newPlan,
	})
	s.Require().NoError(err)
	s.Equal(newName, resp.CompanyName)
	s.Equal(types.TenantPlanPremium, resp.CurrentPlanID)
	// Untouched fields survive.
	s.Equal("owner@iron.gym", resp.CompanyEmail)
}

func (s *TenantServiceSuite) TestUpdateTenantPlanValidation() {
	t := s.seedTenant(time.Now().UTC().AddDate(0, 0, 30))

	// Every tenant plan is accepted, including the two that never appear
	// on a registration request.
	for _, plan := range []types.PlanID{
		types.TenantPlanBasic,
		types.TenantPlanStandard,
		types.TenantPlanPremium,
		types.TenantPlanEnterprise,
	} {
		planID := plan.String()
		resp, err := s.service.UpdateTenant(s.GetContext(), t.ID, dto.UpdateTenantRequest{
			CurrentPlanID: &planID,
		})
		s.Require().NoError(err)
		s.Equal(plan, resp.CurrentPlanID)
	}

	bogus := "platinum_plan"
	_, err := s.service.UpdateTenant(s.GetContext(), t.ID, dto.UpdateTenantRequest{
		CurrentPlanID: &bogus,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *TenantServiceSuite) TestListTenantsActiveFilter() {
	active := s.seedTenant(time.Now().UTC().AddDate(0, 0, 30))
	inactive := s.seedTenant(time.Now().UTC().AddDate(0, 0, 30))
	s.Require().NoError(s.GetStores().TenantRepo.SetActive(s.GetContext(), inactive.ID, false))

	all, err := s.service.ListTenants(s.GetContext(), false)
	s.NoError(err)
	s.Equal(2, all.Total)

	activeOnly, err := s.service.ListTenants(s.GetContext(), true)
	s.NoError(err)
	s.Require().Equal(1, activeOnly.Total)
	s.Equal(active.ID, activeOnly.Items[0].ID)
}

func (s *TenantServiceSuite) TestSubscriptionHealthFlags() {
	expired := s.seedTenant(time.Now().UTC().AddDate(0, 0, -1))
	expiring := s.seedTenant(time.Now().UTC().AddDate(0, 0, 3))
	healthy := s.seedTenant(time.Now().UTC().AddDate(0, 0, 60))

	resp, err := s.service.GetTenant(s.GetContext(), expired.ID)
	s.NoError(err)
	s.True(resp.SubscriptionExpired)
	s.False(resp.SubscriptionExpiringSoon)

	resp, err = s.service.GetTenant(s.GetContext(), expiring.ID)
	s.NoError(err)
	s.False(resp.SubscriptionExpired)
	s.True(resp.SubscriptionExpiringSoon)

	resp, err = s.service.GetTenant(s.GetContext(), healthy.ID)
	s.NoError(err)
	s.False(resp.SubscriptionExpired)
	s.False(resp.SubscriptionExpiringSoon)
}
