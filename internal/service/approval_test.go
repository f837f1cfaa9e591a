package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/metagym/metagym-api/internal/api/dto"
	"github.com/metagym/metagym-api/internal/auth"
	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	"github.com/metagym/metagym-api/internal/domain/tenant"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/testutil"
	"github.com/metagym/metagym-api/internal/types"
)

type ApprovalServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ApprovalService
	params   ServiceParams
	auth     *testutil.FakeAuthProvider
	notifier *testutil.FakeNotificationSender
}

func TestApprovalService(t *testing.T) {
	suite.Run(t, new(ApprovalServiceSuite))
}

func (s *ApprovalServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.auth = testutil.NewFakeAuthProvider()
	s.notifier = testutil.NewFakeNotificationSender()
	s.params = ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		AuthProvider:     s.auth,
		Notifier:         s.notifier,
		GymRequestRepo:   s.GetStores().GymRequestRepo,
		TenantRepo:       s.GetStores().TenantRepo,
		SubscriptionRepo: s.GetStores().SubscriptionRepo,
		GymRepo:          s.GetStores().GymRepo,
		UserRepo:         s.GetStores().UserRepo,
		PaymentRepo:      s.GetStores().PaymentRepo,
		PlanRepo:         s.GetStores().PlanRepo,
	}
	s.service = NewApprovalService(s.params)
}

func (s *ApprovalServiceSuite) seedRequest(plan types.PlanID) *gymrequest.GymRequest {
	req := &gymrequest.GymRequest{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST),
		GymName:       "Iron Gym",
		GymPhone:      "+34 600 000 001",
		GymAddress:    "Calle Mayor 1",
		CompanyName:   "Iron Gym SL",
		AdminName:     "Ana",
		AdminSurname1: "García",
		AdminSurname2: "López",
		AdminPhone:    "+34 600 000 002",
		Email:         "owner@iron.gym",
		RequestedPlan: plan,
		Status:        types.GymRequestStatusPending,
		Date:          time.Now().UTC(),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	created, err := s.GetStores().GymRequestRepo.Create(s.GetContext(), req)
	s.Require().NoError(err)
	return created
}

func (s *ApprovalServiceSuite) TestApproveBasicPlanEndToEnd() {
	request := s.seedRequest(types.PlanBasic)

	resp, err := s.service.ApproveGymRequest(s.GetContext(), request.ID, "reviewer-1", dto.ApproveGymRequestRequest{
		AdminEmail:    "admin@iron.gym",
		AdminPassword: "secret1",
	})
	s.NoError(err)
	s.Require().NotNil(resp)
	s.True(resp.NotificationSent)

	// Request is closed and carries the tenant ID in generated_token.
	updated, err := s.GetStores().GymRequestRepo.Get(s.GetContext(), request.ID)
	s.NoError(err)
	s.Equal(types.GymRequestStatusApproved, updated.Status)
	s.Require().NotNil(updated.GeneratedToken)
	s.Equal(resp.TenantID, *updated.GeneratedToken)
	s.Require().NotNil(updated.ReviewedBy)
	s.Equal("reviewer-1", *updated.ReviewedBy)

	tenant, err := s.GetStores().TenantRepo.Get(s.GetContext(), resp.TenantID)
	s.NoError(err)
	s.Equal(types.TenantPlanBasic, tenant.CurrentPlanID)
	s.Equal("Iron Gym SL", tenant.CompanyName)
	s.Equal("owner@iron.gym", tenant.CompanyEmail)
	// The tenant's contact phone is the administrator's, not the gym's.
	s.Equal("+34 600 000 002", tenant.CompanyPhone)
	s.True(tenant.IsActive)

	subs, err := s.GetStores().SubscriptionRepo.ListByTenant(s.GetContext(), resp.TenantID)
	s.NoError(err)
	s.Require().Len(subs, 1)
	s.True(subs[0].PaymentAmount.Equal(decimal.NewFromFloat(29.99)))
	s.True(subs[0].AutoRenew)
	s.Equal(types.SubscriptionStatusActive, subs[0].Status)

	gymRecord, err := s.GetStores().GymRepo.Get(s.GetContext(), resp.GymID)
	s.NoError(err)
	s.Equal("admin@iron.gym", gymRecord.Email)
	s.Equal("N/A", gymRecord.City)
	s.Equal("N/A", gymRecord.Country)

	userRecord, err := s.GetStores().UserRepo.Get(s.GetContext(), resp.UserID)
	s.NoError(err)
	s.Require().Len(userRecord.Roles, 1)
	s.Equal("own", userRecord.Roles[0].ID)
	s.Equal("Administrator", userRecord.Roles[0].Name)

	// Cross-reference equalities.
	s.Equal(tenant.OwnerID, gymRecord.OwnerID)
	s.Equal(tenant.OwnerID, userRecord.UserID)
	s.Equal(tenant.ID, gymRecord.TenantID)
	s.Equal(tenant.ID, subs[0].TenantID)
	s.Equal(tenant.ID, userRecord.TenantID)
	s.Equal(gymRecord.ID, userRecord.GymID)

	// Credentials email targets the requester's original address.
	sent := s.notifier.Sent()
	s.Require().Len(sent, 1)
	s.Equal("owner@iron.gym", sent[0].ToEmail)
	s.Equal("Ana García López", sent[0].ToName)
	s.Equal("admin@iron.gym", sent[0].Email)
	s.Equal("secret1", sent[0].Password)
	s.Equal(resp.TenantID, sent[0].TenantID)
	s.Equal(resp.GymCode, sent[0].GymCode)
}

func (s *ApprovalServiceSuite) TestPlanMappingAndPricing() {
	cases := []struct {
		requested  types.PlanID
		tenantPlan types.PlanID
		price      decimal.Decimal
	}{
		{types.PlanBasic, types.TenantPlanBasic, decimal.NewFromFloat(29.99)},
		{types.PlanProfessional, types.TenantPlanPremium, decimal.NewFromFloat(59.99)},
		{types.PlanEnterprise, types.TenantPlanEnterprise, decimal.NewFromFloat(99.99)},
	}

	for _, tc := range cases {
		request := s.seedRequest(tc.requested)
		resp, err := s.service.ApproveGymRequest(s.GetContext(), request.ID, "reviewer-1", dto.ApproveGymRequestRequest{
			AdminEmail:    "admin+" + string(tc.requested) + "@iron.gym",
			AdminPassword: "secret1",
		})
		s.Require().NoError(err, "plan %s", tc.requested)

		tenant, err := s.GetStores().TenantRepo.Get(s.GetContext(), resp.TenantID)
		s.NoError(err)
		s.Equal(tc.tenantPlan, tenant.CurrentPlanID)

		subs, err := s.GetStores().SubscriptionRepo.ListByTenant(s.GetContext(), resp.TenantID)
		s.NoError(err)
		s.Require().Len(subs, 1)
		s.True(subs[0].PaymentAmount.Equal(tc.price), "plan %s price", tc.requested)
	}
}

func (s *ApprovalServiceSuite) TestSubscriptionEndDateIsThirtyDaysOut() {
	request := s.seedRequest(types.PlanBasic)

	before := time.Now().UTC()
	resp, err := s.service.ApproveGymRequest(s.GetContext(), request.ID, "reviewer-1", dto.ApproveGymRequestRequest{
		AdminEmail:    "admin@iron.gym",
		AdminPassword: "secret1",
	})
	s.Require().NoError(err)
	after := time.Now().UTC()

	tenant, err := s.GetStores().TenantRepo.Get(s.GetContext(), resp.TenantID)
	s.NoError(err)

	// Day-level bound: the end date falls exactly 30 days after some
	// instant between before and after.
	s.False(tenant.SubscriptionEndDate.Before(before.AddDate(0, 0, 30)))
	s.False(tenant.SubscriptionEndDate.After(after.AddDate(0, 0, 30)))
}

func (s *ApprovalServiceSuite) TestSequentialSecondApprovalStopsEarly() {
	request := s.seedRequest(types.PlanBasic)

	_, err := s.service.ApproveGymRequest(s.GetContext(), request.ID, "reviewer-1", dto.ApproveGymRequestRequest{
		AdminEmail:    "admin1@iron.gym",
		AdminPassword: "secret1",
	})
	s.Require().NoError(err)

	// The second reviewer sees the approved state and fails before any
	// provisioning happens.
	_, err = s.service.ApproveGymRequest(s.GetContext(), request.ID, "reviewer-2", dto.ApproveGymRequestRequest{
		AdminEmail:    "admin2@iron.gym",
		AdminPassword: "secret2",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
	s.Equal(1, s.auth.AccountCount())
}

func (s *ApprovalServiceSuite) TestConcurrentApprovalRace() {
	// Simulate the race: both reviewers read the request while it is still
	// pending, then run the workflow. The CAS at the final step fails one
	// of them, but both have already created identities and tenants.
	request := s.seedRequest(types.PlanBasic)

	run := func(adminEmail, password, reviewer string) error {
		now := time.Now().UTC()

		identity, err := s.auth.SignUp(s.GetContext(), auth.AuthRequest{
			Email:    adminEmail,
			Password: password,
		})
		if err != nil {
			return err
		}
		tenantID := types.GenerateTenantID()
		_, err = s.GetStores().TenantRepo.Create(s.GetContext(), &tenant.Tenant{
			ID:                  tenantID,
			CompanyName:         "Iron Gym SL",
			CompanyEmail:        "owner@iron.gym",
			OwnerID:             identity.ID,
			CurrentPlanID:       types.TenantPlanBasic,
			SubscriptionEndDate: now.AddDate(0, 0, 30),
			IsActive:            true,
			BaseModel:           types.GetDefaultBaseModel(s.GetContext()),
		})
		if err != nil {
			return err
		}
		return s.GetStores().GymRequestRepo.ApplyReviewIfPending(s.GetContext(), request.ID, gymrequest.ReviewUpdate{
			Status:         types.GymRequestStatusApproved,
			ReviewedBy:     reviewer,
			ReviewedAt:     now,
			GeneratedToken: &tenantID,
		})
	}

	err1 := run("admin1@iron.gym", "secret1", "reviewer-1")
	err2 := run("admin2@iron.gym", "secret2", "reviewer-2")

	s.NoError(err1)
	s.Error(err2)
	s.True(ierr.IsInvalidOperation(err2))

	// Both sides provisioned: two identities, two tenants. The duplication
	// is the documented gap.
	s.Equal(2, s.auth.AccountCount())
	tenants, err := s.GetStores().TenantRepo.List(s.GetContext())
	s.NoError(err)
	s.Len(tenants, 2)
}

func (s *ApprovalServiceSuite) TestApproveValidation() {
	request := s.seedRequest(types.PlanBasic)

	// Short password.
	_, err := s.service.ApproveGymRequest(s.GetContext(), request.ID, "reviewer-1", dto.ApproveGymRequestRequest{
		AdminEmail:    "admin@iron.gym",
		AdminPassword: "12345",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// Bad email.
	_, err = s.service.ApproveGymRequest(s.GetContext(), request.ID, "reviewer-1", dto.ApproveGymRequestRequest{
		AdminEmail:    "not-an-email",
		AdminPassword: "secret1",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// Missing reviewer.
	_, err = s.service.ApproveGymRequest(s.GetContext(), request.ID, "", dto.ApproveGymRequestRequest{
		AdminEmail:    "admin@iron.gym",
		AdminPassword: "secret1",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// Nothing was provisioned.
	s.Equal(0, s.auth.AccountCount())
	s.Empty(s.notifier.Sent())
}

func (s *ApprovalServiceSuite) TestApproveDuplicateEmail() {
	first := s.seedRequest(types.PlanBasic)
	_, err := s.service.ApproveGymRequest(s.GetContext(), first.ID, "reviewer-1", dto.ApproveGymRequestRequest{
		AdminEmail:    "admin@iron.gym",
		AdminPassword: "secret1",
	})
	s.Require().NoError(err)

	second := s.seedRequest(types.PlanBasic)
	_, err = s.service.ApproveGymRequest(s.GetContext(), second.ID, "reviewer-1", dto.ApproveGymRequestRequest{
		AdminEmail:    "admin@iron.gym",
		AdminPassword: "secret1",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))

	// The second request stays pending.
	pending, err := s.GetStores().GymRequestRepo.Get(s.GetContext(), second.ID)
	s.NoError(err)
	s.Equal(types.GymRequestStatusPending, pending.Status)
}

func (s *ApprovalServiceSuite) TestNotificationFailureIsNonFatal() {
	s.notifier.Err = ierr.NewError("smtp down").
		WithHint("Credentials email could not be sent").
		Mark(ierr.ErrHTTPClient)

	request := s.seedRequest(types.PlanBasic)
	resp, err := s.service.ApproveGymRequest(s.GetContext(), request.ID, "reviewer-1", dto.ApproveGymRequestRequest{
		AdminEmail:    "admin@iron.gym",
		AdminPassword: "secret1",
	})
	s.NoError(err)
	s.Require().NotNil(resp)
	s.False(resp.NotificationSent)

	updated, err := s.GetStores().GymRequestRepo.Get(s.GetContext(), request.ID)
	s.NoError(err)
	s.Equal(types.GymRequestStatusApproved, updated.Status)
}

func (s *ApprovalServiceSuite) TestRejectGymRequest() {
	request := s.seedRequest(types.PlanBasic)

	err := s.service.RejectGymRequest(s.GetContext(), request.ID, "reviewer-1", dto.RejectGymRequestRequest{
		RejectionReason: "incomplete documentation provided",
	})
	s.NoError(err)

	updated, err := s.GetStores().GymRequestRepo.Get(s.GetContext(), request.ID)
	s.NoError(err)
	s.Equal(types.GymRequestStatusRejected, updated.Status)
	s.Require().NotNil(updated.RejectionReason)
	s.Equal("incomplete documentation provided", *updated.RejectionReason)
	s.Require().NotNil(updated.ReviewedBy)
	s.Equal("reviewer-1", *updated.ReviewedBy)

	// No entities are provisioned and no email goes out.
	s.Equal(0, s.auth.AccountCount())
	s.Empty(s.notifier.Sent())
}

func (s *ApprovalServiceSuite) TestRejectReasonBounds() {
	request := s.seedRequest(types.PlanBasic)

	// 9 characters, one short of the minimum.
	err := s.service.RejectGymRequest(s.GetContext(), request.ID, "admin1", dto.RejectGymRequestRequest{
		RejectionReason: "too short",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'x'
	}
	err = s.service.RejectGymRequest(s.GetContext(), request.ID, "admin1", dto.RejectGymRequestRequest{
		RejectionReason: string(long),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// Exactly 10 characters passes.
	err = s.service.RejectGymRequest(s.GetContext(), request.ID, "admin1", dto.RejectGymRequestRequest{
		RejectionReason: "0123456789",
	})
	s.NoError(err)
}

func (s *ApprovalServiceSuite) TestRejectAlreadyReviewed() {
	request := s.seedRequest(types.PlanBasic)

	err := s.service.RejectGymRequest(s.GetContext(), request.ID, "reviewer-1", dto.RejectGymRequestRequest{
		RejectionReason: "incomplete documentation provided",
	})
	s.Require().NoError(err)

	err = s.service.RejectGymRequest(s.GetContext(), request.ID, "reviewer-2", dto.RejectGymRequestRequest{
		RejectionReason: "still incomplete documentation",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}
