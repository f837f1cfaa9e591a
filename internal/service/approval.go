package service

import (
	"context"
	"time"

	"github.com/metagym/metagym-api/internal/api/dto"
	authProvider "github.com/metagym/metagym-api/internal/auth"
	"github.com/metagym/metagym-api/internal/domain/gym"
	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	"github.com/metagym/metagym-api/internal/domain/subscription"
	"github.com/metagym/metagym-api/internal/domain/tenant"
	"github.com/metagym/metagym-api/internal/domain/user"
	"github.com/metagym/metagym-api/internal/email"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// subscriptionPeriodDays is the length of one billing period.
const subscriptionPeriodDays = 30

// codeGenerationAttempts bounds the uniqueness retry loop for tenant IDs
// and gym codes.
const codeGenerationAttempts = 5

// ApprovalService runs the registration review workflow: approving a
// request provisions the identity, tenant, subscription, gym and admin
// user in order, then closes the request and emails credentials.
type ApprovalService interface {
	ApproveGymRequest(ctx context.Context, requestID, reviewerID string, req dto.ApproveGymRequestRequest) (*dto.ApproveGymRequestResponse, error)
	RejectGymRequest(ctx context.Context, requestID, reviewerID string, req dto.RejectGymRequestRequest) error
}

type approvalService struct {
	ServiceParams
}

func NewApprovalService(params ServiceParams) ApprovalService {
	return &approvalService{ServiceParams: params}
}

// ApproveGymRequest executes the provisioning sequence strictly in order.
// Steps are not transactional: a failure partway leaves the earlier
// records in place (there is no compensating delete), and the error
// reports how far the sequence got.
func (s *approvalService) ApproveGymRequest(ctx context.Context, requestID, reviewerID string, req dto.ApproveGymRequestRequest) (*dto.ApproveGymRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if reviewerID == "" {
		return nil, ierr.NewError("reviewer id is required").
			WithHint("Reviewer ID is required").
			Mark(ierr.ErrValidation)
	}

	request, err := s.GymRequestRepo.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.IsPending() {
		return nil, ierr.NewError("request is not pending").
			WithHint("This request was already reviewed").
			WithReportableDetails(map[string]interface{}{
				"request_id": requestID,
				"status":     request.Status,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()

	// Step 1: identity.
	identity, err := s.AuthProvider.SignUp(ctx, authProvider.AuthRequest{
		Email:    req.AdminEmail,
		Password: req.AdminPassword,
	})
	if err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("identity created for approval",
		"request_id", requestID,
		"identity_id", identity.ID,
	)

	// Step 2: tenant.
	tenantID, err := s.generateTenantID(ctx)
	if err != nil {
		return nil, err
	}
	endDate := now.AddDate(0, 0, subscriptionPeriodDays)
	tenantPlan := types.MapRequestPlanToTenantPlan(request.RequestedPlan)

	newTenant, err := s.TenantRepo.Create(ctx, &tenant.Tenant{
		ID:                  tenantID,
		CompanyName:         request.CompanyName,
		CompanyEmail:        request.Email,
		CompanyPhone:        request.AdminPhone,
		OwnerID:             identity.ID,
		CurrentPlanID:       tenantPlan,
		SubscriptionEndDate: endDate,
		IsActive:            true,
		BaseModel:           types.GetDefaultBaseModel(ctx),
	})
	if err != nil {
		return nil, err
	}

	// Step 3: subscription.
	newSubscription, err := s.SubscriptionRepo.Create(ctx, &subscription.Subscription{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		TenantID:      newTenant.ID,
		PlanID:        tenantPlan,
		Status:        types.SubscriptionStatusActive,
		StartDate:     now,
		EndDate:       endDate,
		PaymentDate:   now,
		PaymentAmount: types.GetPlanPrice(request.RequestedPlan),
		AutoRenew:     true,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	})
	if err != nil {
		return nil, err
	}

	// Step 4: gym. The gym's contact email is the new administrator
	// account, not the requester's original address.
	gymCode, err := s.generateGymCode(ctx)
	if err != nil {
		return nil, err
	}
	newGym, err := s.GymRepo.Create(ctx, &gym.Gym{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_GYM),
		TenantID:  newTenant.ID,
		OwnerID:   identity.ID,
		Code:      gymCode,
		Name:      request.GymName,
		Email:     req.AdminEmail,
		Phone:     request.GymPhone,
		Address:   request.GymAddress,
		City:      "N/A",
		Country:   "N/A",
		IsActive:  true,
		BaseModel: types.GetDefaultBaseModel(ctx),
	})
	if err != nil {
		return nil, err
	}

	// Step 5: admin user profile.
	newUser, err := s.UserRepo.Create(ctx, &user.AdminUser{
		UserID:    identity.ID,
		Email:     req.AdminEmail,
		Name:      request.AdminName,
		Surname1:  request.AdminSurname1,
		Surname2:  request.AdminSurname2,
		Phone:     request.AdminPhone,
		Roles:     []user.Role{user.RoleOwner},
		GymID:     newGym.ID,
		TenantID:  newTenant.ID,
		BaseModel: types.GetDefaultBaseModel(ctx),
	})
	if err != nil {
		return nil, err
	}

	if err := s.AuthProvider.AssignUserToTenant(ctx, identity.ID, newTenant.ID); err != nil {
		return nil, err
	}

	// Step 6: close the request. The conditional write is the only guard
	// against two reviewers approving concurrently; losing the race here
	// still leaves the records created above in place.
	if err := s.GymRequestRepo.ApplyReviewIfPending(ctx, requestID, gymrequest.ReviewUpdate{
		Status:         types.GymRequestStatusApproved,
		ReviewedBy:     reviewerID,
		ReviewedAt:     now,
		GeneratedToken: &newTenant.ID,
	}); err != nil {
		return nil, err
	}

	// Step 7: credentials email. Delivery failure does not undo the
	// approval; the records already exist.
	notificationSent := true
	if err := s.Notifier.SendCredentials(ctx, email.CredentialsEmailRequest{
		ToEmail:  request.Email,
		ToName:   request.AdminFullName(),
		GymName:  request.GymName,
		Email:    req.AdminEmail,
		Password: req.AdminPassword,
		TenantID: newTenant.ID,
		GymCode:  gymCode,
	}); err != nil {
		notificationSent = false
		s.Logger.WithContext(ctx).Errorw("failed to send credentials email",
			"error", err,
			"request_id", requestID,
			"tenant_id", newTenant.ID,
		)
	}

	s.Logger.WithContext(ctx).Infow("gym request approved",
		"request_id", requestID,
		"tenant_id", newTenant.ID,
		"gym_id", newGym.ID,
		"subscription_id", newSubscription.ID,
		"user_id", newUser.UserID,
		"reviewed_by", reviewerID,
	)

	return &dto.ApproveGymRequestResponse{
		TenantID:         newTenant.ID,
		GymID:            newGym.ID,
		GymCode:          gymCode,
		UserID:           newUser.UserID,
		NotificationSent: notificationSent,
	}, nil
}

// RejectGymRequest closes a pending request with a reason. No entities
// are provisioned and no email is sent.
func (s *approvalService) RejectGymRequest(ctx context.Context, requestID, reviewerID string, req dto.RejectGymRequestRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if reviewerID == "" {
		return ierr.NewError("reviewer id is required").
			WithHint("Reviewer ID is required").
			Mark(ierr.ErrValidation)
	}

	err := s.GymRequestRepo.ApplyReviewIfPending(ctx, requestID, gymrequest.ReviewUpdate{
		Status:          types.GymRequestStatusRejected,
		ReviewedBy:      reviewerID,
		ReviewedAt:      time.Now().UTC(),
		RejectionReason: &req.RejectionReason,
	})
	if err != nil {
		return err
	}

	s.Logger.WithContext(ctx).Infow("gym request rejected",
		"request_id", requestID,
		"reviewed_by", reviewerID,
	)
	return nil
}

// generateTenantID draws random IDs until one is unused. Collisions are
// vanishingly rare at 36^8 but cheap to rule out.
func (s *approvalService) generateTenantID(ctx context.Context) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		id := types.GenerateTenantID()
		exists, err := s.TenantRepo.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", ierr.NewError("could not generate a unique tenant id").
		WithHint("Failed to allocate a tenant ID").
		Mark(ierr.ErrSystem)
}

func (s *approvalService) generateGymCode(ctx context.Context) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code := types.GenerateGymCode()
		exists, err := s.GymRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ierr.NewError("could not generate a unique gym code").
		WithHint("Failed to allocate a gym code").
		Mark(ierr.ErrSystem)
}
