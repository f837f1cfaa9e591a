package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/metagym/metagym-api/internal/api/dto"
	"github.com/metagym/metagym-api/internal/domain/payment"
	"github.com/metagym/metagym-api/internal/domain/tenant"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// TenantService manages provisioned tenants: listing, edits, activation
// and subscription extension through recorded payments.
type TenantService interface {
	GetTenant(ctx context.Context, id string) (*dto.TenantResponse, error)
	ListTenants(ctx context.Context, activeOnly bool) (*dto.ListTenantsResponse, error)
	UpdateTenant(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error)
	ToggleTenantStatus(ctx context.Context, id string) (*dto.TenantResponse, error)
	RecordPayment(ctx context.Context, tenantID string, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	ListPayments(ctx context.Context, tenantID string) (*dto.ListPaymentsResponse, error)
}

type tenantService struct {
	ServiceParams
}

func NewTenantService(params ServiceParams) TenantService {
	return &tenantService{ServiceParams: params}
}

func (s *tenantService) GetTenant(ctx context.Context, id string) (*dto.TenantResponse, error) {
	if id == "" {
		return nil, ierr.NewError("tenant id is required").
			WithHint("Tenant ID is required").
			Mark(ierr.ErrValidation)
	}

	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewTenantResponse(t, time.Now().UTC()), nil
}

func (s *tenantService) ListTenants(ctx context.Context, activeOnly bool) (*dto.ListTenantsResponse, error) {
	var (
		tenants []*tenant.Tenant
		err     error
	)
	if activeOnly {
		tenants, err = s.TenantRepo.ListActive(ctx)
	} else {
		tenants, err = s.TenantRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items := lo.Map(tenants, func(t *tenant.Tenant, _ int) *dto.TenantResponse {
		return dto.NewTenantResponse(t, now)
	})
	return &dto.ListTenantsResponse{Items: items, Total: len(items)}, nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		t.CompanyName = *req.CompanyName
	}
	if req.CompanyEmail != nil {
		t.CompanyEmail = *req.CompanyEmail
	}
	if req.CompanyPhone != nil {
		t.CompanyPhone = *req.CompanyPhone
	}
	if req.CurrentPlanID != nil {
		t.CurrentPlanID = types.PlanID(*req.CurrentPlanID)
	}

	updated, err := s.TenantRepo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	return dto.NewTenantResponse(updated, time.Now().UTC()), nil
}

func (s *tenantService) ToggleTenantStatus(ctx context.Context, id string) (*dto.TenantResponse, error) {
	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.TenantRepo.SetActive(ctx, id, !t.IsActive); err != nil {
		return nil, err
	}
	t.IsActive = !t.IsActive

	s.Logger.WithContext(ctx).Infow("tenant status toggled",
		"tenant_id", id,
		"is_active", t.IsActive,
	)
	return dto.NewTenantResponse(t, time.Now().UTC()), nil
}

// RecordPayment extends the tenant's subscription by one period. The new
// end date is computed from the current end date, not from now, so a late
// payment still covers the skipped period and an early payment keeps the
// remaining buffer.
func (s *tenantService) RecordPayment(ctx context.Context, tenantID string, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TenantRepo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	subscriptions, err := s.SubscriptionRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(subscriptions) == 0 {
		return nil, ierr.NewError("tenant has no subscription").
			WithHint("Tenant has no subscription to extend").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": tenantID,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	periodStart := t.SubscriptionEndDate
	newEndDate := periodStart.AddDate(0, 0, subscriptionPeriodDays)

	p := &payment.SubscriptionPayment{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		TenantID:       tenantID,
		SubscriptionID: subscriptions[0].ID,
		Amount:         req.Amount,
		HasPaid:        true,
		PeriodStart:    periodStart,
		PeriodEnd:      newEndDate,
		PaidAt:         &now,
		Notes:          req.Notes,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	if err := p.Validate(now); err != nil {
		return nil, err
	}

	created, err := s.PaymentRepo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.TenantRepo.UpdateSubscriptionEndDate(ctx, tenantID, newEndDate); err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("subscription extended",
		"tenant_id", tenantID,
		"payment_id", created.ID,
		"new_end_date", newEndDate,
	)

	return &dto.RecordPaymentResponse{
		PaymentID:  created.ID,
		NewEndDate: newEndDate,
	}, nil
}

func (s *tenantService) ListPayments(ctx context.Context, tenantID string) (*dto.ListPaymentsResponse, error) {
	if _, err := s.TenantRepo.Get(ctx, tenantID); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items := lo.Map(payments, func(p *payment.SubscriptionPayment, _ int) *dto.PaymentResponse {
		return dto.NewPaymentResponse(p, now)
	})
	return &dto.ListPaymentsResponse{Items: items, Total: len(items)}, nil
}
