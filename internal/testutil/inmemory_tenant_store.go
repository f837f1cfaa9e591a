package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/metagym/metagym-api/internal/domain/tenant"
	ierr "github.com/metagym/metagym-api/internal/errors"
)

// InMemoryTenantStore implements tenant.Repository
type InMemoryTenantStore struct {
	*InMemoryStore[*tenant.Tenant]
}

func NewInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		InMemoryStore: NewInMemoryStore[*tenant.Tenant](),
	}
}

func copyTenant(t *tenant.Tenant) *tenant.Tenant {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}

func (s *InMemoryTenantStore) Create(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	if t == nil {
		return nil, ierr.NewError("tenant cannot be nil").
			WithHint("Tenant cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.InMemoryStore.Create(ctx, t.ID, copyTenant(t)); err != nil {
		return nil, err
	}
	return copyTenant(t), nil
}

func (s *InMemoryTenantStore) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("tenant not found").
			WithHint("Tenant not found").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyTenant(t), nil
}

func (s *InMemoryTenantStore) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *InMemoryTenantStore) List(ctx context.Context) ([]*tenant.Tenant, error) {
	tenants := s.InMemoryStore.All(ctx)
	out := make([]*tenant.Tenant, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, copyTenant(t))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryTenantStore) ListActive(ctx context.Context) ([]*tenant.Tenant, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*tenant.Tenant, 0, len(all))
	for _, t := range all {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *InMemoryTenantStore) Update(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	if t == nil {
		return nil, ierr.NewError("tenant cannot be nil").
			WithHint("Tenant cannot be nil").
			Mark(ierr.ErrValidation)
	}
	t.UpdatedAt = time.Now().UTC()
	if err := s.InMemoryStore.Update(ctx, t.ID, copyTenant(t)); err != nil {
		return nil, err
	}
	return copyTenant(t), nil
}

func (s *InMemoryTenantStore) UpdateSubscriptionEndDate(ctx context.Context, id string, endDate time.Time) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	t.SubscriptionEndDate = endDate
	t.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, id, t)
}

func (s *InMemoryTenantStore) SetActive(ctx context.Context, id string, active bool) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	t.IsActive = active
	t.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, id, t)
}
