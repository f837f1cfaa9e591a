package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/metagym/metagym-api/internal/domain/payment"
	ierr "github.com/metagym/metagym-api/internal/errors"
)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.SubscriptionPayment]
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.SubscriptionPayment](),
	}
}

func copyPayment(p *payment.SubscriptionPayment) *payment.SubscriptionPayment {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.SubscriptionPayment) (*payment.SubscriptionPayment, error) {
	if p == nil {
		return nil, ierr.NewError("payment cannot be nil").
			WithHint("Payment cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, p.ID, copyPayment(p)); err != nil {
		return nil, err
	}
	return copyPayment(p), nil
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.SubscriptionPayment, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("payment not found").
			WithHint("Payment not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPayment(p), nil
}

func (s *InMemoryPaymentStore) ListByTenant(ctx context.Context, tenantID string) ([]*payment.SubscriptionPayment, error) {
	payments := s.InMemoryStore.All(ctx)
	out := make([]*payment.SubscriptionPayment, 0, len(payments))
	for _, p := range payments {
		if p.TenantID == tenantID {
			out = append(out, copyPayment(p))
		}
	}
	sortPaymentsByPaidAt(out)
	return out, nil
}

func (s *InMemoryPaymentStore) List(ctx context.Context) ([]*payment.SubscriptionPayment, error) {
	payments := s.InMemoryStore.All(ctx)
	out := make([]*payment.SubscriptionPayment, 0, len(payments))
	for _, p := range payments {
		out = append(out, copyPayment(p))
	}
	sortPaymentsByPaidAt(out)
	return out, nil
}

func sortPaymentsByPaidAt(payments []*payment.SubscriptionPayment) {
	key := func(p *payment.SubscriptionPayment) time.Time {
		if p.PaidAt != nil {
			return *p.PaidAt
		}
		return p.PeriodStart
	}
	sort.Slice(payments, func(i, j int) bool {
		return key(payments[i]).After(key(payments[j]))
	})
}
