package testutil

import (
	"context"
	"sort"

	"github.com/metagym/metagym-api/internal/domain/plan"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// InMemoryPlanStore implements plan.Repository
type InMemoryPlanStore struct {
	*InMemoryStore[*plan.SaasPlan]
}

func NewInMemoryPlanStore() *InMemoryPlanStore {
	return &InMemoryPlanStore{
		InMemoryStore: NewInMemoryStore[*plan.SaasPlan](),
	}
}

func copyPlan(p *plan.SaasPlan) *plan.SaasPlan {
	if p == nil {
		return nil
	}
	copied := *p
	copied.Features = append([]string(nil), p.Features...)
	return &copied
}

// Seed inserts a plan directly; the catalog is read-only in production.
func (s *InMemoryPlanStore) Seed(ctx context.Context, p *plan.SaasPlan) error {
	return s.InMemoryStore.Create(ctx, p.ID.String(), copyPlan(p))
}

func (s *InMemoryPlanStore) Get(ctx context.Context, id types.PlanID) (*plan.SaasPlan, error) {
	p, err := s.InMemoryStore.Get(ctx, id.String())
	if err != nil {
		return nil, ierr.NewError("plan not found").
			WithHint("Plan not found").
			WithReportableDetails(map[string]interface{}{
				"plan_id": id.String(),
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPlan(p), nil
}

func (s *InMemoryPlanStore) List(ctx context.Context) ([]*plan.SaasPlan, error) {
	plans := s.InMemoryStore.All(ctx)
	out := make([]*plan.SaasPlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, copyPlan(p))
	}
	sortPlansByPrice(out)
	return out, nil
}

func (s *InMemoryPlanStore) ListActive(ctx context.Context) ([]*plan.SaasPlan, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*plan.SaasPlan, 0, len(all))
	for _, p := range all {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func sortPlansByPrice(plans []*plan.SaasPlan) {
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Price.LessThan(plans[j].Price)
	})
}
