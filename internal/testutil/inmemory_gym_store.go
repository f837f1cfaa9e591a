package testutil

import (
	"context"
	"sort"

	"github.com/metagym/metagym-api/internal/domain/gym"
	ierr "github.com/metagym/metagym-api/internal/errors"
)

// InMemoryGymStore implements gym.Repository
type InMemoryGymStore struct {
	*InMemoryStore[*gym.Gym]
}

func NewInMemoryGymStore() *InMemoryGymStore {
	return &InMemoryGymStore{
		InMemoryStore: NewInMemoryStore[*gym.Gym](),
	}
}

func copyGym(g *gym.Gym) *gym.Gym {
	if g == nil {
		return nil
	}
	copied := *g
	return &copied
}

func (s *InMemoryGymStore) Create(ctx context.Context, g *gym.Gym) (*gym.Gym, error) {
	if g == nil {
		return nil, ierr.NewError("gym cannot be nil").
			WithHint("Gym cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	if err := s.InMemoryStore.Create(ctx, g.ID, copyGym(g)); err != nil {
		return nil, err
	}
	return copyGym(g), nil
}

func (s *InMemoryGymStore) Get(ctx context.Context, id string) (*gym.Gym, error) {
	g, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("gym not found").
			WithHint("Gym not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyGym(g), nil
}

func (s *InMemoryGymStore) ListByTenant(ctx context.Context, tenantID string) ([]*gym.Gym, error) {
	gyms := s.InMemoryStore.All(ctx)
	out := make([]*gym.Gym, 0, len(gyms))
	for _, g := range gyms {
		if g.TenantID == tenantID {
			out = append(out, copyGym(g))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryGymStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	for _, g := range s.InMemoryStore.All(ctx) {
		if g.Code == code {
			return true, nil
		}
	}
	return false, nil
}
