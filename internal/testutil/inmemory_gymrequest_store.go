package testutil

import (
	"context"
	"sort"

	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// InMemoryGymRequestStore implements gymrequest.Repository
type InMemoryGymRequestStore struct {
	*InMemoryStore[*gymrequest.GymRequest]
}

func NewInMemoryGymRequestStore() *InMemoryGymRequestStore {
	return &InMemoryGymRequestStore{
		InMemoryStore: NewInMemoryStore[*gymrequest.GymRequest](),
	}
}

func copyGymRequest(r *gymrequest.GymRequest) *gymrequest.GymRequest {
	if r == nil {
		return nil
	}
	copied := *r
	return &copied
}

func (s *InMemoryGymRequestStore) Create(ctx context.Context, req *gymrequest.GymRequest) (*gymrequest.GymRequest, error) {
	if req == nil {
		return nil, ierr.NewError("request cannot be nil").
			WithHint("Request cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.InMemoryStore.Create(ctx, req.ID, copyGymRequest(req)); err != nil {
		return nil, err
	}
	return copyGymRequest(req), nil
}

func (s *InMemoryGymRequestStore) Get(ctx context.Context, id string) (*gymrequest.GymRequest, error) {
	req, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("registration request not found").
			WithHint("Registration request not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyGymRequest(req), nil
}

func (s *InMemoryGymRequestStore) List(ctx context.Context) ([]*gymrequest.GymRequest, error) {
	requests := s.InMemoryStore.All(ctx)
	out := make([]*gymrequest.GymRequest, 0, len(requests))
	for _, r := range requests {
		out = append(out, copyGymRequest(r))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryGymRequestStore) ListByStatus(ctx context.Context, status types.GymRequestStatus) ([]*gymrequest.GymRequest, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*gymrequest.GymRequest, 0, len(all))
	for _, r := range all {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *InMemoryGymRequestStore) CountByStatus(ctx context.Context) (map[types.GymRequestStatus]int, error) {
	counts := map[types.GymRequestStatus]int{
		types.GymRequestStatusPending:  0,
		types.GymRequestStatusApproved: 0,
		types.GymRequestStatusRejected: 0,
	}
	for _, r := range s.InMemoryStore.All(ctx) {
		counts[r.Status]++
	}
	return counts, nil
}

func (s *InMemoryGymRequestStore) ApplyReviewIfPending(_ context.Context, id string, update gymrequest.ReviewUpdate) error {
	return s.InMemoryStore.WithLock(func(items map[string]*gymrequest.GymRequest) error {
		req, exists := items[id]
		if !exists {
			return ierr.NewError("registration request not found").
				WithHint("Registration request not found").
				WithReportableDetails(map[string]interface{}{
					"id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		if req.Status != types.GymRequestStatusPending {
			return ierr.NewError("request is no longer pending").
				WithHint("This request was already reviewed").
				WithReportableDetails(map[string]interface{}{
					"id": id,
				}).
				Mark(ierr.ErrInvalidOperation)
		}

		updated := copyGymRequest(req)
		updated.Status = update.Status
		updated.ReviewedBy = &update.ReviewedBy
		updated.ReviewedAt = &update.ReviewedAt
		updated.RejectionReason = update.RejectionReason
		updated.GeneratedToken = update.GeneratedToken
		updated.UpdatedAt = update.ReviewedAt
		items[id] = updated
		return nil
	})
}
