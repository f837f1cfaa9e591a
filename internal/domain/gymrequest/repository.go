package gymrequest

import (
	"context"
	"time"

	"github.com/metagym/metagym-api/internal/types"
)

// ReviewUpdate is the field set written when a request leaves the pending
// state. GeneratedToken carries the tenant ID on approval; RejectionReason
// is set on rejection.
type ReviewUpdate struct {
	Status          types.GymRequestStatus
	ReviewedBy      string
	ReviewedAt      time.Time
	RejectionReason *string
	GeneratedToken  *string
}

// Repository defines persistence for gym registration requests.
type Repository interface {
	// Create persists a new request.
	Create(ctx context.Context, req *GymRequest) (*GymRequest, error)

	// Get fetches a request by ID.
	Get(ctx context.Context, id string) (*GymRequest, error)

	// List returns all requests, newest first.
	List(ctx context.Context) ([]*GymRequest, error)

	// ListByStatus returns requests with the given status, newest first.
	ListByStatus(ctx context.Context, status types.GymRequestStatus) ([]*GymRequest, error)

	// CountByStatus returns the number of requests per status.
	CountByStatus(ctx context.Context) (map[types.GymRequestStatus]int, error)

	// ApplyReviewIfPending writes the review outcome only if the request is
	// still pending. It fails with ErrInvalidOperation when another reviewer
	// already closed the request, which is the guard against two concurrent
	// approvals of the same request.
	ApplyReviewIfPending(ctx context.Context, id string, update ReviewUpdate) error
}
