package types

import ierr "github.com/metagym/metagym-api/internal/errors"

// GymRequestStatus is the review state of a registration request.
// Transitions are pending->approved and pending->rejected only; both
// terminal states are final.
type GymRequestStatus string

const (
	GymRequestStatusPending  GymRequestStatus = "pending"
	GymRequestStatusApproved GymRequestStatus = "approved"
	GymRequestStatusRejected GymRequestStatus = "rejected"
)

func (s GymRequestStatus) String() string {
	return string(s)
}

func (s GymRequestStatus) Validate() error {
	switch s {
	case GymRequestStatusPending, GymRequestStatusApproved, GymRequestStatusRejected:
		return nil
	default:
		return ierr.NewError("invalid request status").
			WithHint("Status must be one of pending, approved, rejected").
			WithReportableDetails(map[string]interface{}{
				"status": string(s),
			}).
			Mark(ierr.ErrValidation)
	}
}

// IsTerminal reports whether the status allows no further transitions.
func (s GymRequestStatus) IsTerminal() bool {
	return s == GymRequestStatusApproved || s == GymRequestStatusRejected
}

// SubscriptionStatus is the lifecycle state of a tenant subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// PaymentStatus is computed from the payment row, never stored as the
// source of truth: a payment is overdue when it is unpaid and its period
// has already ended.
type PaymentStatus string

const (
	PaymentStatusActive  PaymentStatus = "active"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// AuthProvider identifies the identity backend.
type AuthProvider string

const (
	AuthProviderSupabase AuthProvider = "supabase"
)
