package testutil

import (
	"context"

	"github.com/metagym/metagym-api/internal/domain/user"
	ierr "github.com/metagym/metagym-api/internal/errors"
)

// InMemoryUserStore implements user.Repository
type InMemoryUserStore struct {
	*InMemoryStore[*user.AdminUser]
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		InMemoryStore: NewInMemoryStore[*user.AdminUser](),
	}
}

func copyUser(u *user.AdminUser) *user.AdminUser {
	if u == nil {
		return nil
	}
	copied := *u
	copied.Roles = append([]user.Role(nil), u.Roles...)
	return &copied
}

func (s *InMemoryUserStore) Create(ctx context.Context, u *user.AdminUser) (*user.AdminUser, error) {
	if u == nil {
		return nil, ierr.NewError("user cannot be nil").
			WithHint("User cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	if err := s.InMemoryStore.Create(ctx, u.UserID, copyUser(u)); err != nil {
		return nil, err
	}
	return copyUser(u), nil
}

func (s *InMemoryUserStore) Get(ctx context.Context, userID string) (*user.AdminUser, error) {
	u, err := s.InMemoryStore.Get(ctx, userID)
	if err != nil {
		return nil, ierr.NewError("user not found").
			WithHint("User not found").
			WithReportableDetails(map[string]interface{}{
				"user_id": userID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyUser(u), nil
}

func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.AdminUser, error) {
	for _, u := range s.InMemoryStore.All(ctx) {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, ierr.NewError("user not found").
		WithHint("User not found").
		WithReportableDetails(map[string]interface{}{
			"email": email,
		}).
		Mark(ierr.ErrNotFound)
}
