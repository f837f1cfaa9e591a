package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/metagym/metagym-api/internal/auth"
	domainauth "github.com/metagym/metagym-api/internal/domain/auth"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/types"
)

// FakeAuthProvider implements auth.Provider against an in-memory account
// map, with the same error classification as the real provider.
type FakeAuthProvider struct {
	mu       sync.Mutex
	accounts map[string]fakeAccount
	tenants  map[string]string
	seq      int

	// SignUpErr, when set, is returned by every SignUp call.
	SignUpErr error
}

type fakeAccount struct {
	id       string
	password string
}

func NewFakeAuthProvider() *FakeAuthProvider {
	return &FakeAuthProvider{
		accounts: make(map[string]fakeAccount),
		tenants:  make(map[string]string),
	}
}

func (p *FakeAuthProvider) GetProvider() types.AuthProvider {
	return types.AuthProviderSupabase
}

func (p *FakeAuthProvider) SignUp(_ context.Context, req auth.AuthRequest) (*auth.AuthResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.SignUpErr != nil {
		return nil, p.SignUpErr
	}
	if req.Email == "" {
		return nil, ierr.NewError("email is required").
			WithHint("Email is required").
			Mark(ierr.ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, ierr.NewError("password must be at least 6 characters").
			WithHint("Password must be at least 6 characters").
			Mark(ierr.ErrValidation)
	}
	if _, exists := p.accounts[req.Email]; exists {
		return nil, ierr.NewError("email already registered").
			WithHint("This email is already registered").
			Mark(ierr.ErrAlreadyExists)
	}

	p.seq++
	id := fmt.Sprintf("identity-%d", p.seq)
	p.accounts[req.Email] = fakeAccount{id: id, password: req.Password}
	return &auth.AuthResponse{ID: id}, nil
}

func (p *FakeAuthProvider) Login(_ context.Context, req auth.AuthRequest) (*auth.AuthResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, exists := p.accounts[req.Email]
	if !exists || account.password != req.Password {
		return nil, ierr.NewError("invalid credentials").
			WithHint("Invalid email or password").
			Mark(ierr.ErrPermissionDenied)
	}
	return &auth.AuthResponse{
		ID:        account.id,
		AuthToken: "token-" + account.id,
	}, nil
}

func (p *FakeAuthProvider) ValidateToken(_ context.Context, token string) (*domainauth.Claims, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for email, account := range p.accounts {
		if token == "token-"+account.id {
			return &domainauth.Claims{
				UserID:   account.id,
				Email:    email,
				TenantID: p.tenants[account.id],
			}, nil
		}
	}
	return nil, ierr.NewError("invalid token").
		WithHint("Invalid or expired token").
		Mark(ierr.ErrPermissionDenied)
}

func (p *FakeAuthProvider) AssignUserToTenant(_ context.Context, userID, tenantID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tenants[userID] = tenantID
	return nil
}

// AccountCount returns how many identities have been created.
func (p *FakeAuthProvider) AccountCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.accounts)
}
