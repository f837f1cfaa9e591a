package repository

import (
	"github.com/metagym/metagym-api/internal/domain/gym"
	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	"github.com/metagym/metagym-api/internal/domain/payment"
	"github.com/metagym/metagym-api/internal/domain/plan"
	"github.com/metagym/metagym-api/internal/domain/subscription"
	"github.com/metagym/metagym-api/internal/domain/tenant"
	"github.com/metagym/metagym-api/internal/domain/user"
	"github.com/metagym/metagym-api/internal/repository/supabase"
)

func NewGymRequestRepository(client *supabase.Client) gymrequest.Repository {
	return supabase.NewGymRequestRepository(client)
}

func NewTenantRepository(client *supabase.Client) tenant.Repository {
	return supabase.NewTenantRepository(client)
}

func NewSubscriptionRepository(client *supabase.Client) subscription.Repository {
	return supabase.NewSubscriptionRepository(client)
}

func NewGymRepository(client *supabase.Client) gym.Repository {
	return supabase.NewGymRepository(client)
}

func NewUserRepository(client *supabase.Client) user.Repository {
	return supabase.NewUserRepository(client)
}

func NewPaymentRepository(client *supabase.Client) payment.Repository {
	return supabase.NewPaymentRepository(client)
}

func NewPlanRepository(client *supabase.Client) plan.Repository {
	return supabase.NewPlanRepository(client)
}
