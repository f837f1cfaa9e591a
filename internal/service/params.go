package service

import (
	"github.com/metagym/metagym-api/internal/auth"
	"github.com/metagym/metagym-api/internal/config"
	"github.com/metagym/metagym-api/internal/domain/gym"
	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	"github.com/metagym/metagym-api/internal/domain/payment"
	"github.com/metagym/metagym-api/internal/domain/plan"
	"github.com/metagym/metagym-api/internal/domain/subscription"
	"github.com/metagym/metagym-api/internal/domain/tenant"
	"github.com/metagym/metagym-api/internal/domain/user"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/notification"
)

// ServiceParams bundles the dependencies shared by the service layer.
// Services embed it so constructors stay one-liners and tests can swap in
// in-memory stores wholesale.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	AuthProvider auth.Provider
	Notifier     notification.Sender

	GymRequestRepo   gymrequest.Repository
	TenantRepo       tenant.Repository
	SubscriptionRepo subscription.Repository
	GymRepo          gym.Repository
	UserRepo         user.Repository
	PaymentRepo      payment.Repository
	PlanRepo         plan.Repository
}
