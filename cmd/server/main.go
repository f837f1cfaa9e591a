package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/metagym/metagym-api/internal/api"
	v1 "github.com/metagym/metagym-api/internal/api/v1"
	"github.com/metagym/metagym-api/internal/auth"
	"github.com/metagym/metagym-api/internal/config"
	"github.com/metagym/metagym-api/internal/domain/gym"
	"github.com/metagym/metagym-api/internal/domain/gymrequest"
	"github.com/metagym/metagym-api/internal/domain/payment"
	"github.com/metagym/metagym-api/internal/domain/plan"
	"github.com/metagym/metagym-api/internal/domain/subscription"
	"github.com/metagym/metagym-api/internal/domain/tenant"
	"github.com/metagym/metagym-api/internal/domain/user"
	"github.com/metagym/metagym-api/internal/email"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/notification"
	"github.com/metagym/metagym-api/internal/repository"
	"github.com/metagym/metagym-api/internal/repository/supabase"
	"github.com/metagym/metagym-api/internal/service"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,

			supabase.NewClient,
			repository.NewGymRequestRepository,
			repository.NewTenantRepository,
			repository.NewSubscriptionRepository,
			repository.NewGymRepository,
			repository.NewUserRepository,
			repository.NewPaymentRepository,
			repository.NewPlanRepository,

			auth.NewProvider,
			email.NewEmailClient,
			email.NewEmail,
			newNotificationSender,

			newServiceParams,
			service.NewApprovalService,
			service.NewGymRequestService,
			service.NewTenantService,
			service.NewPlanService,
			service.NewDashboardService,
			service.NewAuthService,
			service.NewNotificationService,

			v1.NewHealthHandler,
			v1.NewAuthHandler,
			v1.NewGymRequestHandler,
			v1.NewTenantHandler,
			v1.NewPlanHandler,
			v1.NewDashboardHandler,
			v1.NewNotificationHandler,

			newHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func newNotificationSender(cfg *config.Configuration, emailSvc *email.Email, log *logger.Logger) notification.Sender {
	// The external endpoint takes precedence; without one, credentials go
	// straight through the in-process email service.
	if cfg.Email.CredentialsURL != "" {
		return notification.NewHTTPSender(cfg, log)
	}
	return notification.NewEmailSender(emailSvc)
}

func newServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	provider auth.Provider,
	sender notification.Sender,
	gymRequestRepo gymrequest.Repository,
	tenantRepo tenant.Repository,
	subscriptionRepo subscription.Repository,
	gymRepo gym.Repository,
	userRepo user.Repository,
	paymentRepo payment.Repository,
	planRepo plan.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:           log,
		Config:           cfg,
		AuthProvider:     provider,
		Notifier:         sender,
		GymRequestRepo:   gymRequestRepo,
		TenantRepo:       tenantRepo,
		SubscriptionRepo: subscriptionRepo,
		GymRepo:          gymRepo,
		UserRepo:         userRepo,
		PaymentRepo:      paymentRepo,
		PlanRepo:         planRepo,
	}
}

func newHandlers(
	health *v1.HealthHandler,
	authHandler *v1.AuthHandler,
	gymRequest *v1.GymRequestHandler,
	tenant *v1.TenantHandler,
	plan *v1.PlanHandler,
	dashboard *v1.DashboardHandler,
	notificationHandler *v1.NotificationHandler,
) api.Handlers {
	return api.Handlers{
		Health:       health,
		Auth:         authHandler,
		GymRequest:   gymRequest,
		Tenant:       tenant,
		Plan:         plan,
		Dashboard:    dashboard,
		Notification: notificationHandler,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
