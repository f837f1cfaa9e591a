package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/metagym/metagym-api/internal/api/v1"
	"github.com/metagym/metagym-api/internal/auth"
	"github.com/metagym/metagym-api/internal/config"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/rest/middleware"
)

// Handlers bundles every v1 handler for router wiring.
type Handlers struct {
	Health       *v1.HealthHandler
	Auth         *v1.AuthHandler
	GymRequest   *v1.GymRequestHandler
	Tenant       *v1.TenantHandler
	Plan         *v1.PlanHandler
	Dashboard    *v1.DashboardHandler
	Notification *v1.NotificationHandler
}

// NewRouter builds the gin engine with the standard middleware chain.
// Everything under /v1 except login and the credentials webhook requires a
// bearer token.
func NewRouter(
	cfg *config.Configuration,
	log *logger.Logger,
	provider auth.Provider,
	handlers Handlers,
) *gin.Engine {
	if cfg.Deployment.Mode == config.ModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.ErrorHandler)

	router.GET("/health", handlers.Health.Health)

	public := router.Group("/v1")
	{
		public.POST("/auth/login", handlers.Auth.Login)
		// Consumed by the approval workflow; authenticated upstream by the
		// caller's service key, not a user token.
		public.POST("/notifications/credentials", handlers.Notification.SendCredentials)
	}

	private := router.Group("/v1")
	private.Use(middleware.AuthMiddleware(provider, log))
	{
		requests := private.Group("/requests")
		{
			requests.GET("", handlers.GymRequest.ListRequests)
			requests.GET("/stats", handlers.GymRequest.GetStats)
			requests.GET("/:id", handlers.GymRequest.GetRequest)
			requests.POST("/:id/approve", handlers.GymRequest.ApproveRequest)
			requests.POST("/:id/reject", handlers.GymRequest.RejectRequest)
		}

		tenants := private.Group("/tenants")
		{
			tenants.GET("", handlers.Tenant.ListTenants)
			tenants.GET("/:id", handlers.Tenant.GetTenant)
			tenants.PUT("/:id", handlers.Tenant.UpdateTenant)
			tenants.POST("/:id/toggle-status", handlers.Tenant.ToggleTenantStatus)
			tenants.POST("/:id/payments", handlers.Tenant.RecordPayment)
			tenants.GET("/:id/payments", handlers.Tenant.ListPayments)
		}

		private.GET("/plans", handlers.Plan.ListPlans)

		dashboard := private.Group("/dashboard")
		{
			dashboard.GET("/stats", handlers.Dashboard.GetStats)
			dashboard.GET("/growth", handlers.Dashboard.GetGrowth)
		}
	}

	return router
}
