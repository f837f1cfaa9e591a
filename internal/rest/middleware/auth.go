package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/metagym/metagym-api/internal/auth"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/types"
)

// AuthMiddleware validates the bearer token and attaches the caller's
// identity to the request context.
func AuthMiddleware(provider auth.Provider, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(401, ierr.NewErrorResponse(
				ierr.NewError("missing or malformed authorization header").
					WithHint("Provide a bearer token").
					Mark(ierr.ErrPermissionDenied)))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := provider.ValidateToken(c.Request.Context(), token)
		if err != nil {
			log.Debugw("token validation failed", "error", err)
			c.AbortWithStatusJSON(401, ierr.NewErrorResponse(
				ierr.NewError("invalid or expired token").
					WithHint("Sign in again").
					Mark(ierr.ErrPermissionDenied)))
			return
		}

		ctx := c.Request.Context()
		ctx = types.SetUserID(ctx, claims.UserID)
		ctx = types.SetUserEmail(ctx, claims.Email)
		if claims.TenantID != "" {
			ctx = types.SetTenantID(ctx, claims.TenantID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
