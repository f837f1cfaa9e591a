package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/metagym/metagym-api/internal/types"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware attaches a request ID to the context and echoes it
// in the response headers. An incoming ID is kept so callers can trace
// across services.
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx := types.SetRequestID(c.Request.Context(), requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Writer.Header().Set(requestIDHeader, requestID)

	c.Next()
}
