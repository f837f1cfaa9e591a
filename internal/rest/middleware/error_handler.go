package middleware

import (
	"github.com/gin-gonic/gin"

	ierr "github.com/metagym/metagym-api/internal/errors"
)

// ErrorHandler converts errors pushed via c.Error into the standard JSON
// error envelope. Handlers never write error bodies themselves.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	if c.Writer.Written() {
		return
	}

	c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
}
