package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metagym/metagym-api/internal/api/dto"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *logger.Logger
}

func NewNotificationHandler(notificationService service.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// SendCredentials delivers the access credentials email. The request and
// response bodies keep the camelCase shape existing callers rely on.
func (h *NotificationHandler) SendCredentials(c *gin.Context) {
	var req dto.SendCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Missing required fields").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.notificationService.SendCredentials(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to send credentials email",
			"error", err,
			"to_email", req.ToEmail,
		)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
