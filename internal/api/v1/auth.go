package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metagym/metagym-api/internal/api/dto"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("login failed", "error", err, "email", req.Email)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
