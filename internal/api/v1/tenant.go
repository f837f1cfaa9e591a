package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metagym/metagym-api/internal/api/dto"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/service"
)

type TenantHandler struct {
	tenantService service.TenantService
	logger        *logger.Logger
}

func NewTenantHandler(tenantService service.TenantService, logger *logger.Logger) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		logger:        logger,
	}
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	response, err := h.tenantService.ListTenants(c.Request.Context(), activeOnly)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TenantHandler) GetTenant(c *gin.Context) {
	response, err := h.tenantService.GetTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.tenantService.UpdateTenant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TenantHandler) ToggleTenantStatus(c *gin.Context) {
	response, err := h.tenantService.ToggleTenantStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TenantHandler) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.tenantService.RecordPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.logger.Errorw("failed to record payment",
			"error", err,
			"tenant_id", c.Param("id"),
		)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TenantHandler) ListPayments(c *gin.Context) {
	response, err := h.tenantService.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
