package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/metagym/metagym-api/internal/api/dto"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/service"
	"github.com/metagym/metagym-api/internal/types"
)

type GymRequestHandler struct {
	requestService  service.GymRequestService
	approvalService service.ApprovalService
	logger          *logger.Logger
}

func NewGymRequestHandler(
	requestService service.GymRequestService,
	approvalService service.ApprovalService,
	logger *logger.Logger,
) *GymRequestHandler {
	return &GymRequestHandler{
		requestService:  requestService,
		approvalService: approvalService,
		logger:          logger,
	}
}

func (h *GymRequestHandler) ListRequests(c *gin.Context) {
	var status *types.GymRequestStatus
	if raw := c.Query("status"); raw != "" {
		status = lo.ToPtr(types.GymRequestStatus(raw))
	}

	response, err := h.requestService.ListRequests(c.Request.Context(), status)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *GymRequestHandler) GetStats(c *gin.Context) {
	response, err := h.requestService.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *GymRequestHandler) GetRequest(c *gin.Context) {
	response, err := h.requestService.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ApproveRequest runs the provisioning workflow. The reviewer is the
// authenticated caller, resolved from the request context and passed into
// the orchestrator explicitly.
func (h *GymRequestHandler) ApproveRequest(c *gin.Context) {
	var req dto.ApproveGymRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	reviewerID := types.GetUserID(c.Request.Context())
	response, err := h.approvalService.ApproveGymRequest(c.Request.Context(), c.Param("id"), reviewerID, req)
	if err != nil {
		h.logger.Errorw("approval failed",
			"error", err,
			"request_id", c.Param("id"),
			"reviewer_id", reviewerID,
		)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *GymRequestHandler) RejectRequest(c *gin.Context) {
	var req dto.RejectGymRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	reviewerID := types.GetUserID(c.Request.Context())
	if err := h.approvalService.RejectGymRequest(c.Request.Context(), c.Param("id"), reviewerID, req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
