package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	response, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get dashboard stats", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DashboardHandler) GetGrowth(c *gin.Context) {
	response, err := h.dashboardService.GetGrowth(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get dashboard growth", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
