package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metagym/metagym-api/internal/logger"
	"github.com/metagym/metagym-api/internal/service"
)

type PlanHandler struct {
	planService service.PlanService
	logger      *logger.Logger
}

func NewPlanHandler(planService service.PlanService, logger *logger.Logger) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		logger:      logger,
	}
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	response, err := h.planService.ListPlans(c.Request.Context(), activeOnly)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
