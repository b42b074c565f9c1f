package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vickyalvandob/task/internal/adapter/http/mapper"
	"github.com/vickyalvandob/task/internal/adapter/http/middleware"
	"github.com/vickyalvandob/task/internal/core/ports"
	"github.com/vickyalvandob/task/pkg/apierrors"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailDashboard, apierrors.MsgFailDashboard, apierrors.MsgFailDashboard, "failed to compute dashboard")
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardResponse(stats))
}
