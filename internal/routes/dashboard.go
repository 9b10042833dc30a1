package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	dashboard, err := h.DashboardService.GetDashboard(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
