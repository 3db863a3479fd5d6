package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Ignition-ceo/RaffleFox/internal/common/errors"
	"github.com/Ignition-ceo/RaffleFox/internal/common/middleware"
	"github.com/Ignition-ceo/RaffleFox/internal/features/dashboard/service"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Stats)
		dashboard.GET("/low-stock", h.LowStock)
	}
}

// @Summary Dashboard KPIs
// @Description The four KPIs are fetched concurrently; one failed read fails the whole batch, no partial stats.
// @Tags dashboard
// @Produce json
// @Security BearerToken
// @Success 200 {object} models.Stats
// @Failure 500 {object} middleware.ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		middleware.Abort(c, apperrors.NewStoreError("dashboard stats", err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Low-stock watch list
// @Description Prizes at or below the watch threshold, lowest stock first, capped at six.
// @Tags dashboard
// @Produce json
// @Security BearerToken
// @Success 200 {array} models.Prize
// @Failure 500 {object} middleware.ErrorResponse
// @Router /dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *gin.Context) {
	prizes, err := h.service.LowStockWatch(c.Request.Context())
	if err != nil {
		middleware.Abort(c, apperrors.NewStoreError("low-stock watch list", err))
		return
	}
	c.JSON(http.StatusOK, prizes)
}
