package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ignition-ceo/RaffleFox/internal/features/gamer/service"
)

type GamerHandler struct {
	service service.GamerService
}

func NewGamerHandler(service service.GamerService) *GamerHandler {
	return &GamerHandler{service: service}
}

func (h *GamerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/gamers", h.List)
}

// @Summary List gamer accounts
// @Description All player accounts, most recently registered first.
// @Tags gamers
// @Produce json
// @Security BearerToken
// @Success 200 {array} models.Gamer
// @Router /gamers [get]
func (h *GamerHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}
