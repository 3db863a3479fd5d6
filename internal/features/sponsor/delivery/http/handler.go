package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Ignition-ceo/RaffleFox/internal/common/errors"
	"github.com/Ignition-ceo/RaffleFox/internal/common/middleware"
	"github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/service"
)

type SponsorHandler struct {
	service service.SponsorService
}

func NewSponsorHandler(service service.SponsorService) *SponsorHandler {
	return &SponsorHandler{service: service}
}

func (h *SponsorHandler) RegisterRoutes(router *gin.RouterGroup) {
	sponsors := router.Group("/sponsors")
	{
		sponsors.GET("", h.List)
		sponsors.POST("", h.Create)
	}
}

// @Summary List sponsors
// @Tags sponsors
// @Produce json
// @Security BearerToken
// @Success 200 {array} models.Sponsor
// @Router /sponsors [get]
func (h *SponsorHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// @Summary Create a sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerToken
// @Param sponsor body models.SponsorCreate true "Sponsor"
// @Success 201 {object} models.Sponsor
// @Failure 400 {object} middleware.ErrorResponse
// @Router /sponsors [post]
func (h *SponsorHandler) Create(c *gin.Context) {
	var in models.SponsorCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Abort(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid sponsor payload"))
		return
	}

	sponsor, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		middleware.Abort(c, apperrors.NewStoreError("create sponsor", err))
		return
	}
	c.JSON(http.StatusCreated, sponsor)
}
