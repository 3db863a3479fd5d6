package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Ignition-ceo/RaffleFox/internal/common/errors"
	"github.com/Ignition-ceo/RaffleFox/internal/common/middleware"
	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/service"
)

type RaffleHandler struct {
	service service.RaffleService
}

func NewRaffleHandler(service service.RaffleService) *RaffleHandler {
	return &RaffleHandler{service: service}
}

func (h *RaffleHandler) RegisterRoutes(router *gin.RouterGroup) {
	raffles := router.Group("/raffles")
	{
		raffles.GET("", h.List)
		raffles.POST("", h.Create)
	}
}

// @Summary List raffles
// @Description All raffles, newest first.
// @Tags raffles
// @Produce json
// @Security BearerToken
// @Success 200 {array} models.Raffle
// @Router /raffles [get]
func (h *RaffleHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// @Summary Create a raffle
// @Description Rejects a raffle that ends before it starts.
// @Tags raffles
// @Accept json
// @Produce json
// @Security BearerToken
// @Param raffle body models.RaffleCreate true "Raffle"
// @Success 201 {object} models.Raffle
// @Failure 422 {object} middleware.ErrorResponse
// @Router /raffles [post]
func (h *RaffleHandler) Create(c *gin.Context) {
	var in models.RaffleCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Abort(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid raffle payload"))
		return
	}

	raffle, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.IsValidation() {
			middleware.Abort(c, appErr)
			return
		}
		middleware.Abort(c, apperrors.NewStoreError("create raffle", err))
		return
	}
	c.JSON(http.StatusCreated, raffle)
}
