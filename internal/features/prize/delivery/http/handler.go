package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Ignition-ceo/RaffleFox/internal/common/errors"
	"github.com/Ignition-ceo/RaffleFox/internal/common/middleware"
	"github.com/Ignition-ceo/RaffleFox/internal/features/prize/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/prize/service"
)

type PrizeHandler struct {
	service service.PrizeService
}

func NewPrizeHandler(service service.PrizeService) *PrizeHandler {
	return &PrizeHandler{service: service}
}

func (h *PrizeHandler) RegisterRoutes(router *gin.RouterGroup) {
	prizes := router.Group("/prizes")
	{
		prizes.GET("", h.List)
		prizes.POST("", h.Create)
		prizes.PATCH("/:id", h.Update)
		prizes.DELETE("/:id", h.Delete)
	}
}

// @Summary List prizes
// @Description All prizes, newest first. A failed read degrades to an empty list.
// @Tags prizes
// @Produce json
// @Security BearerToken
// @Success 200 {array} models.Prize
// @Router /prizes [get]
func (h *PrizeHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// @Summary Create a prize
// @Tags prizes
// @Accept json
// @Produce json
// @Security BearerToken
// @Param prize body models.PrizeCreate true "Prize"
// @Success 201 {object} models.Prize
// @Failure 400 {object} middleware.ErrorResponse
// @Router /prizes [post]
func (h *PrizeHandler) Create(c *gin.Context) {
	var in models.PrizeCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Abort(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid prize payload"))
		return
	}

	prize, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		middleware.Abort(c, apperrors.NewStoreError("create prize", err))
		return
	}
	c.JSON(http.StatusCreated, prize)
}

// @Summary Update a prize
// @Description Merges only the supplied fields and restamps updatedAt.
// @Tags prizes
// @Accept json
// @Produce json
// @Security BearerToken
// @Param id path string true "Prize ID"
// @Param prize body models.PrizeUpdate true "Fields to merge"
// @Success 200 {object} models.Prize
// @Failure 404 {object} middleware.ErrorResponse
// @Router /prizes/{id} [patch]
func (h *PrizeHandler) Update(c *gin.Context) {
	var in models.PrizeUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Abort(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid prize payload"))
		return
	}

	id := c.Param("id")
	prize, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, service.ErrPrizeNotFound) {
			middleware.Abort(c, apperrors.New(apperrors.ErrCodePrizeNotFound, "prize not found: "+id))
			return
		}
		middleware.Abort(c, apperrors.NewStoreError("update prize", err))
		return
	}
	c.JSON(http.StatusOK, prize)
}

// @Summary Delete a prize
// @Tags prizes
// @Produce json
// @Security BearerToken
// @Param id path string true "Prize ID"
// @Success 204
// @Router /prizes/{id} [delete]
func (h *PrizeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Abort(c, apperrors.NewStoreError("delete prize", err))
		return
	}
	c.Status(http.StatusNoContent)
}
