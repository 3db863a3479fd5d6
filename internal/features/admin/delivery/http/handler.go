package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Ignition-ceo/RaffleFox/internal/common/errors"
	"github.com/Ignition-ceo/RaffleFox/internal/common/middleware"
	"github.com/Ignition-ceo/RaffleFox/internal/features/admin/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/admin/service"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admins := router.Group("/admins")
	{
		admins.GET("", h.List)
		admins.GET("/:uid", h.GetByUID)
		admins.PUT("/:uid", h.Create)
	}
}

// @Summary List admin accounts
// @Tags admins
// @Produce json
// @Security BearerToken
// @Success 200 {array} models.Admin
// @Router /admins [get]
func (h *AdminHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// @Summary Fetch an admin by uid
// @Tags admins
// @Produce json
// @Security BearerToken
// @Param uid path string true "Provider uid"
// @Success 200 {object} models.Admin
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admins/{uid} [get]
func (h *AdminHandler) GetByUID(c *gin.Context) {
	uid := c.Param("uid")
	admin, err := h.service.GetByUID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			middleware.Abort(c, apperrors.New(apperrors.ErrCodeAdminNotFound, "admin not found: "+uid))
			return
		}
		middleware.Abort(c, apperrors.NewStoreError("get admin", err))
		return
	}
	c.JSON(http.StatusOK, admin)
}

// @Summary Create or replace an admin account
// @Description Upserts the record keyed by the identity's uid.
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerToken
// @Param uid path string true "Provider uid"
// @Param admin body models.AdminCreate true "Admin"
// @Success 200 {object} models.Admin
// @Failure 400 {object} middleware.ErrorResponse
// @Router /admins/{uid} [put]
func (h *AdminHandler) Create(c *gin.Context) {
	var in models.AdminCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Abort(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid admin payload"))
		return
	}
	in.UID = c.Param("uid")

	admin, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		middleware.Abort(c, apperrors.NewStoreError("create admin", err))
		return
	}
	c.JSON(http.StatusOK, admin)
}
