package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Ignition-ceo/RaffleFox/internal/common/errors"
	"github.com/Ignition-ceo/RaffleFox/internal/common/middleware"
	"github.com/Ignition-ceo/RaffleFox/internal/gate"
	"github.com/Ignition-ceo/RaffleFox/internal/session"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler exposes the session operations. Validation happens inside
// the session manager, so a malformed email never reaches the provider.
type AuthHandler struct {
	sessions *session.Manager
}

func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signin", h.SignIn)
		auth.POST("/signup", h.SignUp)
		auth.POST("/signout", h.SignOut)
	}
}

// RegisterSessionRoutes adds the routes that need a resolved session.
func (h *AuthHandler) RegisterSessionRoutes(router *gin.RouterGroup) {
	router.GET("/auth/me", h.Me)
}

func writeAuthResult(c *gin.Context, result session.AuthResult, failStatus int) {
	switch {
	case len(result.FieldErrors) > 0:
		c.JSON(http.StatusUnprocessableEntity, result)
	case !result.OK:
		c.JSON(failStatus, result)
	default:
		c.JSON(http.StatusOK, result)
	}
}

// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Email and password"
// @Success 200 {object} session.AuthResult
// @Failure 401 {object} session.AuthResult
// @Failure 422 {object} session.AuthResult
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid credentials payload"))
		return
	}
	writeAuthResult(c, h.sessions.SignIn(c.Request.Context(), req.Email, req.Password), http.StatusUnauthorized)
}

// @Summary Sign up
// @Description Creates the provider account. Administrative capability is granted separately.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Email and password"
// @Success 200 {object} session.AuthResult
// @Failure 409 {object} session.AuthResult
// @Failure 422 {object} session.AuthResult
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid credentials payload"))
		return
	}
	writeAuthResult(c, h.sessions.SignUp(c.Request.Context(), req.Email, req.Password), http.StatusConflict)
}

// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 204
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.sessions.SignOut(c.Request.Context()); err != nil {
		middleware.Abort(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "sign-out failed"))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current session
// @Tags auth
// @Produce json
// @Security BearerToken
// @Success 200 {object} session.Session
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess := gate.SessionFromContext(c)
	if sess == nil {
		middleware.Abort(c, apperrors.NewUnauthorizedError("no session"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"identity":     sess.Identity,
		"adminProfile": sess.Profile,
		"isAdmin":      sess.IsAdmin(),
	})
}
