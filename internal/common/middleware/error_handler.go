package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ignition-ceo/RaffleFox/internal/common/errors"
	"github.com/Ignition-ceo/RaffleFox/internal/common/logger"
)

type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id"`
	Path      string           `json:"path,omitempty"`
}

// Recovery converts panics into a structured 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		logger.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprintf("%v", recovered)).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "Internal server error")
		Abort(c, appErr)
	})
}

// Abort writes an AppError response and stops the chain. Handlers use
// it for any error that crosses the HTTP boundary.
func Abort(c *gin.Context, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.Wrap(err, errors.ErrCodeInternal, "Internal server error")
	}
	appErr.WithRequestID(GetRequestID(c))

	if appErr.Code == errors.ErrCodeInternal || appErr.Code == errors.ErrCodeStoreError {
		logger.Error().
			Str("request_id", appErr.RequestID).
			Str("path", c.Request.URL.Path).
			Err(appErr).
			Msg("Request failed")
	}

	c.AbortWithStatusJSON(statusCode(appErr), ErrorResponse{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now(),
		RequestID: appErr.RequestID,
		Path:      c.Request.URL.Path,
	})
}

func statusCode(appErr *errors.AppError) int {
	switch appErr.Code {
	case errors.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		return http.StatusForbidden
	case errors.ErrCodeConflict:
		return http.StatusConflict
	default:
		if appErr.IsNotFound() {
			return http.StatusNotFound
		}
		return http.StatusInternalServerError
	}
}
