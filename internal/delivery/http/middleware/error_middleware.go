package middleware

import (
	"errors"
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors pushed onto the gin context into the
// structured JSON error body. Validation errors carry per-field messages;
// anything unrecognized is reported as a generic 500 without leaking
// internals.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code == http.StatusInternalServerError {
				logger.Log.Error("internal error", "error", appErr.Err, "path", c.Request.URL.Path)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		if validation.IsValidationError(err) {
			response.ValidationError(c, validation.FieldErrors(err))
			return
		}

		logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
