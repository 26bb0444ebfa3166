package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/pkg/apperror"
)

// ErrorHandler translates errors pushed onto the gin context into the
// response envelope. AppError codes and messages pass through; anything else
// is logged and replaced with a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				slog.Error("request failed",
					"path", c.FullPath(),
					"code", appErr.Code,
					"error", appErr.Unwrap(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		slog.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
