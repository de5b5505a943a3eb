package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

// ErrorHandler renders errors pushed with c.Error into JSON responses using
// the apperror taxonomy. Must be registered before the routes.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if status >= 500 {
				log.Error("Request failed", appErr)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		if status >= 500 {
			log.Error("Request failed", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
	}
}
