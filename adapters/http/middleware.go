package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/devboard/pkg/apperror"
	"github.com/khoahotran/devboard/pkg/logger"
)

// ErrorMiddleware turns errors attached via c.Error into the JSON error
// response. Every failure goes out as {"error": message} with the status
// from apperror.ToHTTPStatus; the internal kind is only used for logging.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(appErr.BaseError, apperror.ErrInternal) {
			log.Error("request failed",
				err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		} else {
			log.Warn("request rejected",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}

		c.JSON(apperror.ToHTTPStatus(err), gin.H{"error": apperror.WireMessage(err)})
	}
}
