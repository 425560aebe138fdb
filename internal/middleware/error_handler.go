package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ap-savings-service/internal/domain/dto"
	"github.com/guttosm/ap-savings-service/internal/i18n"
	"github.com/guttosm/ap-savings-service/internal/logger"
)

// ErrorHandler logs errors attached to the gin context and answers 500 when
// no handler wrote a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, i18n.T(i18n.ErrKeyInternalError)).WithRequestID(requestID))
		}
	}
}
