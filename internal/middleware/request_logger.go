package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/logger"
)

// Context keys under which handlers publish calculator inputs for the request log.
const (
	LogFieldTargetApRate = "target_ap_rate"
	LogFieldCostPerDay   = "cost_per_day"
)

var loggedFields = []string{LogFieldTargetApRate, LogFieldCostPerDay}

// RequestLogger logs every request with zerolog at a level derived from the status
// code and, when the async logger is running, forwards an entry to the log sink.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		requestID := GetRequestID(c)

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch getLogLevel(statusCode) {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		asyncLogger := GetAsyncLogger()
		if asyncLogger == nil {
			return
		}

		entry := &model.LogEntry{
			Timestamp:  start,
			Level:      getLogLevel(statusCode),
			Message:    "HTTP request",
			RequestID:  requestID,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}
		for _, key := range loggedFields {
			if v, ok := c.Get(key); ok {
				entry.WithField(key, v)
			}
		}

		asyncLogger.Log(entry)
	}
}

func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
