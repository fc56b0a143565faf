package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"nitronflow/internal/logger"
	"nitronflow/internal/uuid"
)

const requestIDKey = "requestID"

// RequestLogging tags every request with an X-Request-ID and logs method,
// path, status, latency, and client IP through the shared Zap logger.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.New()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		logger.Named("http").Infow("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// RequestID returns the request ID set by RequestLogging, or "" when the
// middleware is not installed.
func RequestID(c *gin.Context) string {
	id, _ := c.Get(requestIDKey)
	s, _ := id.(string)
	return s
}
