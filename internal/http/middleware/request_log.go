package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/retodia/retodia-backend/internal/platform/logger"
)

// RequestLog emits one structured line per request.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.With("middleware", "RequestLog")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		reqLog.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
