package middleware

import (
	"github.com/Vayom/market-place/internal/logger"
	"github.com/Vayom/market-place/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every HTTP request in structured JSON and feeds the
// request counters.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := metrics.StartTimer()

		c.Next()

		status := c.Writer.Status()
		metrics.Requests().Observe(status)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("duration", timer.Duration()),
			zap.String("remote_ip", c.ClientIP()),
		}
		if ident, ok := IdentityFrom(c); ok {
			fields = append(fields, zap.Int64("user_id", ident.UserID))
		}

		logger.FromCtx(c.Request.Context()).Info("HTTP Request", fields...)
	}
}
