package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// GinMiddleware tags every request with an id and logs it once it completes.
func GinMiddleware() gin.HandlerFunc {

	return func(ctx *gin.Context) {

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set("request_id", requestID)
		ctx.Header(RequestIDHeader, requestID)

		start := time.Now()
		ctx.Next()
		latency := time.Since(start)

		LogRequest(
			ctx.Request.Method,
			ctx.Request.URL.Path,
			ctx.Writer.Status(),
			latency.Milliseconds(),
			ctx.ClientIP(),
			requestID,
		)

		if len(ctx.Errors) > 0 {
			GetLogger().Error("Request error",
				zap.String("request_id", requestID),
				zap.String("error", ctx.Errors.String()),
			)
		}

		if latency > 2*time.Second {
			GetLogger().Warn("Slow request detected",
				zap.String("path", ctx.Request.URL.Path),
				zap.Duration("latency", latency),
			)
		}
	}
}
