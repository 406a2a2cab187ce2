package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/user-task-api/internal/constants"
)

// GetRequestID returns the request ID or an empty string when unavailable
func GetRequestID(c *gin.Context) string {
	value, ok := c.Get(constants.ContextKeyRequestID)
	if !ok {
		return ""
	}
	requestID, ok := value.(string)
	if !ok {
		return ""
	}
	return requestID
}

// RequestID propagates or generates an X-Request-ID for every request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := incomingRequestID(c.GetHeader(constants.HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Writer.Header().Set(constants.HeaderRequestID, requestID)
		c.Next()
	}
}

// RequestLogger writes one structured log line per request
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startedAt := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}

		attrs := []any{
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", float64(time.Since(startedAt).Microseconds()) / 1000.0,
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		logger.Log(c.Request.Context(), level, "request completed", attrs...)
	}
}

// incomingRequestID accepts a caller-supplied id up to MaxRequestIDLength
// bytes. Anything longer is dropped so a fresh id gets generated.
func incomingRequestID(header string) string {
	id := strings.TrimSpace(header)
	if len(id) > constants.MaxRequestIDLength {
		return ""
	}
	return id
}
