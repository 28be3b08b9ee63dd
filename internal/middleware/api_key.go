package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "subtrack/internal/errors"
)

// APIKeyHeader carries the machine trigger key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth creates a Gin middleware that validates the X-API-Key header
// against the configured key. Failures are left on the context for
// ErrorHandler to render.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			_ = c.Error(apperrors.ErrTriggerNotConfigured)
			c.Abort()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			_ = c.Error(apperrors.ErrInvalidAPIKey)
			c.Abort()
			return
		}
		c.Next()
	}
}
