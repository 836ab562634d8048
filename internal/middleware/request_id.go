package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-task-parser/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID assigns every request an ID, reusing the caller's when
// provided, and threads it through the request context so log lines
// can be correlated.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}
