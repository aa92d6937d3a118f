package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pedidoflow/backend/internal/infrastructure/logger"
)

// RequestIDKey is the gin context key and response header carrying the
// request identifier
const RequestIDKey = "request_id"

// RequestIDHeader is the wire header for request IDs
const RequestIDHeader = "X-Request-ID"

// RequestID returns a middleware that accepts an inbound X-Request-ID
// or generates one, stores it in both the gin and request contexts and
// echoes it back on the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		ctx, _ := logger.WithRequestID(c.Request.Context(), logger.FromContext(c.Request.Context()), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context, falling
// back to the inbound header
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(RequestIDHeader)
}
