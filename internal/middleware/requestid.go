package middleware

import (
	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request id generation
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID" // gin context key

// RequestID tags every request with an id, reusing a well-formed incoming one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader) // Client supplied id, if any
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString() // Missing or malformed, mint a new one
		}
		c.Set(requestIDKey, id)       // Store for handlers and loggers
		c.Header(RequestIDHeader, id) // Echo back to the client
		c.Next()                      // Proceed to the next handler
	}
}

// Log returns a logrus entry bound to the request id
func Log(c *gin.Context) *logrus.Entry {
	return logrus.WithField("request_id", c.GetString(requestIDKey))
}
