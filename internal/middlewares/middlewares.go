// Package middlewares holds the cross-cutting HTTP middlewares.
package middlewares

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const correlationHeader = "X-Correlation-Id"

// CORSMiddleware allows cross-origin requests from the frontend.
func CORSMiddleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Correlation-Id, X-Completion-Id")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// CorrelationID reads the correlation id from the request, generating one if
// absent, and echoes it on the response.
func CorrelationID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(correlationHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		c.Set("correlation_id", id)
		c.Writer.Header().Set(correlationHeader, id)

		c.Next()
	}
}
