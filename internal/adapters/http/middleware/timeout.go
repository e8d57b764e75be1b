package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout returns middleware that bounds each request with a context
// deadline. Handlers and backend calls observe the deadline through the
// request context; when it expires the backend call fails with a domain
// timeout and the problem translator renders 504.
//
// The middleware does not race a goroutine against the handler. The
// handler keeps the response writer to itself and is trusted to respect
// cancellation, which every context-aware backend call does.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
