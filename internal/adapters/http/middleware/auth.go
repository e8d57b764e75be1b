package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/order-gateway/internal/domain"
	"github.com/jsamuelsen/order-gateway/internal/platform/config"
)

// defaultSubjectHeader identifies the caller when no header is configured.
const defaultSubjectHeader = "X-User-ID"

// RequireAuth returns middleware that requires an authenticated caller.
// The gateway sits behind an edge proxy that validates credentials and
// forwards the caller identity via a header; a request without that
// header is rejected with 401 through the problem translator.
//
// When auth is disabled in configuration the middleware passes every
// request through unchanged.
func RequireAuth(cfg *config.AuthConfig) gin.HandlerFunc {
	headerName := defaultSubjectHeader
	if cfg != nil && cfg.SubjectHeader != "" {
		headerName = cfg.SubjectHeader
	}

	enabled := cfg != nil && cfg.Enabled

	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		if c.GetHeader(headerName) == "" {
			_ = c.Error(domain.NewUnauthorizedError("missing caller identity"))
			c.Abort()

			return
		}

		c.Next()
	}
}
