package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/order-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/order-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen/order-gateway/internal/domain"
	"github.com/jsamuelsen/order-gateway/internal/platform/config"
	"github.com/jsamuelsen/order-gateway/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AuthConfig contains authentication settings.
	AuthConfig *config.AuthConfig

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// OrderHandler handles the order endpoints.
	OrderHandler *handlers.OrderHandler

	// Timeout is the per-request deadline.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Problems - panic recovery and uniform error rendering
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. CORS - permissive cross-origin policy
//  7. Timeout - request deadline (API group only)
//
// Route groups:
//   - /-/ (internal): Health endpoints, no auth required
//   - /api/v1/ (public API): Order endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		Problems(cfg.AppConfig.IsProduction()),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
		middleware.CORS(),
	)

	// Unknown routes get a problem body too.
	engine.NoRoute(func(c *gin.Context) {
		_ = c.Error(domain.NewNotFoundError("resource", c.Request.URL.Path))
	})

	// Health endpoints (no auth, no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(
		middleware.Timeout(timeout),
		middleware.RequireAuth(cfg.AuthConfig),
	)

	if cfg.OrderHandler != nil {
		cfg.OrderHandler.RegisterOrderRoutes(apiV1)
	}
}
