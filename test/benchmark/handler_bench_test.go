package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/order-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/order-gateway/internal/app"
	"github.com/jsamuelsen/order-gateway/internal/domain"
	"github.com/jsamuelsen/order-gateway/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// staticOrderClient answers every backend call from memory so the
// benchmarks measure the gateway layers, not a network.
type staticOrderClient struct {
	confirmation *domain.OrderConfirmation
	order        *domain.Order
	total        *domain.OrderTotal
	result       *domain.StatusUpdateResult
}

func (c *staticOrderClient) CreateOrder(context.Context, *domain.CreateOrderRequest) (*domain.OrderConfirmation, error) {
	return c.confirmation, nil
}

func (c *staticOrderClient) GetOrderDetails(context.Context, int) (*domain.Order, error) {
	return c.order, nil
}

func (c *staticOrderClient) CalculateOrderTotal(context.Context, int) (*domain.OrderTotal, error) {
	return c.total, nil
}

func (c *staticOrderClient) UpdateOrderStatus(context.Context, *domain.StatusUpdate) (*domain.StatusUpdateResult, error) {
	return c.result, nil
}

func newBenchRouter() *gin.Engine {
	backend := &staticOrderClient{
		confirmation: &domain.OrderConfirmation{
			OrderID:     42,
			Status:      domain.StatusCreated,
			CreatedDate: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		order: &domain.Order{
			OrderID:  42,
			ClientID: 7,
			Products: []domain.ProductItem{{ProductID: 1, Quantity: 2, UnitPrice: 9.99}},
			Status:   domain.StatusPaid,
		},
		total: &domain.OrderTotal{
			OrderID:          42,
			FinancialDetails: domain.FinancialDetails{Subtotal: 100, Total: 108},
		},
		result: &domain.StatusUpdateResult{
			OrderID:        42,
			PreviousStatus: domain.StatusPaid,
			NewStatus:      domain.StatusShipped,
			Success:        true,
		},
	}

	service := app.NewOrderService(backend, &app.OrderServiceConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	router := gin.New()
	api := router.Group("/api/v1")
	handlers.NewOrderHandler(service).RegisterOrderRoutes(api)

	return router
}

// setupHealthHandler creates a HealthHandler with a minimal registry for benchmarking.
func setupHealthHandler() *gin.Engine {
	registry := ports.NewHealthRegistry()
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")

	router := gin.New()
	handlers.NewHealthHandler(registry, buildInfo).RegisterHealthRoutesOnEngine(router)

	return router
}

// BenchmarkLiveness measures the liveness endpoint. This is a critical
// path for Kubernetes probes and should be extremely fast.
func BenchmarkLiveness(b *testing.B) {
	router := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

const benchCreateBody = `{
	"clientId": 7,
	"products": [{"productId": 1, "quantity": 2, "unitPrice": 9.99}],
	"address": {
		"street": "1 Main St",
		"city": "Springfield",
		"state": "IL",
		"zipCode": "62701",
		"country": "USA"
	}
}`

// BenchmarkCreateOrder measures bind, validate, map, and render for the
// order creation path with an in-memory backend.
func BenchmarkCreateOrder(b *testing.B) {
	router := newBenchRouter()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(benchCreateBody))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

// BenchmarkGetOrderDetails measures the read path.
func BenchmarkGetOrderDetails(b *testing.B) {
	router := newBenchRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/42", http.NoBody)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}
