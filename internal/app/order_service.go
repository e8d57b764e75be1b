// Package app contains application services that orchestrate use cases.
// This is the application layer - it coordinates domain rules and the
// backend port without knowing anything about HTTP or SOAP.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/order-gateway/internal/domain"
	"github.com/jsamuelsen/order-gateway/internal/platform/logging"
	"github.com/jsamuelsen/order-gateway/internal/ports"
)

// OrderService orchestrates the gateway's order operations. Every use
// case is a thin synchronous pass-through to the backend port: the
// service's own responsibilities are cross-request rules (identity
// consistency) and logging. No state is held between requests.
type OrderService struct {
	backend ports.OrderClient
	logger  *slog.Logger
}

// OrderServiceConfig holds optional configuration for the service.
type OrderServiceConfig struct {
	Logger *slog.Logger
}

// NewOrderService creates a new application service around the backend port.
func NewOrderService(backend ports.OrderClient, cfg *OrderServiceConfig) *OrderService {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &OrderService{
		backend: backend,
		logger:  logger.With(slog.String("component", "app.OrderService")),
	}
}

// CreateOrder places a new order and returns the backend's confirmation.
func (s *OrderService) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.OrderConfirmation, error) {
	logger := s.requestLogger(ctx).With(
		slog.String("method", "CreateOrder"),
		slog.Int("client_id", req.ClientID),
		slog.Int("product_count", len(req.Products)),
	)
	logger.Info("creating order")

	confirmation, err := s.backend.CreateOrder(ctx, req)
	if err != nil {
		logger.Warn("order creation failed", slog.Any("error", err))
		return nil, err
	}

	logger.Info("order created",
		slog.Int("order_id", confirmation.OrderID),
		slog.String("status", confirmation.Status.String()),
	)

	return confirmation, nil
}

// GetOrderDetails retrieves the full order identified by orderID.
func (s *OrderService) GetOrderDetails(ctx context.Context, orderID int) (*domain.Order, error) {
	logger := s.requestLogger(ctx).With(
		slog.String("method", "GetOrderDetails"),
		slog.Int("order_id", orderID),
	)
	logger.Debug("fetching order details")

	order, err := s.backend.GetOrderDetails(ctx, orderID)
	if err != nil {
		logger.Warn("fetching order details failed", slog.Any("error", err))
		return nil, err
	}

	return order, nil
}

// CalculateOrderTotal computes the financial breakdown for an order.
func (s *OrderService) CalculateOrderTotal(ctx context.Context, orderID int) (*domain.OrderTotal, error) {
	logger := s.requestLogger(ctx).With(
		slog.String("method", "CalculateOrderTotal"),
		slog.Int("order_id", orderID),
	)
	logger.Debug("calculating order total")

	total, err := s.backend.CalculateOrderTotal(ctx, orderID)
	if err != nil {
		logger.Warn("calculating order total failed", slog.Any("error", err))
		return nil, err
	}

	return total, nil
}

// UpdateOrderStatus moves an order to a new status. The id addressed in
// the route must match the id carried in the body; a mismatch is
// rejected here, before the backend is involved.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int, update *domain.StatusUpdate) (*domain.StatusUpdateResult, error) {
	logger := s.requestLogger(ctx).With(
		slog.String("method", "UpdateOrderStatus"),
		slog.Int("order_id", orderID),
		slog.String("new_status", update.NewStatus),
	)

	if update.OrderID != orderID {
		logger.Warn("order id mismatch", slog.Int("body_order_id", update.OrderID))
		return nil, domain.NewValidationError("orderId", "OrderId in route must match OrderId in body")
	}

	logger.Info("updating order status")

	result, err := s.backend.UpdateOrderStatus(ctx, update)
	if err != nil {
		logger.Warn("status update failed", slog.Any("error", err))
		return nil, err
	}

	logger.Info("order status updated",
		slog.String("previous_status", result.PreviousStatus.String()),
		slog.String("new_status", result.NewStatus.String()),
		slog.Bool("success", result.Success),
	)

	return result, nil
}

// requestLogger prefers the context-enriched logger when middleware has
// installed one.
func (s *OrderService) requestLogger(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}

	return s.logger
}
