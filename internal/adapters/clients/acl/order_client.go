package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/order-gateway/internal/adapters/clients/soap"
	"github.com/jsamuelsen/order-gateway/internal/domain"
)

// OrderClient adapts the SOAP order-management backend to the
// ports.OrderClient interface. Each method dispatches exactly one
// backend operation through the invoker, which creates and releases a
// dedicated client per call.
//
// OrderClient also implements ports.HealthChecker so the backend's
// reachability feeds the readiness endpoint.
type OrderClient struct {
	invoker *soap.Invoker
	logger  *slog.Logger
}

// OrderClientConfig configures an OrderClient.
type OrderClientConfig struct {
	// Invoker dispatches the backend operations. Required.
	Invoker *soap.Invoker

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// NewOrderClient creates a new backend adapter.
func NewOrderClient(cfg OrderClientConfig) *OrderClient {
	if cfg.Invoker == nil {
		panic("acl.NewOrderClient: invoker is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &OrderClient{
		invoker: cfg.Invoker,
		logger:  logger.With(slog.String("component", "acl.OrderClient")),
	}
}

// CreateOrder places a new order with the backend.
func (c *OrderClient) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.OrderConfirmation, error) {
	resp, err := soap.Invoke(ctx, c.invoker, opCreateOrder, toBackendCreateRequest(req),
		func(ctx context.Context, client *soap.Client, req *createOrderRequest) (*createOrderResponse, error) {
			var resp createOrderResponse
			if err := client.Call(ctx, opCreateOrder, req, &resp); err != nil {
				return nil, err
			}

			return &resp, nil
		})
	if err != nil {
		return nil, err
	}

	return fromBackendCreateResponse(resp), nil
}

// GetOrderDetails retrieves the full order identified by orderID.
func (c *OrderClient) GetOrderDetails(ctx context.Context, orderID int) (*domain.Order, error) {
	resp, err := soap.Invoke(ctx, c.invoker, opGetOrderDetails, &getOrderDetailsRequest{OrderID: orderID},
		func(ctx context.Context, client *soap.Client, req *getOrderDetailsRequest) (*getOrderDetailsResponse, error) {
			var resp getOrderDetailsResponse
			if err := client.Call(ctx, opGetOrderDetails, req, &resp); err != nil {
				return nil, err
			}

			return &resp, nil
		})
	if err != nil {
		return nil, err
	}

	if resp.Order == nil {
		return nil, domain.NewUpstreamError("order-service", "backend returned no order payload")
	}

	return fromBackendOrder(resp.Order), nil
}

// CalculateOrderTotal computes the financial breakdown for an order.
// The backend response carries no order id; the caller's id is echoed
// back on the result.
func (c *OrderClient) CalculateOrderTotal(ctx context.Context, orderID int) (*domain.OrderTotal, error) {
	resp, err := soap.Invoke(ctx, c.invoker, opCalculateOrderTotal, &calculateOrderTotalRequest{OrderID: orderID},
		func(ctx context.Context, client *soap.Client, req *calculateOrderTotalRequest) (*calculateOrderTotalResponse, error) {
			var resp calculateOrderTotalResponse
			if err := client.Call(ctx, opCalculateOrderTotal, req, &resp); err != nil {
				return nil, err
			}

			return &resp, nil
		})
	if err != nil {
		return nil, err
	}

	return fromBackendTotals(resp, orderID), nil
}

// UpdateOrderStatus moves an order to a new status. The status name is
// validated locally first; the backend never sees an unknown status.
func (c *OrderClient) UpdateOrderStatus(ctx context.Context, update *domain.StatusUpdate) (*domain.StatusUpdateResult, error) {
	soapReq, err := toBackendStatusUpdate(update)
	if err != nil {
		return nil, err
	}

	resp, err := soap.Invoke(ctx, c.invoker, opUpdateOrderStatus, soapReq,
		func(ctx context.Context, client *soap.Client, req *updateOrderStatusRequest) (*updateOrderStatusResponse, error) {
			var resp updateOrderStatusResponse
			if err := client.Call(ctx, opUpdateOrderStatus, req, &resp); err != nil {
				return nil, err
			}

			return &resp, nil
		})
	if err != nil {
		return nil, err
	}

	return fromBackendStatusUpdate(resp), nil
}

// Name implements ports.HealthChecker.
func (c *OrderClient) Name() string {
	return "order-service"
}

// Check implements ports.HealthChecker by probing backend reachability.
func (c *OrderClient) Check(ctx context.Context) error {
	return c.invoker.Ping(ctx)
}
