// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrValidation, ErrUpstream, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/order-gateway/internal/domain"
)

// OrderClient is the port for the remote order-management backend.
// The adapter translates between domain types and the backend's SOAP
// contracts; nothing above the adapter sees backend DTOs.
//
// Every method dispatches exactly one backend operation over a client
// created for that call alone. Failures surface as typed domain errors:
//   - domain.ErrValidation for faults the classifier attributes to the caller
//     and for bad input rejected before dispatch (unknown status name)
//   - domain.ErrUpstream for technical faults and unreachable backends
//   - domain.ErrTimeout when the backend does not answer in time
type OrderClient interface {
	// CreateOrder places a new order with the backend.
	CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.OrderConfirmation, error)

	// GetOrderDetails retrieves the full order identified by orderID.
	GetOrderDetails(ctx context.Context, orderID int) (*domain.Order, error)

	// CalculateOrderTotal computes the financial breakdown for an order.
	CalculateOrderTotal(ctx context.Context, orderID int) (*domain.OrderTotal, error)

	// UpdateOrderStatus moves an order to a new status. An unknown status
	// name fails with domain.ErrValidation before any backend call is made.
	UpdateOrderStatus(ctx context.Context, update *domain.StatusUpdate) (*domain.StatusUpdateResult, error)
}
