// Package dto defines the JSON request and response shapes of the
// gateway API, plus binding and validation helpers. DTOs convert to and
// from domain types at the handler boundary; nothing below the handlers
// sees them.
package dto

import (
	"github.com/jsamuelsen/order-gateway/internal/domain"
)

// ProductItem is one order line.
type ProductItem struct {
	ProductID int     `json:"productId" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0,lte=10000"`
	UnitPrice float64 `json:"unitPrice" validate:"required,gt=0"`
}

// Address is the delivery address for an order.
type Address struct {
	Street  string `json:"street" validate:"required,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	ZipCode string `json:"zipCode" validate:"required,max=20"`
	Country string `json:"country" validate:"required,max=100"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ClientID int           `json:"clientId" validate:"required,gt=0"`
	Products []ProductItem `json:"products" validate:"required,min=1,dive"`
	Address  Address       `json:"address" validate:"required"`
}

// ToDomain converts the request to its domain representation.
func (r *CreateOrderRequest) ToDomain() *domain.CreateOrderRequest {
	products := make([]domain.ProductItem, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, domain.ProductItem{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		})
	}

	return &domain.CreateOrderRequest{
		ClientID: r.ClientID,
		Products: products,
		Address: domain.Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
			Country: r.Address.Country,
		},
	}
}

// UpdateOrderStatusRequest is the body of PUT /api/v1/orders/:id/status.
// The OrderID must match the id addressed in the route.
type UpdateOrderStatusRequest struct {
	OrderID   int    `json:"orderId" validate:"required,gt=0"`
	NewStatus string `json:"newStatus" validate:"required"`
}

// ToDomain converts the request to its domain representation.
func (r *UpdateOrderStatusRequest) ToDomain() *domain.StatusUpdate {
	return &domain.StatusUpdate{
		OrderID:   r.OrderID,
		NewStatus: r.NewStatus,
	}
}
