// Package domain contains core business entities and rules.
package domain

import "time"

// ProductItem is a single product line inside an order.
// Line items have no lifecycle of their own; they exist only as part
// of an Order or an order creation request.
type ProductItem struct {
	// ProductID is the identifier of the ordered product.
	ProductID int

	// Quantity is the number of units ordered.
	Quantity int

	// UnitPrice is the price of a single unit.
	UnitPrice float64
}

// Address is the delivery address attached to an order.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// FinancialDetails is the monetary breakdown of an order.
// The backend guarantees total = subtotal + taxes + shipping - discount;
// the gateway passes these values through without recomputing them.
type FinancialDetails struct {
	Subtotal float64
	Taxes    float64
	Discount float64
	Shipping float64
	Total    float64
}

// Order is the full order as reported by the backend order service.
type Order struct {
	OrderID     int
	ClientID    int
	Products    []ProductItem
	Address     Address
	Status      OrderStatus
	CreatedDate time.Time

	FinancialDetails FinancialDetails
}

// CreateOrderRequest is a request to place a new order.
type CreateOrderRequest struct {
	ClientID int
	Products []ProductItem
	Address  Address
}

// OrderConfirmation is the backend's answer to a successful order creation.
type OrderConfirmation struct {
	OrderID     int
	Status      OrderStatus
	CreatedDate time.Time
}

// OrderTotal is the financial breakdown for a single order.
// The backend total-calculation contract does not echo the order id,
// so it is attached by the gateway from the caller's request.
type OrderTotal struct {
	OrderID          int
	FinancialDetails FinancialDetails
}

// StatusUpdate is a request to move an order to a new status.
// NewStatus carries the caller's raw text; it is converted to the
// closed OrderStatus enumeration before the backend is invoked.
type StatusUpdate struct {
	OrderID   int
	NewStatus string
}

// StatusUpdateResult is the backend's answer to a status update.
type StatusUpdateResult struct {
	OrderID        int
	PreviousStatus OrderStatus
	NewStatus      OrderStatus
	Success        bool
}
