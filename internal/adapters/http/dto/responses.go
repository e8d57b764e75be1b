package dto

import (
	"time"

	"github.com/jsamuelsen/order-gateway/internal/domain"
)

// CreateOrderResponse is the body of a successful order creation.
type CreateOrderResponse struct {
	OrderID     int       `json:"orderId"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"createdDate"`
}

// NewCreateOrderResponse builds the response from a confirmation.
func NewCreateOrderResponse(confirmation *domain.OrderConfirmation) *CreateOrderResponse {
	return &CreateOrderResponse{
		OrderID:     confirmation.OrderID,
		Status:      confirmation.Status.String(),
		CreatedDate: confirmation.CreatedDate,
	}
}

// ProductItemResponse is one order line in a details response.
type ProductItemResponse struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// AddressResponse is the delivery address in a details response.
type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// FinancialDetailsResponse is the financial breakdown of an order.
type FinancialDetailsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Taxes    float64 `json:"taxes"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// OrderDetailsResponse is the body of GET /api/v1/orders/:id.
type OrderDetailsResponse struct {
	OrderID          int                      `json:"orderId"`
	ClientID         int                      `json:"clientId"`
	Products         []ProductItemResponse    `json:"products"`
	Address          AddressResponse          `json:"address"`
	Status           string                   `json:"status"`
	CreatedDate      time.Time                `json:"createdDate"`
	FinancialDetails FinancialDetailsResponse `json:"financialDetails"`
}

// NewOrderDetailsResponse builds the response from a domain order. The
// product list is always present in the JSON, even when empty.
func NewOrderDetailsResponse(order *domain.Order) *OrderDetailsResponse {
	products := make([]ProductItemResponse, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, ProductItemResponse{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		})
	}

	return &OrderDetailsResponse{
		OrderID:  order.OrderID,
		ClientID: order.ClientID,
		Products: products,
		Address: AddressResponse{
			Street:  order.Address.Street,
			City:    order.Address.City,
			State:   order.Address.State,
			ZipCode: order.Address.ZipCode,
			Country: order.Address.Country,
		},
		Status:           order.Status.String(),
		CreatedDate:      order.CreatedDate,
		FinancialDetails: newFinancialDetailsResponse(order.FinancialDetails),
	}
}

// CalculateOrderTotalResponse is the body of GET /api/v1/orders/:id/total.
type CalculateOrderTotalResponse struct {
	OrderID          int                      `json:"orderId"`
	FinancialDetails FinancialDetailsResponse `json:"financialDetails"`
}

// NewCalculateOrderTotalResponse builds the response from an order total.
func NewCalculateOrderTotalResponse(total *domain.OrderTotal) *CalculateOrderTotalResponse {
	return &CalculateOrderTotalResponse{
		OrderID:          total.OrderID,
		FinancialDetails: newFinancialDetailsResponse(total.FinancialDetails),
	}
}

// UpdateOrderStatusResponse is the body of PUT /api/v1/orders/:id/status.
type UpdateOrderStatusResponse struct {
	OrderID        int    `json:"orderId"`
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
	Success        bool   `json:"success"`
}

// NewUpdateOrderStatusResponse builds the response from a status update result.
func NewUpdateOrderStatusResponse(result *domain.StatusUpdateResult) *UpdateOrderStatusResponse {
	return &UpdateOrderStatusResponse{
		OrderID:        result.OrderID,
		PreviousStatus: result.PreviousStatus.String(),
		NewStatus:      result.NewStatus.String(),
		Success:        result.Success,
	}
}

func newFinancialDetailsResponse(fd domain.FinancialDetails) FinancialDetailsResponse {
	return FinancialDetailsResponse{
		Subtotal: fd.Subtotal,
		Taxes:    fd.Taxes,
		Discount: fd.Discount,
		Shipping: fd.Shipping,
		Total:    fd.Total,
	}
}
