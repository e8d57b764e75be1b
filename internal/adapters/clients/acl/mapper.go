package acl

import (
	"github.com/jsamuelsen/order-gateway/internal/domain"
)

// mapSlice translates a contract slice element by element. A nil input
// yields an empty, non-nil slice so consumers never see null lists.
func mapSlice[E, D any](items []E, translate func(E) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, translate(item))
	}

	return out
}

func toBackendProductItem(item domain.ProductItem) backendProductItem {
	return backendProductItem{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
	}
}

func fromBackendProductItem(item backendProductItem) domain.ProductItem {
	return domain.ProductItem{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
	}
}

func toBackendAddress(addr domain.Address) backendAddress {
	return backendAddress{
		Street:  addr.Street,
		City:    addr.City,
		State:   addr.State,
		ZipCode: addr.ZipCode,
		Country: addr.Country,
	}
}

// fromBackendAddress normalizes an optional Address element. An absent
// address becomes the zero value, never a nil that callers must check.
func fromBackendAddress(addr *backendAddress) domain.Address {
	if addr == nil {
		return domain.Address{}
	}

	return domain.Address{
		Street:  addr.Street,
		City:    addr.City,
		State:   addr.State,
		ZipCode: addr.ZipCode,
		Country: addr.Country,
	}
}

func toBackendCreateRequest(req *domain.CreateOrderRequest) *createOrderRequest {
	return &createOrderRequest{
		ClientID: req.ClientID,
		Products: mapSlice(req.Products, toBackendProductItem),
		Address:  toBackendAddress(req.Address),
	}
}

func fromBackendCreateResponse(resp *createOrderResponse) *domain.OrderConfirmation {
	return &domain.OrderConfirmation{
		OrderID:     resp.OrderID,
		Status:      domain.OrderStatus(resp.Status),
		CreatedDate: resp.CreatedDate,
	}
}

func fromBackendOrder(order *backendOrder) *domain.Order {
	return &domain.Order{
		OrderID:     order.OrderID,
		ClientID:    order.ClientID,
		Products:    mapSlice(order.Products, fromBackendProductItem),
		Address:     fromBackendAddress(order.Address),
		Status:      domain.OrderStatus(order.Status),
		CreatedDate: order.CreatedDate,
		FinancialDetails: domain.FinancialDetails{
			Subtotal: order.Subtotal,
			Taxes:    order.Taxes,
			Discount: order.Discount,
			Shipping: order.Shipping,
			Total:    order.Total,
		},
	}
}

// fromBackendTotals builds an order total. The backend's response does
// not echo the order id, so the caller's id is attached here.
func fromBackendTotals(resp *calculateOrderTotalResponse, orderID int) *domain.OrderTotal {
	return &domain.OrderTotal{
		OrderID: orderID,
		FinancialDetails: domain.FinancialDetails{
			Subtotal: resp.Subtotal,
			Taxes:    resp.Taxes,
			Discount: resp.Discount,
			Shipping: resp.Shipping,
			Total:    resp.Total,
		},
	}
}

// toBackendStatusUpdate validates the requested status before building
// the contract. An unknown status name never reaches the backend.
func toBackendStatusUpdate(update *domain.StatusUpdate) (*updateOrderStatusRequest, error) {
	status, err := domain.ParseOrderStatus(update.NewStatus)
	if err != nil {
		return nil, err
	}

	return &updateOrderStatusRequest{
		OrderID:   update.OrderID,
		NewStatus: status.String(),
	}, nil
}

func fromBackendStatusUpdate(resp *updateOrderStatusResponse) *domain.StatusUpdateResult {
	return &domain.StatusUpdateResult{
		OrderID:        resp.OrderID,
		PreviousStatus: domain.OrderStatus(resp.PreviousStatus),
		NewStatus:      domain.OrderStatus(resp.NewStatus),
		Success:        resp.Success,
	}
}
