package acl

import (
	"encoding/xml"
	"time"
)

// Namespace is the backend's contract namespace. Request elements are
// qualified with it and the SOAPAction header is derived from it.
const Namespace = "http://tempuri.org/orderservice"

// ActionBase prefixes operation names in the SOAPAction header.
const ActionBase = Namespace + "/IOrderService"

// Backend operation names.
const (
	opCreateOrder         = "CreateOrder"
	opGetOrderDetails     = "GetOrderDetails"
	opCalculateOrderTotal = "CalculateOrderTotal"
	opUpdateOrderStatus   = "UpdateOrderStatus"
)

// backendProductItem is an order line as the backend models it.
type backendProductItem struct {
	ProductID int     `xml:"ProductId"`
	Quantity  int     `xml:"Quantity"`
	UnitPrice float64 `xml:"UnitPrice"`
}

// backendAddress is a delivery address as the backend models it.
type backendAddress struct {
	Street  string `xml:"Street"`
	City    string `xml:"City"`
	State   string `xml:"State"`
	ZipCode string `xml:"ZipCode"`
	Country string `xml:"Country"`
}

// backendOrder is the backend's full order representation. Address and
// Products are optional elements; the mapper normalizes their absence.
type backendOrder struct {
	OrderID     int                  `xml:"OrderId"`
	ClientID    int                  `xml:"ClientId"`
	Products    []backendProductItem `xml:"Products>ProductItem"`
	Address     *backendAddress      `xml:"Address"`
	Status      string               `xml:"Status"`
	CreatedDate time.Time            `xml:"CreatedDate"`
	Subtotal    float64              `xml:"Subtotal"`
	Taxes       float64              `xml:"Taxes"`
	Discount    float64              `xml:"Discount"`
	Shipping    float64              `xml:"Shipping"`
	Total       float64              `xml:"Total"`
}

type createOrderRequest struct {
	XMLName  xml.Name             `xml:"http://tempuri.org/orderservice CreateOrderRequest"`
	ClientID int                  `xml:"ClientId"`
	Products []backendProductItem `xml:"Products>ProductItem"`
	Address  backendAddress       `xml:"Address"`
}

type createOrderResponse struct {
	XMLName     xml.Name  `xml:"http://tempuri.org/orderservice CreateOrderResponse"`
	OrderID     int       `xml:"OrderId"`
	Status      string    `xml:"Status"`
	CreatedDate time.Time `xml:"CreatedDate"`
}

type getOrderDetailsRequest struct {
	XMLName xml.Name `xml:"http://tempuri.org/orderservice GetOrderDetailsRequest"`
	OrderID int      `xml:"OrderId"`
}

type getOrderDetailsResponse struct {
	XMLName xml.Name      `xml:"http://tempuri.org/orderservice GetOrderDetailsResponse"`
	Order   *backendOrder `xml:"Order"`
}

type calculateOrderTotalRequest struct {
	XMLName xml.Name `xml:"http://tempuri.org/orderservice CalculateOrderTotalRequest"`
	OrderID int      `xml:"OrderId"`
}

type calculateOrderTotalResponse struct {
	XMLName  xml.Name `xml:"http://tempuri.org/orderservice CalculateOrderTotalResponse"`
	Subtotal float64  `xml:"Subtotal"`
	Taxes    float64  `xml:"Taxes"`
	Discount float64  `xml:"Discount"`
	Shipping float64  `xml:"Shipping"`
	Total    float64  `xml:"Total"`
}

type updateOrderStatusRequest struct {
	XMLName   xml.Name `xml:"http://tempuri.org/orderservice UpdateOrderStatusRequest"`
	OrderID   int      `xml:"OrderId"`
	NewStatus string   `xml:"NewStatus"`
}

type updateOrderStatusResponse struct {
	XMLName        xml.Name `xml:"http://tempuri.org/orderservice UpdateOrderStatusResponse"`
	OrderID        int      `xml:"OrderId"`
	PreviousStatus string   `xml:"PreviousStatus"`
	NewStatus      string   `xml:"NewStatus"`
	Success        bool     `xml:"Success"`
}
