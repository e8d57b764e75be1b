package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/order-gateway/internal/adapters/clients/soap"
	"github.com/jsamuelsen/order-gateway/internal/domain"
)

// stubBackend is an httptest SOAP endpoint answering by SOAPAction.
type stubBackend struct {
	server    *httptest.Server
	callCount int
	responses map[string]string
	status    map[string]int
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()

	stub := &stubBackend{
		responses: make(map[string]string),
		status:    make(map[string]int),
	}

	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK) // WSDL probe from health checks

			return
		}

		stub.callCount++

		action := strings.Trim(r.Header.Get("SOAPAction"), `"`)
		operation := action[strings.LastIndex(action, "/")+1:]

		body, ok := stub.responses[operation]
		if !ok {
			t.Errorf("unexpected operation %q", operation)
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		if code, ok := stub.status[operation]; ok {
			w.WriteHeader(code)
		}

		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(stub.server.Close)

	return stub
}

func (s *stubBackend) respond(operation, payload string) {
	s.responses[operation] = fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>%s</soap:Body>
</soap:Envelope>`, payload)
}

func (s *stubBackend) fault(operation, message string) {
	s.status[operation] = http.StatusInternalServerError
	s.respond(operation, fmt.Sprintf(`<soap:Fault>
      <faultcode>soap:Server</faultcode>
      <faultstring>%s</faultstring>
    </soap:Fault>`, message))
}

func newTestOrderClient(t *testing.T, stub *stubBackend) *OrderClient {
	t.Helper()

	invoker, err := soap.NewInvoker(soap.InvokerConfig{
		Factory: soap.NewClientFactory(soap.Config{
			Endpoint:   stub.server.URL,
			ActionBase: ActionBase,
		}),
		ServiceName: "order-service",
		MapFault:    FaultToError(DefaultClassifier(), "order-service"),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return NewOrderClient(OrderClientConfig{
		Invoker: invoker,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestOrderClient_CreateOrder(t *testing.T) {
	stub := newStubBackend(t)
	stub.respond("CreateOrder", `<CreateOrderResponse xmlns="http://tempuri.org/orderservice">
      <OrderId>42</OrderId>
      <Status>CREATED</Status>
      <CreatedDate>2024-03-01T12:00:00Z</CreatedDate>
    </CreateOrderResponse>`)

	client := newTestOrderClient(t, stub)

	confirmation, err := client.CreateOrder(context.Background(), &domain.CreateOrderRequest{
		ClientID: 7,
		Products: []domain.ProductItem{{ProductID: 1, Quantity: 2, UnitPrice: 9.99}},
		Address:  domain.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "USA"},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, confirmation.OrderID)
	assert.Equal(t, domain.StatusCreated, confirmation.Status)
	assert.Equal(t, 1, stub.callCount)
}

func TestOrderClient_CreateOrder_BusinessFault(t *testing.T) {
	stub := newStubBackend(t)
	stub.fault("CreateOrder", "Quantity must be greater than 0")

	client := newTestOrderClient(t, stub)

	_, err := client.CreateOrder(context.Background(), &domain.CreateOrderRequest{ClientID: 7})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestOrderClient_CreateOrder_TechnicalFault(t *testing.T) {
	stub := newStubBackend(t)
	stub.fault("CreateOrder", "connection pool exhausted")

	client := newTestOrderClient(t, stub)

	_, err := client.CreateOrder(context.Background(), &domain.CreateOrderRequest{ClientID: 7})

	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}

func TestOrderClient_GetOrderDetails(t *testing.T) {
	stub := newStubBackend(t)
	stub.respond("GetOrderDetails", `<GetOrderDetailsResponse xmlns="http://tempuri.org/orderservice">
      <Order>
        <OrderId>42</OrderId>
        <ClientId>7</ClientId>
        <Products>
          <ProductItem><ProductId>1</ProductId><Quantity>2</Quantity><UnitPrice>9.99</UnitPrice></ProductItem>
        </Products>
        <Address><Street>1 Main St</Street><City>Springfield</City></Address>
        <Status>PAID</Status>
        <CreatedDate>2024-03-01T12:00:00Z</CreatedDate>
        <Subtotal>19.98</Subtotal>
        <Taxes>2</Taxes>
        <Total>21.98</Total>
      </Order>
    </GetOrderDetailsResponse>`)

	client := newTestOrderClient(t, stub)

	order, err := client.GetOrderDetails(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 42, order.OrderID)
	assert.Equal(t, 7, order.ClientID)
	assert.Equal(t, domain.StatusPaid, order.Status)
	require.Len(t, order.Products, 1)
	assert.Equal(t, 9.99, order.Products[0].UnitPrice)
	assert.Equal(t, 21.98, order.FinancialDetails.Total)
}

func TestOrderClient_GetOrderDetails_MissingPayload(t *testing.T) {
	stub := newStubBackend(t)
	stub.respond("GetOrderDetails", `<GetOrderDetailsResponse xmlns="http://tempuri.org/orderservice"/>`)

	client := newTestOrderClient(t, stub)

	_, err := client.GetOrderDetails(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}

func TestOrderClient_CalculateOrderTotal(t *testing.T) {
	stub := newStubBackend(t)
	stub.respond("CalculateOrderTotal", `<CalculateOrderTotalResponse xmlns="http://tempuri.org/orderservice">
      <Subtotal>100</Subtotal>
      <Taxes>8</Taxes>
      <Discount>10</Discount>
      <Shipping>4.5</Shipping>
      <Total>102.5</Total>
    </CalculateOrderTotalResponse>`)

	client := newTestOrderClient(t, stub)

	total, err := client.CalculateOrderTotal(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 42, total.OrderID, "order id comes from the caller, not the backend")
	assert.Equal(t, 102.5, total.FinancialDetails.Total)
}

func TestOrderClient_UpdateOrderStatus(t *testing.T) {
	stub := newStubBackend(t)
	stub.respond("UpdateOrderStatus", `<UpdateOrderStatusResponse xmlns="http://tempuri.org/orderservice">
      <OrderId>42</OrderId>
      <PreviousStatus>PAID</PreviousStatus>
      <NewStatus>SHIPPED</NewStatus>
      <Success>true</Success>
    </UpdateOrderStatusResponse>`)

	client := newTestOrderClient(t, stub)

	result, err := client.UpdateOrderStatus(context.Background(), &domain.StatusUpdate{
		OrderID:   42,
		NewStatus: "shipped",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, result.PreviousStatus)
	assert.Equal(t, domain.StatusShipped, result.NewStatus)
	assert.True(t, result.Success)
}

func TestOrderClient_UpdateOrderStatus_UnknownStatusNeverDispatches(t *testing.T) {
	stub := newStubBackend(t)

	client := newTestOrderClient(t, stub)

	_, err := client.UpdateOrderStatus(context.Background(), &domain.StatusUpdate{
		OrderID:   42,
		NewStatus: "CANCELLED",
	})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Zero(t, stub.callCount, "invalid status must be rejected before any backend call")
}

func TestOrderClient_HealthCheck(t *testing.T) {
	stub := newStubBackend(t)

	client := newTestOrderClient(t, stub)

	assert.Equal(t, "order-service", client.Name())
	assert.NoError(t, client.Check(context.Background()))
}
