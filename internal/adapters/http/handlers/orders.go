package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/order-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/order-gateway/internal/app"
	"github.com/jsamuelsen/order-gateway/internal/domain"
)

// OrderHandler exposes the order operations over JSON/HTTP. Handlers
// bind and validate input, call the application service, and write the
// success response; every failure is recorded on the gin context and
// rendered by the problem translator.
type OrderHandler struct {
	service *app.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service *app.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterOrderRoutes registers the order endpoints on the API group.
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.POST("", h.CreateOrder)
	orders.GET("/:id", h.GetOrderDetails)
	orders.GET("/:id/total", h.CalculateOrderTotal)
	orders.PUT("/:id/status", h.UpdateOrderStatus)
}

// CreateOrder handles POST /api/v1/orders.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	confirmation, err := h.service.CreateOrder(c.Request.Context(), req.ToDomain())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/orders/%d", confirmation.OrderID))
	c.JSON(http.StatusCreated, dto.NewCreateOrderResponse(confirmation))
}

// GetOrderDetails handles GET /api/v1/orders/:id.
func (h *OrderHandler) GetOrderDetails(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	order, err := h.service.GetOrderDetails(c.Request.Context(), orderID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderDetailsResponse(order))
}

// CalculateOrderTotal handles GET /api/v1/orders/:id/total.
func (h *OrderHandler) CalculateOrderTotal(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	total, err := h.service.CalculateOrderTotal(c.Request.Context(), orderID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCalculateOrderTotalResponse(total))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.service.UpdateOrderStatus(c.Request.Context(), orderID, req.ToDomain())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUpdateOrderStatusResponse(result))
}

// orderIDParam parses the :id route parameter.
func orderIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, domain.NewValidationError("orderId", "must be a positive integer")
	}

	return id, nil
}
