package infrastructure

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oms/internal/orders/application"
	"oms/internal/orders/domain"
	"oms/pkg/errors"
)

// HTTPHandler handles HTTP requests for orders
type HTTPHandler struct {
	useCase *application.OrderUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.OrderUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the order routes
func (h *HTTPHandler) RegisterRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.PlaceOrder)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/status", h.GetOrderStatus)
		orders.PUT("/:id", h.UpdateOrder)
		orders.POST("/:id/cancel", h.CancelOrder)
	}
}

// OrderItemRequest is a line item in a create/update request
type OrderItemRequest struct {
	ProductID   string  `json:"product_id" binding:"required" example:"PROD-100"`
	ProductName string  `json:"product_name" binding:"required" example:"Wireless Mouse"`
	Quantity    int     `json:"quantity" binding:"required,gt=0" example:"2"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0" example:"10.00"`
}

// ShippingAddressRequest is the delivery destination in a create/update
// request. Country defaults when omitted.
type ShippingAddressRequest struct {
	Street  string `json:"street" binding:"required" example:"123 Main St"`
	City    string `json:"city" binding:"required" example:"Springfield"`
	State   string `json:"state" binding:"required" example:"IL"`
	ZipCode string `json:"zip_code" binding:"required" example:"62704"`
	Country string `json:"country" example:"USA"`
}

// CreateOrderRequest is the request body for placing an order
type CreateOrderRequest struct {
	CustomerID      string                 `json:"customer_id" binding:"required" example:"CUST-042"`
	Items           []OrderItemRequest     `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address" binding:"required"`
}

// UpdateOrderRequest is the request body for updating an order. Omitted
// fields keep their prior value.
type UpdateOrderRequest struct {
	Items           []OrderItemRequest      `json:"items" binding:"omitempty,min=1,dive"`
	ShippingAddress *ShippingAddressRequest `json:"shipping_address" binding:"omitempty"`
}

// OrderResponse is the envelope for order operations
type OrderResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Order   *domain.Order `json:"order,omitempty"`
}

// OrderStatusResponse is the envelope for the status-only projection
type OrderStatusResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// ListOrdersResponse is the envelope for the collection listing
type ListOrdersResponse struct {
	Orders []domain.Order `json:"orders"`
	Count  int            `json:"count"`
}

// ListOrders handles GET /orders
//
// @Summary List all orders
// @Description Returns the full order collection and its count
// @Tags orders
// @Produce json
// @Success 200 {object} ListOrdersResponse "All orders"
// @Failure 500 {object} errors.ErrorResponse "Storage failure"
// @Router /orders [get]
func (h *HTTPHandler) ListOrders(c *gin.Context) {
	output, err := h.useCase.ListOrders(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ListOrdersResponse{
		Orders: output.Orders,
		Count:  output.Count,
	})
}

// PlaceOrder handles POST /orders
//
// @Summary Place a new order
// @Description Creates a new order with pending status
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order creation request"
// @Success 201 {object} OrderResponse "Order created"
// @Failure 400 {object} errors.ErrorResponse "Validation error"
// @Failure 500 {object} errors.ErrorResponse "Storage failure"
// @Router /orders [post]
func (h *HTTPHandler) PlaceOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	output, err := h.useCase.CreateOrder(c.Request.Context(), application.CreateOrderInput{
		CustomerID:      req.CustomerID,
		Items:           toDomainItems(req.Items),
		ShippingAddress: toDomainAddress(req.ShippingAddress),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, OrderResponse{
		Success: true,
		Message: "Order " + output.Order.OrderID + " created successfully",
		Order:   output.Order,
	})
}

// GetOrder handles GET /orders/:id
//
// @Summary Get full order details
// @Description Returns complete information about the specified order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID" example(ORD-001)
// @Success 200 {object} OrderResponse "Order details"
// @Failure 404 {object} errors.ErrorResponse "Order not found"
// @Router /orders/{id} [get]
func (h *HTTPHandler) GetOrder(c *gin.Context) {
	output, err := h.useCase.GetOrder(c.Request.Context(), application.GetOrderInput{
		OrderID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, OrderResponse{
		Success: true,
		Message: "Order retrieved successfully",
		Order:   output.Order,
	})
}

// GetOrderStatus handles GET /orders/:id/status
//
// @Summary Check order status
// @Description Returns only the current status of the specified order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID" example(ORD-001)
// @Success 200 {object} OrderStatusResponse "Current status"
// @Failure 404 {object} errors.ErrorResponse "Order not found"
// @Router /orders/{id}/status [get]
func (h *HTTPHandler) GetOrderStatus(c *gin.Context) {
	output, err := h.useCase.GetOrderStatus(c.Request.Context(), application.GetOrderStatusInput{
		OrderID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, OrderStatusResponse{
		Success: true,
		OrderID: output.OrderID,
		Status:  string(output.Status),
		Message: "Order status: " + string(output.Status),
	})
}

// UpdateOrder handles PUT /orders/:id
//
// @Summary Update an existing order
// @Description Replaces items and/or shipping address. Cancelled, shipped and delivered orders cannot be updated.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID" example(ORD-001)
// @Param request body UpdateOrderRequest true "Order update request"
// @Success 200 {object} OrderResponse "Updated order"
// @Failure 400 {object} errors.ErrorResponse "Validation error or illegal transition"
// @Failure 404 {object} errors.ErrorResponse "Order not found"
// @Router /orders/{id} [put]
func (h *HTTPHandler) UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	input := application.UpdateOrderInput{OrderID: c.Param("id")}
	if req.Items != nil {
		input.Items = toDomainItems(req.Items)
	}
	if req.ShippingAddress != nil {
		address := toDomainAddress(*req.ShippingAddress)
		input.ShippingAddress = &address
	}

	output, err := h.useCase.UpdateOrder(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, OrderResponse{
		Success: true,
		Message: "Order " + output.Order.OrderID + " updated successfully",
		Order:   output.Order,
	})
}

// CancelOrder handles POST /orders/:id/cancel
//
// @Summary Cancel an existing order
// @Description Changes the order status to cancelled. Shipped, delivered and already cancelled orders cannot be cancelled.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID" example(ORD-001)
// @Success 200 {object} OrderResponse "Cancelled order"
// @Failure 400 {object} errors.ErrorResponse "Illegal transition"
// @Failure 404 {object} errors.ErrorResponse "Order not found"
// @Router /orders/{id}/cancel [post]
func (h *HTTPHandler) CancelOrder(c *gin.Context) {
	output, err := h.useCase.CancelOrder(c.Request.Context(), application.CancelOrderInput{
		OrderID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, OrderResponse{
		Success: true,
		Message: "Order " + output.Order.OrderID + " has been cancelled",
		Order:   output.Order,
	})
}

func toDomainItems(items []OrderItemRequest) []domain.OrderItem {
	result := make([]domain.OrderItem, len(items))
	for i, item := range items {
		result[i] = domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return result
}

func toDomainAddress(address ShippingAddressRequest) domain.ShippingAddress {
	return domain.ShippingAddress{
		Street:  address.Street,
		City:    address.City,
		State:   address.State,
		ZipCode: address.ZipCode,
		Country: address.Country,
	}
}
