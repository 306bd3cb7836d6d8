package application

import (
	"context"

	"go.uber.org/zap"

	"oms/internal/orders/domain"
	"oms/internal/orders/ports"
	"oms/pkg/logger"
)

// OrderUseCase is the thin orchestration layer over the order store. It maps
// each external request onto exactly one store operation and leaves transition
// legality entirely to the store, so a pre-check here can never diverge from
// the store's own rules.
type OrderUseCase struct {
	store     ports.OrderStore
	publisher ports.EventPublisher
	log       *logger.Logger
}

// NewOrderUseCase creates a new order use case
func NewOrderUseCase(store ports.OrderStore, publisher ports.EventPublisher, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		store:     store,
		publisher: publisher,
		log:       log,
	}
}

// CreateOrderInput represents the input for creating an order
type CreateOrderInput struct {
	CustomerID      string
	Items           []domain.OrderItem
	ShippingAddress domain.ShippingAddress
}

// CreateOrderOutput represents the output of creating an order
type CreateOrderOutput struct {
	Order *domain.Order
}

// CreateOrder places a new order with pending status
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	order, err := uc.store.Create(ctx, input.CustomerID, input.Items, input.ShippingAddress)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, order, func(p ports.EventPublisher) error {
		return p.PublishOrderCreated(ctx, order)
	})

	uc.log.WithContext(ctx).Info("order created",
		zap.String("order_id", order.OrderID),
		zap.String("customer_id", order.CustomerID),
		zap.Float64("total_amount", order.TotalAmount),
	)

	return &CreateOrderOutput{Order: order}, nil
}

// GetOrderInput represents the input for getting an order
type GetOrderInput struct {
	OrderID string
}

// GetOrderOutput represents the output of getting an order
type GetOrderOutput struct {
	Order *domain.Order
}

// GetOrder retrieves full order details by ID
func (uc *OrderUseCase) GetOrder(ctx context.Context, input GetOrderInput) (*GetOrderOutput, error) {
	order, err := uc.store.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	return &GetOrderOutput{Order: order}, nil
}

// GetOrderStatusInput represents the input for checking an order's status
type GetOrderStatusInput struct {
	OrderID string
}

// GetOrderStatusOutput represents the status-only projection of an order
type GetOrderStatusOutput struct {
	OrderID string
	Status  domain.OrderStatus
}

// GetOrderStatus retrieves only the current status of an order
func (uc *OrderUseCase) GetOrderStatus(ctx context.Context, input GetOrderStatusInput) (*GetOrderStatusOutput, error) {
	order, err := uc.store.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	return &GetOrderStatusOutput{
		OrderID: order.OrderID,
		Status:  order.Status,
	}, nil
}

// UpdateOrderInput represents the input for updating an order. Nil fields
// keep their prior value.
type UpdateOrderInput struct {
	OrderID         string
	Items           []domain.OrderItem
	ShippingAddress *domain.ShippingAddress
}

// UpdateOrderOutput represents the output of updating an order
type UpdateOrderOutput struct {
	Order *domain.Order
}

// UpdateOrder replaces items and/or shipping address of a mutable order
func (uc *OrderUseCase) UpdateOrder(ctx context.Context, input UpdateOrderInput) (*UpdateOrderOutput, error) {
	order, err := uc.store.Update(ctx, input.OrderID, input.Items, input.ShippingAddress)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, order, func(p ports.EventPublisher) error {
		return p.PublishOrderUpdated(ctx, order)
	})

	uc.log.WithContext(ctx).Info("order updated",
		zap.String("order_id", order.OrderID),
		zap.Float64("total_amount", order.TotalAmount),
	)

	return &UpdateOrderOutput{Order: order}, nil
}

// CancelOrderInput represents the input for cancelling an order
type CancelOrderInput struct {
	OrderID string
}

// CancelOrderOutput represents the output of cancelling an order
type CancelOrderOutput struct {
	Order *domain.Order
}

// CancelOrder marks an order cancelled
func (uc *OrderUseCase) CancelOrder(ctx context.Context, input CancelOrderInput) (*CancelOrderOutput, error) {
	order, err := uc.store.Cancel(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, order, func(p ports.EventPublisher) error {
		return p.PublishOrderCancelled(ctx, order)
	})

	uc.log.WithContext(ctx).Info("order cancelled",
		zap.String("order_id", order.OrderID),
	)

	return &CancelOrderOutput{Order: order}, nil
}

// ListOrdersOutput represents the full collection snapshot plus its count
type ListOrdersOutput struct {
	Orders []domain.Order
	Count  int
}

// ListOrders returns the full collection snapshot
func (uc *OrderUseCase) ListOrders(ctx context.Context) (*ListOrdersOutput, error) {
	orders, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ListOrdersOutput{
		Orders: orders,
		Count:  len(orders),
	}, nil
}

// publishEvent publishes asynchronously with respect to the caller's
// success: a broker failure is logged, never returned
func (uc *OrderUseCase) publishEvent(ctx context.Context, order *domain.Order, publish func(ports.EventPublisher) error) {
	if uc.publisher == nil {
		return
	}
	if err := publish(uc.publisher); err != nil {
		uc.log.WithContext(ctx).Error("failed to publish order event",
			zap.Error(err),
			zap.String("order_id", order.OrderID),
		)
	}
}
