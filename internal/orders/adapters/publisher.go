package adapters

import (
	"context"

	"oms/internal/orders/domain"
	"oms/pkg/events"
	"oms/pkg/logger"
	"oms/pkg/rabbitmq"
)

// RabbitMQPublisher implements EventPublisher using RabbitMQ
type RabbitMQPublisher struct {
	publisher *rabbitmq.Publisher
	log       *logger.Logger
}

// NewRabbitMQPublisher creates a new RabbitMQ event publisher
func NewRabbitMQPublisher(publisher *rabbitmq.Publisher, log *logger.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		publisher: publisher,
		log:       log,
	}
}

// PublishOrderCreated publishes an order created event
func (p *RabbitMQPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, events.RoutingKeyOrderCreated, order)
}

// PublishOrderUpdated publishes an order updated event
func (p *RabbitMQPublisher) PublishOrderUpdated(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, events.RoutingKeyOrderUpdated, order)
}

// PublishOrderCancelled publishes an order cancelled event
func (p *RabbitMQPublisher) PublishOrderCancelled(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, events.RoutingKeyOrderCancelled, order)
}

func (p *RabbitMQPublisher) publish(ctx context.Context, routingKey string, order *domain.Order) error {
	traceID := logger.GetTraceID(ctx)

	event := events.NewOrderEvent(routingKey, traceID, events.OrderPayload{
		OrderID:     order.OrderID,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	})

	return p.publisher.Publish(ctx, routingKey, event)
}
