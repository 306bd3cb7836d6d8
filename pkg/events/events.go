package events

import "time"

// Exchange names
const (
	ExchangeOrders = "orders.events"
)

// Routing keys
const (
	RoutingKeyOrderCreated   = "order.created"
	RoutingKeyOrderUpdated   = "order.updated"
	RoutingKeyOrderCancelled = "order.cancelled"
)

// OrderEvent is published on every successful order mutation
type OrderEvent struct {
	Version   string       `json:"version"`
	EventType string       `json:"event_type"`
	Timestamp time.Time    `json:"timestamp"`
	TraceID   string       `json:"trace_id"`
	Payload   OrderPayload `json:"payload"`
}

// OrderPayload carries the order snapshot after the mutation. Field names
// match the persisted collection layout.
type OrderPayload struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewOrderEvent creates an order lifecycle event for the given routing key
func NewOrderEvent(eventType, traceID string, payload OrderPayload) *OrderEvent {
	return &OrderEvent{
		Version:   "1.0",
		EventType: eventType,
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload:   payload,
	}
}
