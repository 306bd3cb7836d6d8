package ports

import (
	"context"

	"oms/internal/orders/domain"
)

// OrderStore is the sole owner of the persisted order collection. All reads
// and writes to order data pass through it; transition legality is enforced
// here and nowhere else.
type OrderStore interface {
	// Create validates the input, allocates the next identifier and appends
	// a new pending order to the collection
	Create(ctx context.Context, customerID string, items []domain.OrderItem, address domain.ShippingAddress) (*domain.Order, error)

	// GetByID retrieves an order by its identifier
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)

	// Update replaces whichever of items/address is supplied (nil keeps the
	// prior value) and recomputes the total when items change
	Update(ctx context.Context, orderID string, items []domain.OrderItem, address *domain.ShippingAddress) (*domain.Order, error)

	// Cancel marks an order cancelled. Cancellation is terminal.
	Cancel(ctx context.Context, orderID string) (*domain.Order, error)

	// List returns a consistent snapshot of the full collection
	List(ctx context.Context) ([]domain.Order, error)
}

// EventPublisher defines the interface for publishing order lifecycle events
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.Order) error
	PublishOrderUpdated(ctx context.Context, order *domain.Order) error
	PublishOrderCancelled(ctx context.Context, order *domain.Order) error
}
