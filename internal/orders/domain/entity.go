package domain

import (
	"math"
	"time"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// CanModify reports whether items and shipping address may still change.
// Shipped, delivered and cancelled orders are content-immutable.
func (s OrderStatus) CanModify() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

// CanCancel reports whether the order may still be cancelled.
// You cannot cancel what has already shipped.
func (s OrderStatus) CanCancel() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

// DefaultCountry is applied when a shipping address omits the country
const DefaultCountry = "USA"

// OrderItem is a single line item within an order
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Validate validates a single line item
func (i OrderItem) Validate() error {
	if i.ProductID == "" {
		return ErrProductIDRequired
	}
	if i.ProductName == "" {
		return ErrProductNameRequired
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i.UnitPrice <= 0 {
		return ErrInvalidUnitPrice
	}
	return nil
}

// ValidateItems validates a full item list. An order must always carry at
// least one item.
func ValidateItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TotalAmount computes the order total over a list of items, rounded to
// two decimal places
func TotalAmount(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return math.Round(total*100) / 100
}

// ShippingAddress is the delivery destination of an order. It is replaced
// wholesale on update, never partially merged.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Validate validates the shipping address
func (a ShippingAddress) Validate() error {
	if a.Street == "" || a.City == "" || a.State == "" || a.ZipCode == "" {
		return ErrIncompleteAddress
	}
	return nil
}

// Normalized returns a copy with the default country applied when omitted
func (a ShippingAddress) Normalized() ShippingAddress {
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	return a
}

// Order is the aggregate root of the ledger
type Order struct {
	OrderID         string          `json:"order_id"`
	CustomerID      string          `json:"customer_id"`
	Status          OrderStatus     `json:"status"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"total_amount"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewOrder creates a new pending order with validation. The total is derived
// from the items and both timestamps are set to now.
func NewOrder(orderID, customerID string, items []OrderItem, address ShippingAddress, now time.Time) (*Order, error) {
	if customerID == "" {
		return nil, ErrCustomerIDRequired
	}
	if err := ValidateItems(items); err != nil {
		return nil, err
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		OrderID:         orderID,
		CustomerID:      customerID,
		Status:          OrderStatusPending,
		Items:           items,
		TotalAmount:     TotalAmount(items),
		ShippingAddress: address.Normalized(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
