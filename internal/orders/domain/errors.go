package domain

import (
	"fmt"

	"oms/pkg/errors"
)

// Domain-specific errors
var (
	ErrCustomerIDRequired  = errors.NewValidation("customer_id is required", nil)
	ErrNoItems             = errors.NewValidation("order must contain at least one item", nil)
	ErrProductIDRequired   = errors.NewValidation("product_id is required", nil)
	ErrProductNameRequired = errors.NewValidation("product_name is required", nil)
	ErrInvalidQuantity     = errors.NewValidation("quantity must be greater than 0", nil)
	ErrInvalidUnitPrice    = errors.NewValidation("unit_price must be greater than 0", nil)
	ErrIncompleteAddress   = errors.NewValidation("shipping address requires street, city, state and zip_code", nil)
)

// NewOrderNotFound creates a not found error with the order ID
func NewOrderNotFound(orderID string) error {
	return errors.NewNotFound("order", orderID)
}

// NewCannotUpdate signals an update against a content-immutable order
func NewCannotUpdate(orderID string, status OrderStatus) error {
	return errors.NewIllegalTransition(
		fmt.Sprintf("cannot update order %s with status '%s'", orderID, status),
	)
}

// NewCannotCancel signals a cancellation against a non-cancellable order
func NewCannotCancel(orderID string, status OrderStatus) error {
	return errors.NewIllegalTransition(
		fmt.Sprintf("cannot cancel order %s with status '%s'", orderID, status),
	)
}

// NewMalformedOrderID signals a stored identifier the allocator cannot parse
func NewMalformedOrderID(orderID string) error {
	return errors.NewStorageCorrupted(
		fmt.Sprintf("order id %q does not match the ORD-<number> format", orderID), nil,
	)
}
