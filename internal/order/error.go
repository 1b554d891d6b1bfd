package order

import "errors"

var (
	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
	ErrCartNotFound  = errors.New("cart not found")
	ErrCartEmpty     = errors.New("cart is empty")

	// -- Authorization --
	ErrNotOwner = errors.New("order does not belong to caller")

	// -- Validation & State Transitions --
	ErrNotCancellable = errors.New("the order cannot be cancelled")
	ErrInvalidStatus  = errors.New("invalid order status")
)
