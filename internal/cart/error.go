package cart

import "errors"

var (
	// -- Resource State --
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
)
