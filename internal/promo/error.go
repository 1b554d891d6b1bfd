package promo

import "errors"

var (
	ErrNotFound    = errors.New("promo code not found")
	ErrCodeExists  = errors.New("promo code already exists")
	ErrInvalidCode = errors.New("promo code is required")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
