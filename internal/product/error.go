package product

import "errors"

var (
	// -- Resource State --
	ErrNotFound         = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")

	// -- Authorization --
	ErrNotOwner = errors.New("product does not belong to caller")

	// -- Validation & Input --
	ErrNoUpdateFields = errors.New("no fields to update")
	ErrInvalidPrice   = errors.New("price must not be negative")

	// -- Constants (External Systems) --
	PgForeignKeyViolation = "23503"
)
