package review

import "errors"

var (
	// -- Resource State --
	ErrReviewNotFound  = errors.New("review not found")
	ErrProductNotFound = errors.New("product not found")

	// -- Authorization --
	ErrNotOwner = errors.New("review does not belong to caller")

	// -- Validation & Input --
	ErrInvalidRating = errors.New("rating must not be negative")
	ErrEmptyText     = errors.New("review text is required")
)
