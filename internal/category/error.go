package category

import "errors"

var (
	ErrNotFound    = errors.New("category not found")
	ErrInvalidName = errors.New("category name is required")
)
