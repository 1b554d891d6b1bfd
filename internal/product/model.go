package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category"`
	UserID      int64           `json:"user"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int64
	UserID      int64
}

// UpdateProductParams carries optional fields; nil means keep current value.
type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *int64
}

func (p UpdateProductParams) HasAnyField() bool {
	return p.Name != nil ||
		p.Description != nil ||
		p.Price != nil ||
		p.CategoryID != nil
}
