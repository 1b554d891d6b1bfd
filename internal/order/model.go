package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is stored free-text; these are the values the handlers accept.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

type Order struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Products    []OrderProduct  `json:"products,omitempty"`
	Payment     *Payment        `json:"payment,omitempty"`
}

// OrderProduct is the price snapshot attached to an order. It is not
// re-linked to later catalog price changes.
type OrderProduct struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Payment is one-to-one with an order. Modeled only; no gateway is called.
type Payment struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order"`
	PaymentMethod string          `json:"payment_method"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
}

const PaymentMethodUnpaid = "Unpaid"
