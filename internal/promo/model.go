package promo

import "github.com/shopspring/decimal"

// PromoCode is modeled catalog data; discounts are not applied to order
// totals, which stay equal to the sum of product prices.
type PromoCode struct {
	ID             int64           `json:"id"`
	Code           string          `json:"code"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}
