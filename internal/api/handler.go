// Package api exposes the REST surface over the domain services.
package api

import (
	"github.com/Vayom/market-place/internal/cart"
	"github.com/Vayom/market-place/internal/category"
	"github.com/Vayom/market-place/internal/order"
	"github.com/Vayom/market-place/internal/product"
	"github.com/Vayom/market-place/internal/promo"
	"github.com/Vayom/market-place/internal/review"
	"github.com/Vayom/market-place/internal/user"
)

type Handler struct {
	Users      user.Service
	Products   product.Service
	Categories category.Service
	Carts      cart.Service
	Orders     order.Service
	Reviews    review.Service
	Promos     promo.Service
}

func NewHandler(
	users user.Service,
	products product.Service,
	categories category.Service,
	carts cart.Service,
	orders order.Service,
	reviews review.Service,
	promos promo.Service,
) *Handler {
	return &Handler{
		Users:      users,
		Products:   products,
		Categories: categories,
		Carts:      carts,
		Orders:     orders,
		Reviews:    reviews,
		Promos:     promos,
	}
}
