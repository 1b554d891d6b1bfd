package api

import (
	"net/http"

	"github.com/Vayom/market-place/internal/cart"
	"github.com/Vayom/market-place/internal/middleware"

	"github.com/gin-gonic/gin"
)

type updateCartRequest struct {
	Products []int64 `json:"products" binding:"required"`
}

// cartResponse keeps the wire shape with product names alongside ids.
func cartResponse(c *cart.Cart) gin.H {
	return gin.H{
		"id":             c.ID,
		"user":           c.UserID,
		"products":       c.ProductIDs(),
		"products_names": c.ProductNames(),
	}
}

func (h *Handler) GetCart(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	crt, err := h.Carts.Get(c.Request.Context(), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(crt))
}

// UpdateCart replaces the caller's product set with the posted id list.
func (h *Handler) UpdateCart(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidData(c)
		return
	}

	crt, err := h.Carts.Replace(c.Request.Context(), ident.UserID, req.Products)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(crt))
}

func (h *Handler) AddProductToCart(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	crt, err := h.Carts.AddProduct(c.Request.Context(), ident.UserID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(crt))
}
