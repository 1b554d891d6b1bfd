package api

import (
	"net/http"

	"github.com/Vayom/market-place/internal/middleware"

	"github.com/gin-gonic/gin"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder builds an order from the caller's cart contents and empties
// the cart, all in one transaction.
func (h *Handler) CreateOrder(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	o, err := h.Orders.CreateFromCart(c.Request.Context(), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   o,
	})
}

// CancelOrder deletes a pending order owned by the caller and returns the
// cart with the restored products.
func (h *Handler) CancelOrder(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	crt, err := h.Orders.Cancel(c.Request.Context(), ident.UserID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(crt))
}

func (h *Handler) ListOrders(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	orders, err := h.Orders.List(c.Request.Context(), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) OrderDetail(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	o, err := h.Orders.Detail(c.Request.Context(), ident.UserID, ident.IsAdmin(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// UpdateOrderStatus is admin-only, mounted behind RequireAdmin.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidData(c)
		return
	}

	if err := h.Orders.UpdateStatus(c.Request.Context(), orderID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
