package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createPromoRequest struct {
	Code           string          `json:"code" binding:"required"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

func (h *Handler) LookupPromo(c *gin.Context) {
	code := c.Param("code")

	p, err := h.Promos.Lookup(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListPromos is admin-only, mounted behind RequireAdmin.
func (h *Handler) ListPromos(c *gin.Context) {
	promos, err := h.Promos.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promos)
}

// CreatePromo is admin-only, mounted behind RequireAdmin.
func (h *Handler) CreatePromo(c *gin.Context) {
	var req createPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidData(c)
		return
	}

	p, err := h.Promos.Create(c.Request.Context(), req.Code, req.DiscountAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}
