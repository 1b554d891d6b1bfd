package api

import (
	"net/http"

	"github.com/Vayom/market-place/internal/middleware"
	"github.com/Vayom/market-place/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category" binding:"required"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int64           `json:"category"`
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct is reachable only through RequireSeller; the owner is always
// the caller, never taken from the body.
func (h *Handler) CreateProduct(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidData(c)
		return
	}

	p, err := h.Products.Create(c.Request.Context(), product.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		UserID:      ident.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) ProductDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.Products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) MyProducts(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	products, err := h.Products.MyProducts(c.Request.Context(), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) MyProductDetail(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.Products.MyProduct(c.Request.Context(), id, ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateMyProduct(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidData(c)
		return
	}

	p, err := h.Products.UpdateMyProduct(c.Request.Context(), id, ident.UserID, product.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteMyProduct(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Products.DeleteMyProduct(c.Request.Context(), id, ident.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
