package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Vayom/market-place/internal/cart"
	"github.com/Vayom/market-place/internal/category"
	"github.com/Vayom/market-place/internal/logger"
	"github.com/Vayom/market-place/internal/order"
	"github.com/Vayom/market-place/internal/product"
	"github.com/Vayom/market-place/internal/promo"
	"github.com/Vayom/market-place/internal/review"
	"github.com/Vayom/market-place/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates domain sentinel errors into the HTTP taxonomy:
// 401 unauthenticated, 404 missing resource, 403 ownership/role violation,
// 400 validation, 500 everything else.
func respondError(c *gin.Context, err error) {
	switch {
	// -- 404 --
	case errors.Is(err, product.ErrNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, review.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
	case errors.Is(err, cart.ErrCartNotFound),
		errors.Is(err, order.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart does not exist"})
	case errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order does not exist"})
	case errors.Is(err, review.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Review does not exist"})
	case errors.Is(err, category.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Category does not exist"})
	case errors.Is(err, promo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Promo code does not exist"})
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, user.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User does not exist"})
	// A non-owner cancelling an order learns nothing about it.
	case errors.Is(err, order.ErrNotOwner):
		c.JSON(http.StatusNotFound, gin.H{"error": "Bad User"})

	// -- 403 --
	case errors.Is(err, product.ErrNotOwner),
		errors.Is(err, review.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})

	// -- 401 --
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})

	// -- 400 --
	case errors.Is(err, order.ErrNotCancellable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "The order cannot be cancelled"})
	case errors.Is(err, order.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, product.ErrCategoryNotFound),
		errors.Is(err, product.ErrNoUpdateFields),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, review.ErrEmptyText),
		errors.Is(err, category.ErrInvalidName),
		errors.Is(err, promo.ErrInvalidCode),
		errors.Is(err, promo.ErrCodeExists),
		errors.Is(err, user.ErrEmailExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func invalidData(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
}

// pathID parses a numeric id path parameter; responds 400 itself on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		invalidData(c)
		return 0, false
	}
	return id, true
}
