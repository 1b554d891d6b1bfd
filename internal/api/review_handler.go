package api

import (
	"net/http"

	"github.com/Vayom/market-place/internal/middleware"
	"github.com/Vayom/market-place/internal/review"

	"github.com/gin-gonic/gin"
)

type createReviewRequest struct {
	Text   string `json:"text"`
	Rating *int32 `json:"rating"`
}

func (h *Handler) CreateReview(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating == nil {
		invalidData(c)
		return
	}

	rev, err := h.Reviews.Create(c.Request.Context(), review.CreateReviewParams{
		ProductID: productID,
		UserID:    ident.UserID,
		Text:      req.Text,
		Rating:    *req.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review successfully",
		"review":  rev,
	})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return
	}

	if err := h.Reviews.Delete(c.Request.Context(), ident.UserID, reviewID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ProductReviews(c *gin.Context) {
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	reviews, err := h.Reviews.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
