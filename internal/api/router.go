package api

import (
	"net/http"

	"github.com/Vayom/market-place/internal/metrics"
	"github.com/Vayom/market-place/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the middleware chain and every route. Route paths mirror
// the shapes the existing clients call, trailing slashes included.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AuthOptional())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimit())
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/debug/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.Requests().Snapshot())
	})

	// Accounts
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	profile := r.Group("/", middleware.AuthRequired())
	{
		profile.GET("/profile/", h.GetProfile)
		profile.PUT("/profile/", h.UpdateProfile)
	}

	// Catalog: reads are public, creation needs a seller account.
	r.GET("/products/", h.ListProducts)
	r.POST("/products/", middleware.AuthRequired(), middleware.RequireSeller(), h.CreateProduct)
	r.GET("/product_detail/:id/", h.ProductDetail)

	myProducts := r.Group("/my_products", middleware.AuthRequired())
	{
		myProducts.GET("/", h.MyProducts)
		myProducts.POST("/", middleware.RequireSeller(), h.CreateProduct)
		myProducts.GET("/:id/", h.MyProductDetail)
		myProducts.PUT("/:id/", h.UpdateMyProduct)
		myProducts.DELETE("/:id/", h.DeleteMyProduct)
	}

	// Cart
	authed := r.Group("/", middleware.AuthRequired())
	{
		authed.POST("/product_to_cart/:product_id/", h.AddProductToCart)
		authed.GET("/cart/", h.GetCart)
		authed.PUT("/cart/", h.UpdateCart)

		// Orders
		authed.POST("/order_create/", h.CreateOrder)
		authed.POST("/order_cancel/:order_id", h.CancelOrder)
		authed.GET("/orders/", h.ListOrders)
		authed.GET("/order_detail/:order_id/", h.OrderDetail)

		// Reviews
		authed.POST("/create_review/:product_id", h.CreateReview)
		authed.DELETE("/delete_review/:review_id", h.DeleteReview)
	}

	r.GET("/product_reviews/:product_id/", h.ProductReviews)

	// Categories and promo codes
	r.GET("/categories/", h.ListCategories)
	r.POST("/categories/", middleware.AuthRequired(), middleware.RequireAdmin(), h.CreateCategory)
	r.GET("/promo/:code/", h.LookupPromo)
	r.GET("/promo_codes/", middleware.AuthRequired(), middleware.RequireAdmin(), h.ListPromos)
	r.POST("/promo_codes/", middleware.AuthRequired(), middleware.RequireAdmin(), h.CreatePromo)

	r.PUT("/order_status/:order_id", middleware.AuthRequired(), middleware.RequireAdmin(), h.UpdateOrderStatus)

	return r
}
