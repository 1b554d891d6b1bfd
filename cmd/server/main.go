package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vayom/market-place/internal/api"
	"github.com/Vayom/market-place/internal/cart"
	"github.com/Vayom/market-place/internal/category"
	"github.com/Vayom/market-place/internal/config"
	"github.com/Vayom/market-place/internal/db"
	"github.com/Vayom/market-place/internal/logger"
	"github.com/Vayom/market-place/internal/order"
	"github.com/Vayom/market-place/internal/product"
	"github.com/Vayom/market-place/internal/promo"
	"github.com/Vayom/market-place/internal/review"
	"github.com/Vayom/market-place/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	user.SetJWTSecret(cfg.JWTSecret)

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartRepo)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo, productRepo)

	promoRepo := promo.NewRepository(database)
	promoSvc := promo.NewService(promoRepo)

	handler := api.NewHandler(userSvc, productSvc, categorySvc, cartSvc, orderSvc, reviewSvc, promoSvc)
	router := api.NewRouter(handler)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Market place API running at http://localhost:%s/", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
