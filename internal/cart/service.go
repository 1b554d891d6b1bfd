package cart

import (
	"context"
	"errors"

	"github.com/Vayom/market-place/internal/logger"
	"github.com/Vayom/market-place/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	Get(ctx context.Context, userID int64) (*Cart, error)
	AddProduct(ctx context.Context, userID, productID int64) (*Cart, error)
	Replace(ctx context.Context, userID int64, productIDs []int64) (*Cart, error)
}

// service implements the Service interface
type service struct {
	repo        Repository
	productRepo product.Repository
}

// NewService creates a new cart service
func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) Get(ctx context.Context, userID int64) (*Cart, error) {
	return s.repo.GetByUser(ctx, userID)
}

// AddProduct appends a catalog product to the caller's cart set and returns
// the updated cart.
func (s *service) AddProduct(ctx context.Context, userID, productID int64) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddProduct"),
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID),
	)

	// 1. Resolve the product first: a missing product is a 404, not a silent no-op.
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// 2. Add to the set.
	if err := s.repo.AddProduct(ctx, userID, productID); err != nil {
		log.Error("failed to add product", zap.Error(err))
		return nil, err
	}

	// 3. Return the updated cart.
	return s.repo.GetByUser(ctx, userID)
}

// Replace swaps the cart's product set for the given ids, validating each one.
func (s *service) Replace(ctx context.Context, userID int64, productIDs []int64) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Replace"),
		zap.Int64("user_id", userID),
	)

	for _, id := range productIDs {
		if _, err := s.productRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, product.ErrNotFound) {
				log.Info("unknown product in replace", zap.Int64("product_id", id))
				return nil, ErrProductNotFound
			}
			return nil, err
		}
	}

	if err := s.repo.ReplaceProducts(ctx, userID, productIDs); err != nil {
		log.Error("failed to replace cart products", zap.Error(err))
		return nil, err
	}

	return s.repo.GetByUser(ctx, userID)
}
