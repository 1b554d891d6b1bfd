package review

import (
	"context"
	"errors"
	"strings"

	"github.com/Vayom/market-place/internal/logger"
	"github.com/Vayom/market-place/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, params CreateReviewParams) (*Review, error)
	Delete(ctx context.Context, userID, reviewID int64) error
	ListByProduct(ctx context.Context, productID int64) ([]*Review, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) Create(ctx context.Context, params CreateReviewParams) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Int64("product_id", params.ProductID),
		zap.Int64("user_id", params.UserID),
	)

	if strings.TrimSpace(params.Text) == "" {
		return nil, ErrEmptyText
	}
	if params.Rating < 0 {
		return nil, ErrInvalidRating
	}

	if _, err := s.productRepo.GetByID(ctx, params.ProductID); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			log.Info("product not found")
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	rev, err := s.repo.Create(ctx, params)
	if err != nil {
		log.Error("failed to create review", zap.Error(err))
		return nil, err
	}

	log.Info("review created", zap.Int64("review_id", rev.ID))
	return rev, nil
}

// Delete removes a review after verifying the caller wrote it.
func (s *service) Delete(ctx context.Context, userID, reviewID int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Delete"),
		zap.Int64("review_id", reviewID),
		zap.Int64("user_id", userID),
	)

	rev, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rev.UserID != userID {
		log.Info("delete rejected, caller is not the author")
		return ErrNotOwner
	}

	return s.repo.Delete(ctx, reviewID)
}

func (s *service) ListByProduct(ctx context.Context, productID int64) ([]*Review, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.repo.ListByProduct(ctx, productID)
}
