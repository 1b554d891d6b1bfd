package product

import (
	"context"

	"github.com/Vayom/market-place/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)

	MyProducts(ctx context.Context, userID int64) ([]*Product, error)
	MyProduct(ctx context.Context, id, userID int64) (*Product, error)
	UpdateMyProduct(ctx context.Context, id, userID int64, params UpdateProductParams) (*Product, error)
	DeleteMyProduct(ctx context.Context, id, userID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Int64("user_id", params.UserID),
	)

	if params.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Int64("product_id", p.ID))
	return p, nil
}

func (s *service) MyProducts(ctx context.Context, userID int64) ([]*Product, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *service) MyProduct(ctx context.Context, id, userID int64) (*Product, error) {
	p, err := s.repo.GetByIDForOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	// The query above already filtered on user_id; this guards against any
	// future repository change widening the filter.
	if p.UserID != userID {
		return nil, ErrNotOwner
	}
	return p, nil
}

func (s *service) UpdateMyProduct(ctx context.Context, id, userID int64, params UpdateProductParams) (*Product, error) {
	if !params.HasAnyField() {
		return nil, ErrNoUpdateFields
	}
	if params.Price != nil && params.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	if _, err := s.MyProduct(ctx, id, userID); err != nil {
		return nil, err
	}

	return s.repo.UpdateForOwner(ctx, id, userID, params)
}

func (s *service) DeleteMyProduct(ctx context.Context, id, userID int64) error {
	if _, err := s.MyProduct(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.DeleteForOwner(ctx, id, userID)
}
