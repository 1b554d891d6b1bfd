package promo

import (
	"context"
	"strings"

	"github.com/Vayom/market-place/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, code string, discount decimal.Decimal) (*PromoCode, error)
	Lookup(ctx context.Context, code string) (*PromoCode, error)
	List(ctx context.Context) ([]*PromoCode, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, code string, discount decimal.Decimal) (*PromoCode, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("code", code),
	)

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidCode
	}

	p, err := s.repo.Create(ctx, code, discount)
	if err != nil {
		log.Error("failed to create promo code", zap.Error(err))
		return nil, err
	}

	log.Info("promo code created", zap.Int64("promo_id", p.ID))
	return p, nil
}

func (s *service) Lookup(ctx context.Context, code string) (*PromoCode, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *service) List(ctx context.Context) ([]*PromoCode, error) {
	return s.repo.List(ctx)
}
