package category

import (
	"context"
	"strings"

	"github.com/Vayom/market-place/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filter *string) ([]*Category, error)
	Add(ctx context.Context, name string) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter *string) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)

	categories, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list categories", zap.Error(err))
		return nil, err
	}

	return categories, nil
}

func (s *service) Add(ctx context.Context, name string) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Add"),
		zap.String("name", name),
	)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	c, err := s.repo.Add(ctx, name)
	if err != nil {
		log.Error("failed to add category", zap.Error(err))
		return nil, err
	}

	log.Info("category added", zap.Int64("category_id", c.ID))
	return c, nil
}
