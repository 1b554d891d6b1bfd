package order

import (
	"context"

	"github.com/Vayom/market-place/internal/cart"
	"github.com/Vayom/market-place/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	CreateFromCart(ctx context.Context, userID int64) (*Order, error)
	// Cancel removes a pending order owned by the caller and returns the
	// cart holding the restored products.
	Cancel(ctx context.Context, userID, orderID int64) (*cart.Cart, error)
	List(ctx context.Context, userID int64) ([]*Order, error)
	Detail(ctx context.Context, userID int64, isAdmin bool, orderID int64) (*Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error
}

type service struct {
	repo     Repository
	cartRepo cart.Repository
}

func NewService(repo Repository, cartRepo cart.Repository) Service {
	return &service{repo: repo, cartRepo: cartRepo}
}

func (s *service) CreateFromCart(ctx context.Context, userID int64) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateFromCart"),
		zap.Int64("user_id", userID),
	)

	order, err := s.repo.CreateFromCartTx(ctx, userID)
	if err != nil {
		log.Error("failed to create order from cart", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.String("total_amount", order.TotalAmount.String()),
	)
	return order, nil
}

func (s *service) Cancel(ctx context.Context, userID, orderID int64) (*cart.Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Cancel"),
		zap.Int64("user_id", userID),
		zap.Int64("order_id", orderID),
	)

	if err := s.repo.CancelTx(ctx, orderID, userID); err != nil {
		log.Error("failed to cancel order", zap.Error(err))
		return nil, err
	}

	c, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	log.Info("order cancelled", zap.Int("cart_products", len(c.Products)))
	return c, nil
}

func (s *service) List(ctx context.Context, userID int64) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Detail(ctx context.Context, userID int64, isAdmin bool, orderID int64) (*Order, error) {
	o, err := s.repo.GetDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		return nil, ErrNotOwner
	}
	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	validStatuses := map[string]bool{
		StatusPending:   true,
		StatusCompleted: true,
	}
	if !validStatuses[status] {
		return ErrInvalidStatus
	}

	return s.repo.UpdateStatus(ctx, orderID, status)
}
