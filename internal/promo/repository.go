package promo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Vayom/market-place/internal/logger"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, code string, discount decimal.Decimal) (*PromoCode, error)
	GetByCode(ctx context.Context, code string) (*PromoCode, error)
	List(ctx context.Context) ([]*PromoCode, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, code string, discount decimal.Decimal) (*PromoCode, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("code", code),
	)

	var p PromoCode
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO promo_codes (code, discount_amount)
		VALUES ($1, $2)
		RETURNING id, code, discount_amount
	`, code, discount).Scan(&p.ID, &p.Code, &p.DiscountAmount)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			log.Info("promo code already exists")
			return nil, ErrCodeExists
		}
		log.Error("failed to create promo code", zap.Error(err))
		return nil, err
	}

	log.Info("promo code created", zap.Int64("promo_id", p.ID))
	return &p, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*PromoCode, error) {
	var p PromoCode
	err := r.db.QueryRowContext(ctx, `
		SELECT id, code, discount_amount
		FROM promo_codes
		WHERE code = $1
	`, code).Scan(&p.ID, &p.Code, &p.DiscountAmount)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]*PromoCode, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, discount_amount
		FROM promo_codes
		ORDER BY code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*PromoCode, 0)
	for rows.Next() {
		var p PromoCode
		if err := rows.Scan(&p.ID, &p.Code, &p.DiscountAmount); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	return result, rows.Err()
}
