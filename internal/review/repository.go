package review

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Vayom/market-place/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateReviewParams) (*Review, error)
	GetByID(ctx context.Context, id int64) (*Review, error)
	Delete(ctx context.Context, id int64) error
	ListByProduct(ctx context.Context, productID int64) ([]*Review, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params CreateReviewParams) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Int64("product_id", params.ProductID),
		zap.Int64("user_id", params.UserID),
	)

	rev := &Review{
		ProductID: params.ProductID,
		UserID:    params.UserID,
		Text:      params.Text,
		Rating:    params.Rating,
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (product_id, user_id, text, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, params.ProductID, params.UserID, params.Text, params.Rating).Scan(&rev.ID, &rev.CreatedAt)
	if err != nil {
		log.Error("failed to create review", zap.Error(err))
		return nil, err
	}

	log.Info("review created", zap.Int64("review_id", rev.ID))
	return rev, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Review, error) {
	var rev Review
	err := r.db.QueryRowContext(ctx, `
		SELECT id, product_id, user_id, text, rating, created_at
		FROM reviews
		WHERE id = $1
	`, id).Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.Text, &rev.Rating, &rev.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Delete"),
		zap.Int64("review_id", id),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete review", zap.Error(err))
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	log.Info("review deleted")
	return nil
}

func (r *repository) ListByProduct(ctx context.Context, productID int64) ([]*Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, user_id, text, rating, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Review, 0)
	for rows.Next() {
		var rev Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.Text, &rev.Rating, &rev.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &rev)
	}
	return result, rows.Err()
}
