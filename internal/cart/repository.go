package cart

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Vayom/market-place/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetByUser(ctx context.Context, userID int64) (*Cart, error)
	AddProduct(ctx context.Context, userID, productID int64) error
	// ReplaceProducts swaps the whole product set inside one transaction,
	// locking the cart row so concurrent order creation cannot interleave.
	ReplaceProducts(ctx context.Context, userID int64, productIDs []int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUser(ctx context.Context, userID int64) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetByUser"),
		zap.Int64("user_id", userID),
	)

	cart := &Cart{Products: []CartProduct{}}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id
		FROM carts
		WHERE user_id = $1
	`, userID).Scan(&cart.ID, &cart.UserID)

	if errors.Is(err, sql.ErrNoRows) {
		log.Info("cart not found")
		return nil, ErrCartNotFound
	}
	if err != nil {
		log.Error("failed to scan cart", zap.Error(err))
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.price
		FROM cart_products cp
		JOIN products p ON p.id = cp.product_id
		WHERE cp.cart_id = $1
		ORDER BY p.id
	`, cart.ID)
	if err != nil {
		log.Error("failed to query cart products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p CartProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		cart.Products = append(cart.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cart, nil
}

func (r *repository) AddProduct(ctx context.Context, userID, productID int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddProduct"),
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID),
	)

	// The product set has set semantics: re-adding is a no-op.
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_products (cart_id, product_id)
		SELECT c.id, $2 FROM carts c WHERE c.user_id = $1
		ON CONFLICT (cart_id, product_id) DO NOTHING
	`, userID, productID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == "23503" {
			return ErrProductNotFound
		}
		log.Error("failed to add product to cart", zap.Error(err))
		return err
	}

	if _, err := res.RowsAffected(); err != nil {
		return err
	}

	log.Info("product added to cart")
	return nil
}

func (r *repository) ReplaceProducts(ctx context.Context, userID int64, productIDs []int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ReplaceProducts"),
		zap.Int64("user_id", userID),
		zap.Int("count", len(productIDs)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var cartID int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM carts WHERE user_id = $1 FOR UPDATE
	`, userID).Scan(&cartID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCartNotFound
	}
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM cart_products WHERE cart_id = $1`, cartID); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return err
	}

	for _, productID := range productIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO cart_products (cart_id, product_id)
			VALUES ($1, $2)
			ON CONFLICT (cart_id, product_id) DO NOTHING
		`, cartID, productID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && string(pqErr.Code) == "23503" {
				return ErrProductNotFound
			}
			log.Error("failed to insert cart product", zap.Int64("product_id", productID), zap.Error(err))
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	log.Info("cart products replaced")
	return nil
}
