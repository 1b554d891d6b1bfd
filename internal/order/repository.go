package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Vayom/market-place/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	// CreateFromCartTx runs the whole read-accumulate-clear sequence in one
	// transaction, holding a row lock on the caller's cart so concurrent
	// cart mutation cannot produce a wrong total or a half-filled order.
	CreateFromCartTx(ctx context.Context, userID int64) (*Order, error)

	// CancelTx deletes a pending order and moves its products back into the
	// owner's cart, atomically.
	CancelTx(ctx context.Context, orderID, userID int64) error

	ListByUser(ctx context.Context, userID int64) ([]*Order, error)
	GetDetail(ctx context.Context, orderID int64) (*Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateFromCartTx(ctx context.Context, userID int64) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateFromCartTx"),
		zap.Int64("user_id", userID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// 1. Lock the cart row for the duration of the transaction.
	var cartID int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM carts WHERE user_id = $1 FOR UPDATE
	`, userID).Scan(&cartID)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("cart not found")
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	// 2. Read the cart contents with current catalog prices.
	rows, err := tx.QueryContext(ctx, `
		SELECT p.id, p.name, p.price
		FROM cart_products cp
		JOIN products p ON p.id = cp.product_id
		WHERE cp.cart_id = $1
		ORDER BY p.id
	`, cartID)
	if err != nil {
		log.Error("failed to read cart products", zap.Error(err))
		return nil, err
	}

	var products []OrderProduct
	for rows.Next() {
		var p OrderProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			rows.Close()
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(products) == 0 {
		log.Info("cart is empty")
		return nil, ErrCartEmpty
	}

	// 3. Create the order with a zero total, then attach products while
	//    accumulating the total from the price snapshot.
	order := &Order{UserID: userID, Status: StatusPending, TotalAmount: decimal.Zero}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, status, total_amount)
		VALUES ($1, $2, 0)
		RETURNING id, created_at
	`, userID, StatusPending).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	for _, p := range products {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_products (order_id, product_id)
			VALUES ($1, $2)
		`, order.ID, p.ID); err != nil {
			log.Error("failed to attach product", zap.Int64("product_id", p.ID), zap.Error(err))
			return nil, err
		}
		total = total.Add(p.Price)
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE orders SET total_amount = $2 WHERE id = $1
	`, order.ID, total); err != nil {
		log.Error("failed to persist total", zap.Error(err))
		return nil, err
	}

	// 4. Payment record is modeled but never charged.
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO payments (order_id, payment_method, amount_paid)
		VALUES ($1, $2, 0)
	`, order.ID, PaymentMethodUnpaid); err != nil {
		log.Error("failed to insert payment record", zap.Error(err))
		return nil, err
	}

	// 5. Clear the cart.
	if _, err = tx.ExecContext(ctx, `
		DELETE FROM cart_products WHERE cart_id = $1
	`, cartID); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	order.TotalAmount = total
	order.Products = products

	log.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.String("total_amount", total.String()),
	)
	return order, nil
}

func (r *repository) CancelTx(ctx context.Context, orderID, userID int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CancelTx"),
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", userID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Lock the order row; ownership and status checks happen under the lock.
	var ownerID int64
	var status string
	err = tx.QueryRowContext(ctx, `
		SELECT user_id, status FROM orders WHERE id = $1 FOR UPDATE
	`, orderID).Scan(&ownerID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("order not found")
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if ownerID != userID {
		log.Info("cancel rejected, caller is not the owner")
		return ErrNotOwner
	}
	if status != StatusPending {
		log.Info("cancel rejected", zap.String("status", status))
		return ErrNotCancellable
	}

	// 2. Lock the cart and move the order products back into its set.
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

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO cart_products (cart_id, product_id)
		SELECT $1, product_id FROM order_products WHERE order_id = $2
		ON CONFLICT (cart_id, product_id) DO NOTHING
	`, cartID, orderID); err != nil {
		log.Error("failed to return products to cart", zap.Error(err))
		return err
	}

	// 3. Hard delete; order_products and payments cascade.
	if _, err = tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID); err != nil {
		log.Error("failed to delete order", zap.Error(err))
		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	log.Info("order cancelled")
	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, status, total_amount, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &o)
	}
	return result, rows.Err()
}

func (r *repository) GetDetail(ctx context.Context, orderID int64) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetDetail"),
		zap.Int64("order_id", orderID),
	)

	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, status, total_amount, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		log.Error("failed to scan order", zap.Error(err))
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.price
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1
		ORDER BY p.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	o.Products = []OrderProduct{}
	for rows.Next() {
		var p OrderProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		o.Products = append(o.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var pay Payment
	err = r.db.QueryRowContext(ctx, `
		SELECT id, order_id, payment_method, amount_paid
		FROM payments
		WHERE order_id = $1
	`, orderID).Scan(&pay.ID, &pay.OrderID, &pay.PaymentMethod, &pay.AmountPaid)
	if err == nil {
		o.Payment = &pay
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return &o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateStatus"),
		zap.Int64("order_id", orderID),
		zap.String("status", status),
	)

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1
	`, orderID, status)
	if err != nil {
		log.Error("failed to update status", zap.Error(err))
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	log.Info("order status updated")
	return nil
}
