package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Vayom/market-place/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	// Create inserts the user row together with its one-to-one profile and
	// cart rows in a single transaction. Every account gets exactly one of
	// each, at creation time.
	Create(ctx context.Context, email, passwordHash string, role Role, isSeller bool) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfileAddress(ctx context.Context, userID int64, address *string) (*Profile, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, passwordHash string, role Role, isSeller bool) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("email", email),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	u := &User{Email: email, PasswordHash: passwordHash, Role: role, IsSeller: isSeller}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, role, is_seller)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, email, passwordHash, role, isSeller).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			log.Info("email already registered")
			return nil, ErrEmailExists
		}
		log.Error("failed to insert user", zap.Error(err))
		return nil, err
	}

	// Provisioning hook: one profile and one cart per user, created here and
	// nowhere else.
	if _, err = tx.ExecContext(ctx, `INSERT INTO user_profiles (user_id) VALUES ($1)`, u.ID); err != nil {
		log.Error("failed to insert profile", zap.Error(err))
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, `INSERT INTO carts (user_id) VALUES ($1)`, u.ID); err != nil {
		log.Error("failed to insert cart", zap.Error(err))
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("user created", zap.Int64("user_id", u.ID))
	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role, is_seller, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsSeller, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role, is_seller, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsSeller, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProfile"),
		zap.Int64("user_id", userID),
	)

	var p Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, address
		FROM user_profiles
		WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.Address)

	if errors.Is(err, sql.ErrNoRows) {
		log.Info("profile not found")
		return nil, ErrProfileNotFound
	}
	if err != nil {
		log.Error("failed to scan profile", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdateProfileAddress(ctx context.Context, userID int64, address *string) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProfileAddress"),
		zap.Int64("user_id", userID),
	)

	var p Profile
	err := r.db.QueryRowContext(ctx, `
		UPDATE user_profiles
		SET address = $2
		WHERE user_id = $1
		RETURNING id, user_id, address
	`, userID, address).Scan(&p.ID, &p.UserID, &p.Address)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		log.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile updated")
	return &p, nil
}
