package promo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	discount := decimal.RequireFromString("5.00")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO promo_codes").
			WithArgs("WELCOME", discount).
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "discount_amount"}).
				AddRow(1, "WELCOME", "5.00"))

		p, err := repo.Create(context.Background(), "WELCOME", discount)
		require.NoError(t, err)
		assert.Equal(t, "WELCOME", p.Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO promo_codes").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "promo_codes_code_key"})

		_, err := repo.Create(context.Background(), "WELCOME", discount)
		assert.ErrorIs(t, err, ErrCodeExists)
	})
}

func TestRepository_GetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("FROM promo_codes").
			WithArgs("WELCOME").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "discount_amount"}).
				AddRow(1, "WELCOME", "5.00"))

		p, err := repo.GetByCode(context.Background(), "WELCOME")
		require.NoError(t, err)
		assert.True(t, p.DiscountAmount.Equal(decimal.RequireFromString("5.00")))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM promo_codes").
			WithArgs("GHOST").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "discount_amount"}))

		_, err := repo.GetByCode(context.Background(), "GHOST")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
