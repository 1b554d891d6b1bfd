package review

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(int64(1), int64(7), "Great keyboard", int32(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, time.Now()))

	rev, err := repo.Create(context.Background(), CreateReviewParams{
		ProductID: 1,
		UserID:    7,
		Text:      "Great keyboard",
		Rating:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), rev.ID)
	assert.Equal(t, int32(5), rev.Rating)
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM reviews").
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 4))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM reviews").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 99), ErrReviewNotFound)
	})
}

func TestRepository_ListByProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "product_id", "user_id", "text", "rating", "created_at"}).
		AddRow(5, 1, 8, "Still works", 4, time.Now()).
		AddRow(4, 1, 7, "Great keyboard", 5, time.Now().Add(-time.Hour))

	mock.ExpectQuery("FROM reviews").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	reviews, err := repo.ListByProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, int64(5), reviews[0].ID)
}
