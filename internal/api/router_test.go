package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vayom/market-place/internal/cart"
	"github.com/Vayom/market-place/internal/order"
	"github.com/Vayom/market-place/internal/promo"
	"github.com/Vayom/market-place/internal/review"
	"github.com/Vayom/market-place/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateFromCart(ctx context.Context, userID int64) (*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, userID, orderID int64) (*cart.Cart, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, userID int64) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) Detail(ctx context.Context, userID int64, isAdmin bool, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, userID, isAdmin, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Create(ctx context.Context, params review.CreateReviewParams) (*review.Review, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, userID, reviewID int64) error {
	args := m.Called(ctx, userID, reviewID)
	return args.Error(0)
}

func (m *MockReviewService) ListByProduct(ctx context.Context, productID int64) ([]*review.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

type MockPromoService struct {
	mock.Mock
}

func (m *MockPromoService) Create(ctx context.Context, code string, discount decimal.Decimal) (*promo.PromoCode, error) {
	args := m.Called(ctx, code, discount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promo.PromoCode), args.Error(1)
}

func (m *MockPromoService) Lookup(ctx context.Context, code string) (*promo.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promo.PromoCode), args.Error(1)
}

func (m *MockPromoService) List(ctx context.Context) ([]*promo.PromoCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*promo.PromoCode), args.Error(1)
}

func buyerToken(t *testing.T) string {
	t.Helper()
	token, err := user.GenerateJWT(7, "USER", "buyer@example.com", false)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := user.GenerateJWT(1, "ADMIN", "staff@example.com", false)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, method, path, token string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := NewRouter(NewHandler(nil, nil, nil, nil, nil, nil, nil))
	w := doRequest(r, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestCreateOrder(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Unauthenticated", func(t *testing.T) {
		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, nil, nil))
		w := doRequest(r, http.MethodPost, "/order_create/", "", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "User is not authenticated")
	})

	t.Run("Success", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("CreateFromCart", mock.Anything, int64(7)).
			Return(&order.Order{
				ID:          10,
				UserID:      7,
				Status:      order.StatusPending,
				TotalAmount: decimal.RequireFromString("69.98"),
			}, nil)

		r := NewRouter(NewHandler(nil, nil, nil, nil, orders, nil, nil))
		w := doRequest(r, http.MethodPost, "/order_create/", buyerToken(t), nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Order created successfully")
		orders.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("CreateFromCart", mock.Anything, int64(7)).
			Return(nil, order.ErrCartEmpty)

		r := NewRouter(NewHandler(nil, nil, nil, nil, orders, nil, nil))
		w := doRequest(r, http.MethodPost, "/order_create/", buyerToken(t), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Cart is empty")
	})
}

func TestCancelOrder(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Success", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("Cancel", mock.Anything, int64(7), int64(10)).
			Return(&cart.Cart{
				ID:       3,
				UserID:   7,
				Products: []cart.CartProduct{{ID: 1, Name: "Keyboard"}},
			}, nil)

		r := NewRouter(NewHandler(nil, nil, nil, nil, orders, nil, nil))
		w := doRequest(r, http.MethodPost, "/order_cancel/10", buyerToken(t), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Keyboard")
	})

	t.Run("NotPending", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("Cancel", mock.Anything, int64(7), int64(10)).
			Return(nil, order.ErrNotCancellable)

		r := NewRouter(NewHandler(nil, nil, nil, nil, orders, nil, nil))
		w := doRequest(r, http.MethodPost, "/order_cancel/10", buyerToken(t), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "The order cannot be cancelled")
	})

	t.Run("NotOwner", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("Cancel", mock.Anything, int64(7), int64(10)).
			Return(nil, order.ErrNotOwner)

		r := NewRouter(NewHandler(nil, nil, nil, nil, orders, nil, nil))
		w := doRequest(r, http.MethodPost, "/order_cancel/10", buyerToken(t), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Bad User")
	})

	t.Run("BadID", func(t *testing.T) {
		r := NewRouter(NewHandler(nil, nil, nil, nil, new(MockOrderService), nil, nil))
		w := doRequest(r, http.MethodPost, "/order_cancel/abc", buyerToken(t), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid data")
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("NonAdmin", func(t *testing.T) {
		r := NewRouter(NewHandler(nil, nil, nil, nil, new(MockOrderService), nil, nil))
		w := doRequest(r, http.MethodPut, "/order_status/10", buyerToken(t), []byte(`{"status":"Completed"}`))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("UpdateStatus", mock.Anything, int64(10), "Completed").Return(nil)

		r := NewRouter(NewHandler(nil, nil, nil, nil, orders, nil, nil))
		w := doRequest(r, http.MethodPut, "/order_status/10", adminToken(t), []byte(`{"status":"Completed"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		orders.AssertExpectations(t)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("UpdateStatus", mock.Anything, int64(10), "Shipped").
			Return(order.ErrInvalidStatus)

		r := NewRouter(NewHandler(nil, nil, nil, nil, orders, nil, nil))
		w := doRequest(r, http.MethodPut, "/order_status/10", adminToken(t), []byte(`{"status":"Shipped"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateReview(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Success", func(t *testing.T) {
		reviews := new(MockReviewService)
		reviews.On("Create", mock.Anything, review.CreateReviewParams{
			ProductID: 1,
			UserID:    7,
			Text:      "Great keyboard",
			Rating:    5,
		}).Return(&review.Review{ID: 4, ProductID: 1, UserID: 7, Text: "Great keyboard", Rating: 5}, nil)

		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, reviews, nil))
		w := doRequest(r, http.MethodPost, "/create_review/1", buyerToken(t),
			[]byte(`{"text":"Great keyboard","rating":5}`))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Review successfully")
	})

	t.Run("MissingRating", func(t *testing.T) {
		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, new(MockReviewService), nil))
		w := doRequest(r, http.MethodPost, "/create_review/1", buyerToken(t),
			[]byte(`{"text":"Great keyboard"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid data")
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		reviews := new(MockReviewService)
		reviews.On("Create", mock.Anything, mock.Anything).
			Return(nil, review.ErrProductNotFound)

		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, reviews, nil))
		w := doRequest(r, http.MethodPost, "/create_review/99", buyerToken(t),
			[]byte(`{"text":"ok","rating":3}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Product does not exist")
	})
}

func TestDeleteReview(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Success", func(t *testing.T) {
		reviews := new(MockReviewService)
		reviews.On("Delete", mock.Anything, int64(7), int64(4)).Return(nil)

		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, reviews, nil))
		w := doRequest(r, http.MethodDelete, "/delete_review/4", buyerToken(t), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("NotAuthor", func(t *testing.T) {
		reviews := new(MockReviewService)
		reviews.On("Delete", mock.Anything, int64(7), int64(4)).
			Return(review.ErrNotOwner)

		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, reviews, nil))
		w := doRequest(r, http.MethodDelete, "/delete_review/4", buyerToken(t), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRegisterValidation(t *testing.T) {
	t.Run("ShortPassword", func(t *testing.T) {
		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, nil, nil))
		w := doRequest(r, http.MethodPost, "/register", "",
			[]byte(`{"email":"buyer@example.com","password":"short"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid data")
	})

	t.Run("BadEmail", func(t *testing.T) {
		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, nil, nil))
		w := doRequest(r, http.MethodPost, "/register", "",
			[]byte(`{"email":"not-an-email","password":"longenough"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListPromos(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("NonAdmin", func(t *testing.T) {
		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, nil, new(MockPromoService)))
		w := doRequest(r, http.MethodGet, "/promo_codes/", buyerToken(t), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin", func(t *testing.T) {
		promos := new(MockPromoService)
		promos.On("List", mock.Anything).
			Return([]*promo.PromoCode{
				{ID: 1, Code: "WELCOME", DiscountAmount: decimal.RequireFromString("5.00")},
			}, nil)

		r := NewRouter(NewHandler(nil, nil, nil, nil, nil, nil, promos))
		w := doRequest(r, http.MethodGet, "/promo_codes/", adminToken(t), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "WELCOME")
		promos.AssertExpectations(t)
	})
}

func TestCreateProductRequiresSeller(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := NewRouter(NewHandler(nil, nil, nil, nil, nil, nil, nil))
	w := doRequest(r, http.MethodPost, "/products/", buyerToken(t),
		[]byte(`{"name":"Keyboard","price":"49.99","category":1}`))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "seller account required")
}
