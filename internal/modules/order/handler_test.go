package order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightwisdom/storefront-backend/internal/httpx"
)

type stubService struct {
	order *Order
	err   error
}

func (s *stubService) PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*Order, error) {
	return s.order, s.err
}
func (s *stubService) GetOrder(ctx context.Context, userID string, isAdmin bool, orderID string) (*Order, error) {
	return s.order, s.err
}
func (s *stubService) ListUserOrders(ctx context.Context, userID string) ([]*Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*Order{s.order}, nil
}
func (s *stubService) ListAllOrders(ctx context.Context) ([]*Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*Order{s.order}, nil
}
func (s *stubService) PreviewCoupon(ctx context.Context, userID, code string) (*CouponPreview, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &CouponPreview{Code: code, Subtotal: 50, Discount: 5, Total: 45}, nil
}
func (s *stubService) UpdateStatus(ctx context.Context, orderID string, req UpdateStatusRequest) (*Order, error) {
	return s.order, s.err
}
func (s *stubService) SubmitTransaction(ctx context.Context, userID, orderID string, req SubmitTransactionRequest) (*Order, error) {
	return s.order, s.err
}
func (s *stubService) VerifyTransaction(ctx context.Context, orderID string, req VerifyTransactionRequest) (*Order, error) {
	return s.order, s.err
}

func testRouter(svc Service, isAdmin bool) *chi.Mux {
	identity := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := httpx.WithIdentity(r.Context(), httpx.Identity{UserID: uuid.New(), IsAdmin: isAdmin})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
	passthrough := func(next http.Handler) http.Handler { return next }

	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router, identity, passthrough)
	return router
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerStatusMapping(t *testing.T) {
	orderID := uuid.New().String()

	t.Run("place order created", func(t *testing.T) {
		router := testRouter(&stubService{order: &Order{OrderNumber: "123456789012345"}}, false)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/orders",
			PlaceOrderRequest{Items: []OrderLine{{ProductID: uuid.New().String(), Quantity: 1}}, PaymentMethod: "COD"})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "123456789012345")
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		router := testRouter(&stubService{err: ErrNotFound}, false)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+orderID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("taken order number maps to 409", func(t *testing.T) {
		router := testRouter(&stubService{err: ErrOrderNumberTaken}, false)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/orders",
			PlaceOrderRequest{Items: []OrderLine{{ProductID: uuid.New().String(), Quantity: 1}}, PaymentMethod: "COD"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation maps to 400", func(t *testing.T) {
		router := testRouter(&stubService{err: ErrValidation}, false)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/orders", PlaceOrderRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("shipment guard maps to 400", func(t *testing.T) {
		router := testRouter(&stubService{err: ErrShipmentInfoMissing}, true)
		rec := doJSON(t, router, http.MethodPut, "/api/v1/orders/"+orderID+"/status",
			UpdateStatusRequest{Status: "SHIPPED"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("coupon errors map to 400", func(t *testing.T) {
		router := testRouter(&stubService{err: ErrCouponNotApplicable}, false)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/orders/coupon/apply",
			ApplyCouponRequest{Code: "SAVE10"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unexpected errors are masked as 500", func(t *testing.T) {
		router := testRouter(&stubService{err: assert.AnError}, false)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal server error")
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})

	t.Run("coupon preview body", func(t *testing.T) {
		router := testRouter(&stubService{}, false)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/orders/coupon/apply",
			ApplyCouponRequest{Code: "SAVE10"})
		require.Equal(t, http.StatusOK, rec.Code)

		var p CouponPreview
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, 45.0, p.Total)
	})

	t.Run("submit transaction", func(t *testing.T) {
		router := testRouter(&stubService{order: &Order{PaymentStatus: PaymentSubmitted}}, false)
		rec := doJSON(t, router, http.MethodPut, "/api/v1/orders/"+orderID+"/transaction/submit",
			SubmitTransactionRequest{TransactionID: "UTR123"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), string(PaymentSubmitted))
	})

	t.Run("verify transaction", func(t *testing.T) {
		router := testRouter(&stubService{order: &Order{PaymentStatus: PaymentPaid}}, true)
		rec := doJSON(t, router, http.MethodPut, "/api/v1/orders/"+orderID+"/transaction",
			VerifyTransactionRequest{Success: true, TransactionID: "UTR123"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), string(PaymentPaid))
	})
}
