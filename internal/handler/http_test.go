package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eriju-studio/storefront-service/internal/entities"
	"github.com/eriju-studio/storefront-service/internal/handler"
	mocks "github.com/eriju-studio/storefront-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockOrderService, *mocks.MockCartService, *mocks.MockProductReader) {
	t.Helper()

	orders := mocks.NewMockOrderService(t)
	carts := mocks.NewMockCartService(t)
	products := mocks.NewMockProductReader(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, orders, carts, products)

	r := chi.NewRouter()
	h.Init(r)
	return r, orders, carts, products
}

func TestHTTPHandler_Checkout(t *testing.T) {
	validBody := `{
		"session_id": "sess-1",
		"customer_email": "ada@example.com",
		"recipient_name": "Ada",
		"phone": "0912345678",
		"shipping_address": "1 Main St"
	}`

	validOrder := entities.Order{
		ID:            "order-1",
		CustomerEmail: "ada@example.com",
		TotalAmount:   1300,
		Status:        entities.StatusPending,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					Checkout(mock.Anything, "sess-1", entities.OrderDraft{
						CustomerEmail:   "ada@example.com",
						RecipientName:   "Ada",
						Phone:           "0912345678",
						ShippingAddress: "1 Main St",
					}).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_id":"order-1"`,
		},
		{
			name:         "missing email",
			body:         `{"session_id": "sess-1", "recipient_name": "Ada", "phone": "1", "shipping_address": "a"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "malformed body",
			body:         `{`,
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "empty cart",
			body: validBody,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					Checkout(mock.Anything, "sess-1", mock.Anything).
					Return(entities.Order{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cart is empty"`,
		},
		{
			name: "store failure",
			body: validBody,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					Checkout(mock.Anything, "sess-1", mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, orders, _, _ := newTestRouter(t)
			tc.mockBehavior(orders)

			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_RequestCancel(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"reason": "changed my mind"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					RequestTransition(mock.Anything, "order-1", entities.StatusCancelling, entities.ActorCustomer, "changed my mind").
					Return(entities.Order{ID: "order-1", Status: entities.StatusCancelling, CancelReason: "changed my mind"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"cancelling"`,
		},
		{
			name:         "missing reason",
			body:         `{}`,
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "already shipped",
			body: `{"reason": "too slow"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					RequestTransition(mock.Anything, "order-1", entities.StatusCancelling, entities.ActorCustomer, "too slow").
					Return(entities.Order{}, &entities.InvalidTransitionError{
						From: entities.StatusDelivered,
						To:   entities.StatusCancelling,
					}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "invalid order status transition: delivered -> cancelling",
		},
		{
			name: "not found",
			body: `{"reason": "whatever"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					RequestTransition(mock.Anything, "order-1", entities.StatusCancelling, entities.ActorCustomer, "whatever").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, orders, _, _ := newTestRouter(t)
			tc.mockBehavior(orders)

			req := httptest.NewRequest(http.MethodPost, "/orders/order-1/cancel-request", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_ConfirmReceipt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, orders, _, _ := newTestRouter(t)

		orders.EXPECT().
			RequestTransition(mock.Anything, "order-1", entities.StatusCompleted, entities.ActorCustomer, "").
			Return(entities.Order{ID: "order-1", Status: entities.StatusCompleted}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/order-1/confirm-receipt", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"completed"`)
	})

	t.Run("not delivered yet", func(t *testing.T) {
		r, orders, _, _ := newTestRouter(t)

		orders.EXPECT().
			RequestTransition(mock.Anything, "order-1", entities.StatusCompleted, entities.ActorCustomer, "").
			Return(entities.Order{}, &entities.InvalidTransitionError{
				From: entities.StatusProcessing,
				To:   entities.StatusCompleted,
			}).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/order-1/confirm-receipt", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHTTPHandler_Cart(t *testing.T) {
	t.Run("get returns reconciled cart with subtotal", func(t *testing.T) {
		r, _, carts, _ := newTestRouter(t)

		carts.EXPECT().GetCart(mock.Anything, "sess-1").Return(entities.Cart{
			{ProductID: "p-mug", Name: "Mug", Price: 500, Quantity: 2},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/cart/sess-1", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.EqualValues(t, 1000, resp["subtotal"])
	})

	t.Run("put with unknown product", func(t *testing.T) {
		r, _, carts, _ := newTestRouter(t)

		carts.EXPECT().SetCart(mock.Anything, "sess-1", mock.Anything).
			Return(nil, entities.ErrProductNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/cart/sess-1",
			strings.NewReader(`{"entries": [{"product_id": "p-gone", "quantity": 1}]}`))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("put with zero quantity fails validation", func(t *testing.T) {
		r, _, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/cart/sess-1",
			strings.NewReader(`{"entries": [{"product_id": "p-mug", "quantity": 0}]}`))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("delete clears cart", func(t *testing.T) {
		r, _, carts, _ := newTestRouter(t)

		carts.EXPECT().ClearCart(mock.Anything, "sess-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/cart/sess-1", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestHTTPHandler_Orders(t *testing.T) {
	t.Run("list requires valid email", func(t *testing.T) {
		r, _, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/orders?email=not-an-email", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("list returns customer orders", func(t *testing.T) {
		r, orders, _, _ := newTestRouter(t)

		orders.EXPECT().ListCustomerOrders(mock.Anything, "ada@example.com").
			Return([]entities.Order{{ID: "order-1"}, {ID: "order-2"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders?email=ada@example.com", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("get order not found", func(t *testing.T) {
		r, orders, _, _ := newTestRouter(t)

		orders.EXPECT().GetOrderByID(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders/missing", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHTTPHandler_Products(t *testing.T) {
	t.Run("listing", func(t *testing.T) {
		r, _, _, products := newTestRouter(t)

		products.EXPECT().ListProducts(mock.Anything, false).
			Return([]entities.Product{{ID: "p-mug", Name: "Mug", Price: 500, Available: true}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"product_id":"p-mug"`)
	})

	t.Run("get missing product", func(t *testing.T) {
		r, _, _, products := newTestRouter(t)

		products.EXPECT().GetProductByID(mock.Anything, "missing").
			Return(entities.Product{}, entities.ErrProductNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
