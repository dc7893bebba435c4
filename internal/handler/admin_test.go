package handler_test

import (
	"encoding/json"
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

const testAdminKey = "test-admin-key"

func newAdminRouter(t *testing.T) (chi.Router, *mocks.MockAdminOrderService, *mocks.MockProductService) {
	t.Helper()

	orders := mocks.NewMockAdminOrderService(t)
	products := mocks.NewMockProductService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewAdminHandler(logger, testAdminKey, orders, products)

	r := chi.NewRouter()
	h.Init(r)
	return r, orders, products
}

func adminRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("X-Admin-Key", testAdminKey)
	return req
}

func TestAdminHandler_Auth(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		mockBehavior func(orders *mocks.MockAdminOrderService)
		wantStatus   int
	}{
		{name: "missing key", key: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", key: "nope", wantStatus: http.StatusUnauthorized},
		{
			name: "valid key",
			key:  testAdminKey,
			mockBehavior: func(orders *mocks.MockAdminOrderService) {
				orders.EXPECT().ListOrdersByStatus(mock.Anything, entities.StatusPending).
					Return([]entities.Order{}, nil).Once()
				orders.EXPECT().CountByStatus(mock.Anything).
					Return(map[entities.Status]int{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, orders, _ := newAdminRouter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(orders)
			}

			req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=pending", nil)
			if tc.key != "" {
				req.Header.Set("X-Admin-Key", tc.key)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestAdminHandler_ListOrders(t *testing.T) {
	t.Run("returns orders and counts", func(t *testing.T) {
		r, orders, _ := newAdminRouter(t)

		orders.EXPECT().ListOrdersByStatus(mock.Anything, entities.StatusPending).
			Return([]entities.Order{{ID: "order-1", Status: entities.StatusPending}}, nil).Once()
		orders.EXPECT().CountByStatus(mock.Anything).
			Return(map[entities.Status]int{
				entities.StatusPending:    1,
				entities.StatusProcessing: 3,
			}, nil).Once()

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, adminRequest(http.MethodGet, "/admin/orders?status=pending", nil))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Orders []map[string]any `json:"orders"`
			Counts map[string]int   `json:"counts"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Orders, 1)
		assert.Equal(t, 3, resp.Counts["processing"])
	})

	t.Run("unknown status", func(t *testing.T) {
		r, _, _ := newAdminRouter(t)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, adminRequest(http.MethodGet, "/admin/orders?status=bogus", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(orders *mocks.MockAdminOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "start production",
			body: `{"status": "processing"}`,
			mockBehavior: func(orders *mocks.MockAdminOrderService) {
				orders.EXPECT().
					RequestTransition(mock.Anything, "order-1", entities.StatusProcessing, entities.ActorAdmin, "").
					Return(entities.Order{ID: "order-1", Status: entities.StatusProcessing}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"processing"`,
		},
		{
			name: "force cancel with reason",
			body: `{"status": "cancelled", "reason": "out of stock"}`,
			mockBehavior: func(orders *mocks.MockAdminOrderService) {
				orders.EXPECT().
					RequestTransition(mock.Anything, "order-1", entities.StatusCancelled, entities.ActorAdmin, "out of stock").
					Return(entities.Order{ID: "order-1", Status: entities.StatusCancelled}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "illegal transition",
			body: `{"status": "pending"}`,
			mockBehavior: func(orders *mocks.MockAdminOrderService) {
				orders.EXPECT().
					RequestTransition(mock.Anything, "order-1", entities.StatusPending, entities.ActorAdmin, "").
					Return(entities.Order{}, &entities.InvalidTransitionError{
						From: entities.StatusCompleted,
						To:   entities.StatusPending,
					}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "invalid order status transition",
		},
		{
			name:         "unknown status",
			body:         `{"status": "shipped-ish"}`,
			mockBehavior: func(orders *mocks.MockAdminOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"unknown status"`,
		},
		{
			name:         "missing status",
			body:         `{}`,
			mockBehavior: func(orders *mocks.MockAdminOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, orders, _ := newAdminRouter(t)
			tc.mockBehavior(orders)

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, adminRequest(http.MethodPost, "/admin/orders/order-1/status", strings.NewReader(tc.body)))

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAdminHandler_Products(t *testing.T) {
	t.Run("listing includes unavailable", func(t *testing.T) {
		r, _, products := newAdminRouter(t)

		products.EXPECT().ListProducts(mock.Anything, true).
			Return([]entities.Product{
				{ID: "p-mug", Available: true},
				{ID: "p-retired", Available: false},
			}, nil).Once()

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, adminRequest(http.MethodGet, "/admin/products", nil))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("create", func(t *testing.T) {
		r, _, products := newAdminRouter(t)

		products.EXPECT().
			CreateProduct(mock.Anything, entities.ProductInput{Name: "Tote", Price: 700, Available: true}).
			Return(entities.Product{ID: "p-tote", Name: "Tote", Price: 700, Available: true}, nil).Once()

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, adminRequest(http.MethodPost, "/admin/products",
			strings.NewReader(`{"name": "Tote", "price": 700, "available": true}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"product_id":"p-tote"`)
	})

	t.Run("create with non-positive price", func(t *testing.T) {
		r, _, _ := newAdminRouter(t)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, adminRequest(http.MethodPost, "/admin/products",
			strings.NewReader(`{"name": "Tote", "price": 0}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("update missing product", func(t *testing.T) {
		r, _, products := newAdminRouter(t)

		products.EXPECT().
			UpdateProduct(mock.Anything, "p-gone", mock.Anything).
			Return(entities.Product{}, entities.ErrProductNotFound).Once()

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, adminRequest(http.MethodPut, "/admin/products/p-gone",
			strings.NewReader(`{"name": "Tote", "price": 700}`)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		r, _, products := newAdminRouter(t)

		products.EXPECT().DeleteProduct(mock.Anything, "p-tote").Return(nil).Once()

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, adminRequest(http.MethodDelete, "/admin/products/p-tote", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
