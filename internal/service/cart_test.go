package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/eriju-studio/storefront-service/internal/entities"
	"github.com/eriju-studio/storefront-service/internal/service"
	mocks "github.com/eriju-studio/storefront-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_SetCart(t *testing.T) {
	mug := entities.Product{ID: "p-mug", Name: "Mug", Price: 500, ImageURL: "https://cdn.example.com/mug.png"}

	t.Run("snapshots catalog data and clamps quantity", func(t *testing.T) {
		products := mocks.NewMockProductGetter(t)
		store := mocks.NewMockCartStore(t)

		products.EXPECT().GetProductByID(mock.Anything, "p-mug").Return(mug, nil)
		store.EXPECT().Set(mock.Anything, "sess-1", mock.Anything).Return(nil)

		svc := service.NewCartService(newTestLogger(), products, store)

		cart, err := svc.SetCart(context.Background(), "sess-1", entities.Cart{
			{ProductID: "p-mug", Name: "spoofed", Price: 1, Quantity: 0},
		})
		require.NoError(t, err)
		require.Len(t, cart, 1)
		assert.Equal(t, "Mug", cart[0].Name)
		assert.Equal(t, 500, cart[0].Price)
		assert.Equal(t, "https://cdn.example.com/mug.png", cart[0].ImageURL)
		assert.Equal(t, 1, cart[0].Quantity)
	})

	t.Run("unknown product rejects the whole cart", func(t *testing.T) {
		products := mocks.NewMockProductGetter(t)
		store := mocks.NewMockCartStore(t)

		products.EXPECT().GetProductByID(mock.Anything, "p-gone").
			Return(entities.Product{}, entities.ErrProductNotFound)

		svc := service.NewCartService(newTestLogger(), products, store)

		_, err := svc.SetCart(context.Background(), "sess-1", entities.Cart{
			{ProductID: "p-gone", Quantity: 1},
		})
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
		store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		storeErr := errors.New("redis down")

		products := mocks.NewMockProductGetter(t)
		store := mocks.NewMockCartStore(t)

		products.EXPECT().GetProductByID(mock.Anything, "p-mug").Return(mug, nil)
		store.EXPECT().Set(mock.Anything, "sess-1", mock.Anything).Return(storeErr)

		svc := service.NewCartService(newTestLogger(), products, store)

		_, err := svc.SetCart(context.Background(), "sess-1", entities.Cart{
			{ProductID: "p-mug", Quantity: 2},
		})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("drops removed products and refreshes prices", func(t *testing.T) {
		products := mocks.NewMockProductGetter(t)
		store := mocks.NewMockCartStore(t)

		store.EXPECT().Get(mock.Anything, "sess-1").Return(entities.Cart{
			{ProductID: "p-mug", Name: "Mug", Price: 500, Quantity: 2},
			{ProductID: "p-gone", Name: "Old", Price: 100, Quantity: 1},
		}, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-mug").
			Return(entities.Product{ID: "p-mug", Name: "Mug", Price: 550}, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-gone").
			Return(entities.Product{}, entities.ErrProductNotFound)

		svc := service.NewCartService(newTestLogger(), products, store)

		cart, err := svc.GetCart(context.Background(), "sess-1")
		require.NoError(t, err)
		require.Len(t, cart, 1)
		assert.Equal(t, 550, cart[0].Price)
		assert.Equal(t, 2, cart[0].Quantity)
		assert.Equal(t, 1100, cart.Subtotal())
	})

	t.Run("catalog failure is returned", func(t *testing.T) {
		dbErr := errors.New("db error")

		products := mocks.NewMockProductGetter(t)
		store := mocks.NewMockCartStore(t)

		store.EXPECT().Get(mock.Anything, "sess-1").Return(entities.Cart{
			{ProductID: "p-mug", Quantity: 1},
		}, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-mug").
			Return(entities.Product{}, dbErr)

		svc := service.NewCartService(newTestLogger(), products, store)

		_, err := svc.GetCart(context.Background(), "sess-1")
		assert.ErrorIs(t, err, dbErr)
	})
}
