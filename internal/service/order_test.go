package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/eriju-studio/storefront-service/internal/entities"
	"github.com/eriju-studio/storefront-service/internal/events"
	"github.com/eriju-studio/storefront-service/internal/service"
	mocks "github.com/eriju-studio/storefront-service/internal/service/mocks"
	txMocks "github.com/eriju-studio/storefront-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
}

func TestOrderService_Checkout(t *testing.T) {
	draft := entities.OrderDraft{
		CustomerEmail:   "ada@example.com",
		RecipientName:   "Ada",
		Phone:           "0912345678",
		ShippingAddress: "1 Main St",
	}

	mug := entities.Product{ID: "p-mug", Name: "Mug", Price: 500, Available: true}
	coaster := entities.Product{ID: "p-coaster", Name: "Coaster", Price: 300, Available: true}

	storedCart := entities.Cart{
		{ProductID: "p-mug", Quantity: 2},
		{ProductID: "p-coaster", Quantity: 1},
	}

	t.Run("creates order from cart and clears it", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		products := mocks.NewMockProductGetter(t)
		carts := mocks.NewMockCartStore(t)
		notifier := mocks.NewMockNotifier(t)
		publisher := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		carts.EXPECT().Get(mock.Anything, "sess-1").Return(storedCart, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-mug").Return(mug, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-coaster").Return(coaster, nil)

		var savedOrder entities.Order
		repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, o entities.Order) { savedOrder = o }).
			Return(nil)
		repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)

		notifier.EXPECT().Notify(mock.Anything, mock.Anything, entities.EventNewOrder).
			Run(func(ctx context.Context, o entities.Order, kind entities.EventKind) {
				assert.Equal(t, savedOrder.ID, o.ID)
			}).Once()
		publisher.EXPECT().PublishOrderEvent(mock.Anything, events.TypeOrderCreated, mock.Anything).Return(nil)
		carts.EXPECT().Clear(mock.Anything, "sess-1").Return(nil).Once()

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		order, err := svc.Checkout(context.Background(), "sess-1", draft)
		require.NoError(t, err)

		assert.Equal(t, 1300, order.TotalAmount)
		assert.Equal(t, entities.StatusPending, order.Status)
		assert.Equal(t, "ada@example.com", order.CustomerEmail)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, "Mug", order.Items[0].Name)
		assert.Equal(t, 500, order.Items[0].UnitPrice)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.NotEmpty(t, order.ID)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		products := mocks.NewMockProductGetter(t)
		carts := mocks.NewMockCartStore(t)
		notifier := mocks.NewMockNotifier(t)
		publisher := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)

		carts.EXPECT().Get(mock.Anything, "sess-1").Return(entities.Cart{}, nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		_, err := svc.Checkout(context.Background(), "sess-1", draft)
		assert.ErrorIs(t, err, entities.ErrEmptyCart)
	})

	t.Run("cart with only removed products is rejected", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		products := mocks.NewMockProductGetter(t)
		carts := mocks.NewMockCartStore(t)
		notifier := mocks.NewMockNotifier(t)
		publisher := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)

		carts.EXPECT().Get(mock.Anything, "sess-1").
			Return(entities.Cart{{ProductID: "p-gone", Quantity: 1}}, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-gone").
			Return(entities.Product{}, entities.ErrProductNotFound)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		_, err := svc.Checkout(context.Background(), "sess-1", draft)
		assert.ErrorIs(t, err, entities.ErrEmptyCart)
	})

	t.Run("store failure keeps cart and sends nothing", func(t *testing.T) {
		dbErr := errors.New("db error")

		repo := mocks.NewMockOrderRepo(t)
		products := mocks.NewMockProductGetter(t)
		carts := mocks.NewMockCartStore(t)
		notifier := mocks.NewMockNotifier(t)
		publisher := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		carts.EXPECT().Get(mock.Anything, "sess-1").Return(storedCart, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-mug").Return(mug, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-coaster").Return(coaster, nil)
		repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbErr)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		_, err := svc.Checkout(context.Background(), "sess-1", draft)
		assert.ErrorIs(t, err, dbErr)
		carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cart clear failure does not fail checkout", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		products := mocks.NewMockProductGetter(t)
		carts := mocks.NewMockCartStore(t)
		notifier := mocks.NewMockNotifier(t)
		publisher := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		carts.EXPECT().Get(mock.Anything, "sess-1").Return(storedCart, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-mug").Return(mug, nil)
		products.EXPECT().GetProductByID(mock.Anything, "p-coaster").Return(coaster, nil)
		repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
		repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
		notifier.EXPECT().Notify(mock.Anything, mock.Anything, entities.EventNewOrder)
		publisher.EXPECT().PublishOrderEvent(mock.Anything, events.TypeOrderCreated, mock.Anything).Return(nil)
		carts.EXPECT().Clear(mock.Anything, "sess-1").Return(errors.New("redis down"))

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		order, err := svc.Checkout(context.Background(), "sess-1", draft)
		require.NoError(t, err)
		assert.Equal(t, 1300, order.TotalAmount)
	})
}

func TestOrderService_RequestTransition(t *testing.T) {
	orderID := "order-1"

	newDeps := func(t *testing.T) (*mocks.MockOrderRepo, *mocks.MockNotifier, *mocks.MockEventPublisher, *txMocks.MockManager, *mocks.MockProductGetter, *mocks.MockCartStore) {
		return mocks.NewMockOrderRepo(t), mocks.NewMockNotifier(t), mocks.NewMockEventPublisher(t),
			txMocks.NewMockManager(t), mocks.NewMockProductGetter(t), mocks.NewMockCartStore(t)
	}

	t.Run("customer requests cancellation from pending", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{ID: orderID, Status: entities.StatusPending}, nil)
		repo.EXPECT().UpdateStatus(mock.Anything, orderID, entities.StatusCancelling, mock.Anything).
			Run(func(ctx context.Context, id string, st entities.Status, reason *string) {
				require.NotNil(t, reason)
				assert.Equal(t, "changed my mind", *reason)
			}).
			Return(nil)
		publisher.EXPECT().PublishOrderEvent(mock.Anything, events.TypeOrderStatusChanged, mock.Anything).Return(nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		order, err := svc.RequestTransition(context.Background(), orderID, entities.StatusCancelling, entities.ActorCustomer, "changed my mind")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCancelling, order.Status)
		assert.Equal(t, "changed my mind", order.CancelReason)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cancellation without reason is rejected", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{ID: orderID, Status: entities.StatusProcessing}, nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		_, err := svc.RequestTransition(context.Background(), orderID, entities.StatusCancelling, entities.ActorCustomer, "   ")
		assert.ErrorIs(t, err, entities.ErrCancelReasonRequired)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("customer cannot cancel a delivered order", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{ID: orderID, Status: entities.StatusDelivered}, nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		_, err := svc.RequestTransition(context.Background(), orderID, entities.StatusCancelling, entities.ActorCustomer, "too late")

		var ite *entities.InvalidTransitionError
		require.ErrorAs(t, err, &ite)
		assert.Equal(t, entities.StatusDelivered, ite.From)
		assert.Equal(t, entities.StatusCancelling, ite.To)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("customer cannot start production", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{ID: orderID, Status: entities.StatusPending}, nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		_, err := svc.RequestTransition(context.Background(), orderID, entities.StatusProcessing, entities.ActorCustomer, "")
		assert.ErrorIs(t, err, entities.ErrActorNotAllowed)
	})

	t.Run("admin approves cancellation request", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{ID: orderID, Status: entities.StatusCancelling, CancelReason: "wrong size"}, nil)
		repo.EXPECT().UpdateStatus(mock.Anything, orderID, entities.StatusCancelled, (*string)(nil)).Return(nil)
		notifier.EXPECT().Notify(mock.Anything, mock.Anything, entities.EventCancelled).Once()
		publisher.EXPECT().PublishOrderEvent(mock.Anything, events.TypeOrderCancelled, mock.Anything).Return(nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		order, err := svc.RequestTransition(context.Background(), orderID, entities.StatusCancelled, entities.ActorAdmin, "")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCancelled, order.Status)
		assert.Equal(t, "wrong size", order.CancelReason)
	})

	t.Run("admin rejects cancellation request", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{ID: orderID, Status: entities.StatusCancelling}, nil)
		repo.EXPECT().UpdateStatus(mock.Anything, orderID, entities.StatusProcessing, (*string)(nil)).Return(nil)
		publisher.EXPECT().PublishOrderEvent(mock.Anything, events.TypeOrderStatusChanged, mock.Anything).Return(nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		order, err := svc.RequestTransition(context.Background(), orderID, entities.StatusProcessing, entities.ActorAdmin, "")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusProcessing, order.Status)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("customer confirms receipt", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{ID: orderID, Status: entities.StatusDelivered}, nil)
		repo.EXPECT().UpdateStatus(mock.Anything, orderID, entities.StatusCompleted, (*string)(nil)).Return(nil)
		notifier.EXPECT().Notify(mock.Anything, mock.Anything, entities.EventCompleted).Once()
		publisher.EXPECT().PublishOrderEvent(mock.Anything, events.TypeOrderStatusChanged, mock.Anything).Return(nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		order, err := svc.RequestTransition(context.Background(), orderID, entities.StatusCompleted, entities.ActorCustomer, "")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCompleted, order.Status)
	})

	t.Run("terminal states reject every transition", func(t *testing.T) {
		for _, from := range []entities.Status{entities.StatusCompleted, entities.StatusCancelled} {
			repo, notifier, publisher, tx, products, carts := newDeps(t)

			repo.EXPECT().GetOrderByID(mock.Anything, orderID).
				Return(entities.Order{ID: orderID, Status: from}, nil)

			svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

			_, err := svc.RequestTransition(context.Background(), orderID, entities.StatusProcessing, entities.ActorAdmin, "")

			var ite *entities.InvalidTransitionError
			assert.ErrorAs(t, err, &ite, "from %s", from)
		}
	})

	t.Run("transitions racing from the same snapshot keep the last write", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		// Two admins read the order while it is still pending; neither sees
		// the other's update; the store keeps whichever write lands last.
		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{ID: orderID, Status: entities.StatusPending}, nil).Times(2)

		var written []entities.Status
		repo.EXPECT().UpdateStatus(mock.Anything, orderID, mock.Anything, (*string)(nil)).
			Run(func(ctx context.Context, id string, st entities.Status, reason *string) {
				written = append(written, st)
			}).
			Return(nil).Times(2)
		notifier.EXPECT().Notify(mock.Anything, mock.Anything, entities.EventCancelled).Once()
		publisher.EXPECT().PublishOrderEvent(mock.Anything, events.TypeOrderCancelled, mock.Anything).Return(nil)
		publisher.EXPECT().PublishOrderEvent(mock.Anything, events.TypeOrderStatusChanged, mock.Anything).Return(nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		_, err := svc.RequestTransition(context.Background(), orderID, entities.StatusCancelled, entities.ActorAdmin, "")
		require.NoError(t, err)
		_, err = svc.RequestTransition(context.Background(), orderID, entities.StatusProcessing, entities.ActorAdmin, "")
		require.NoError(t, err)

		require.Equal(t, []entities.Status{entities.StatusCancelled, entities.StatusProcessing}, written)
		assert.Equal(t, entities.StatusProcessing, written[len(written)-1])
	})

	t.Run("publish failure does not fail the transition", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{ID: orderID, Status: entities.StatusPending}, nil)
		repo.EXPECT().UpdateStatus(mock.Anything, orderID, entities.StatusProcessing, (*string)(nil)).Return(nil)
		publisher.EXPECT().PublishOrderEvent(mock.Anything, events.TypeOrderStatusChanged, mock.Anything).
			Return(errors.New("broker down"))

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		order, err := svc.RequestTransition(context.Background(), orderID, entities.StatusProcessing, entities.ActorAdmin, "")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusProcessing, order.Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo, notifier, publisher, tx, products, carts := newDeps(t)

		repo.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{}, entities.ErrOrderNotFound)

		svc := service.NewOrderService(newTestLogger(), tx, repo, products, carts, notifier, publisher)

		_, err := svc.RequestTransition(context.Background(), orderID, entities.StatusProcessing, entities.ActorAdmin, "")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
