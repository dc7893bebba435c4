package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/eriju-studio/storefront-service/internal/entities"
	"github.com/eriju-studio/storefront-service/internal/events"
	"github.com/eriju-studio/storefront-service/pkg/trm"

	"github.com/google/uuid"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)

	// UpdateStatus is last-write-wins; concurrent transitions race at the
	// store and the later write sticks.
	UpdateStatus(ctx context.Context, orderID string, status entities.Status, cancelReason *string) error

	ListByCustomer(ctx context.Context, email string) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.Status) ([]entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.Status]int, error)
}

type ProductGetter interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
}

type CartStore interface {
	Get(ctx context.Context, sessionID string) (entities.Cart, error)
	Set(ctx context.Context, sessionID string, c entities.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// Notifier delivers best-effort staff notifications. Implementations swallow
// delivery failures; a call never reports an error to the flow that made it.
type Notifier interface {
	Notify(ctx context.Context, order entities.Order, kind entities.EventKind)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, t events.Type, order entities.Order) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	products  ProductGetter
	carts     CartStore
	notifier  Notifier
	publisher EventPublisher
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	products ProductGetter,
	carts CartStore,
	notifier Notifier,
	publisher EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		products:  products,
		carts:     carts,
		notifier:  notifier,
		publisher: publisher,
	}
}

// Checkout converts the session's cart plus the shipping form into one order
// record. The order and its items are written in a single transaction; the
// new-order notification and the cart clear happen only after that write
// succeeds, and neither can undo it.
func (s *orderService) Checkout(ctx context.Context, sessionID string, draft entities.OrderDraft) (entities.Order, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load cart: %w", err)
	}

	cart, err = reconcileCart(ctx, s.products, cart)
	if err != nil {
		return entities.Order{}, err
	}
	if len(cart) == 0 {
		return entities.Order{}, entities.ErrEmptyCart
	}

	items := make([]entities.LineItem, 0, len(cart))
	for _, e := range cart {
		items = append(items, entities.LineItem{
			ProductID: e.ProductID,
			Name:      e.Name,
			UnitPrice: e.Price,
			Quantity:  e.Quantity,
		})
	}

	order := entities.Order{
		ID:              uuid.NewString(),
		CustomerEmail:   draft.CustomerEmail,
		RecipientName:   draft.RecipientName,
		Phone:           draft.Phone,
		ShippingAddress: draft.ShippingAddress,
		TotalAmount:     cart.Subtotal(),
		Status:          entities.StatusPending,
		CreatedAt:       time.Now().UTC(),
		Items:           items,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveOrder(ctx, order); err != nil {
			return err
		}
		return s.repo.SaveItems(ctx, order.ID, order.Items)
	})
	if err != nil {
		// The cart is untouched so the customer can retry.
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID), slog.Int("total", order.TotalAmount))

	s.notifier.Notify(ctx, order, entities.EventNewOrder)
	s.publishEvent(ctx, events.TypeOrderCreated, order)

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// The order exists either way; a stale cart only means the customer
		// sees their old items until the TTL runs out.
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("session_id", sessionID), slog.Any("error", err))
	}

	return order, nil
}

// RequestTransition validates the (current, target) edge and the actor's
// permission for it, persists the new status, and fires the notification the
// edge carries, if any. Validation failures reject before any store write.
func (s *orderService) RequestTransition(ctx context.Context, orderID string, target entities.Status, actor entities.Actor, reason string) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	rule, ok := entities.Transition(order.Status, target)
	if !ok {
		return entities.Order{}, &entities.InvalidTransitionError{From: order.Status, To: target}
	}
	if !rule.Allows(actor) {
		return entities.Order{}, entities.ErrActorNotAllowed
	}

	var cancelReason *string
	if rule.RequiresReason {
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return entities.Order{}, entities.ErrCancelReasonRequired
		}
		cancelReason = &reason
	}

	if err := s.repo.UpdateStatus(ctx, orderID, target, cancelReason); err != nil {
		return entities.Order{}, err
	}

	order.Status = target
	if cancelReason != nil {
		order.CancelReason = *cancelReason
	}

	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", order.ID),
		slog.String("status", string(target)),
		slog.String("actor", string(actor)),
	)

	if rule.Notify != "" {
		s.notifier.Notify(ctx, order, rule.Notify)
	}

	eventType := events.TypeOrderStatusChanged
	if target == entities.StatusCancelled {
		eventType = events.TypeOrderCancelled
	}
	s.publishEvent(ctx, eventType, order)

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return s.repo.GetOrderByID(ctx, orderID)
}

func (s *orderService) ListCustomerOrders(ctx context.Context, email string) ([]entities.Order, error) {
	return s.repo.ListByCustomer(ctx, email)
}

func (s *orderService) ListOrdersByStatus(ctx context.Context, status entities.Status) ([]entities.Order, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *orderService) CountByStatus(ctx context.Context) (map[entities.Status]int, error) {
	return s.repo.CountByStatus(ctx)
}

func (s *orderService) publishEvent(ctx context.Context, t events.Type, order entities.Order) {
	if err := s.publisher.PublishOrderEvent(ctx, t, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("order_id", order.ID),
			slog.String("type", string(t)),
			slog.Any("error", err),
		)
	}
}
