package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eriju-studio/storefront-service/internal/entities"
)

type cartService struct {
	logger   *slog.Logger
	products ProductGetter
	store    CartStore
}

func NewCartService(logger *slog.Logger, products ProductGetter, store CartStore) *cartService {
	return &cartService{
		logger:   logger.With(slog.String("service", "cart")),
		products: products,
		store:    store,
	}
}

// GetCart returns the session's cart reconciled against the current catalog.
// The read is non-destructive: the stored cart is rewritten only by SetCart,
// checkout or expiry.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (entities.Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return reconcileCart(ctx, s.products, cart)
}

// SetCart replaces the session's cart. Every entry must name an existing
// product; name, price and image are snapshotted from the catalog rather
// than trusted from the client.
func (s *cartService) SetCart(ctx context.Context, sessionID string, entries entities.Cart) (entities.Cart, error) {
	cart := make(entities.Cart, 0, len(entries))
	for _, e := range entries {
		product, err := s.products.GetProductByID(ctx, e.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", e.ProductID, err)
		}

		qty := e.Quantity
		if qty < 1 {
			qty = 1
		}

		cart = append(cart, entities.CartEntry{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  qty,
		})
	}

	if err := s.store.Set(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

// reconcileCart refreshes each entry's display snapshot from the catalog,
// preserving quantities. Entries whose product no longer exists are dropped.
func reconcileCart(ctx context.Context, products ProductGetter, cart entities.Cart) (entities.Cart, error) {
	result := make(entities.Cart, 0, len(cart))
	for _, e := range cart {
		product, err := products.GetProductByID(ctx, e.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		e.Name = product.Name
		e.Price = product.Price
		e.ImageURL = product.ImageURL
		result = append(result, e)
	}
	return result, nil
}
