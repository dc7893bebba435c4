package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/eriju-studio/storefront-service/internal/entities"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

// Store keeps each browsing session's cart as a JSON value in Redis, keyed by
// the session id. Carts expire after the configured TTL; an absent key is an
// empty cart, not an error.
type Store struct {
	logger *slog.Logger
	client *redis.Client
	ttl    time.Duration
}

func NewStore(logger *slog.Logger, client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		logger: logger.With(slog.String("store", "cart")),
		client: client,
		ttl:    ttl,
	}
}

func (s *Store) Get(ctx context.Context, sessionID string) (entities.Cart, error) {
	data, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var c entities.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		// Corrupted value: drop it and start the session over.
		s.logger.WarnContext(ctx, "dropping unreadable cart",
			slog.String("session_id", sessionID), slog.Any("error", err))
		if err := s.Clear(ctx, sessionID); err != nil {
			return nil, err
		}
		return entities.Cart{}, nil
	}
	return c, nil
}

func (s *Store) Set(ctx context.Context, sessionID string, c entities.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cart: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
