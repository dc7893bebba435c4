package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/eriju-studio/storefront-service/internal/config"
	"github.com/eriju-studio/storefront-service/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Type string

const (
	TypeOrderCreated       Type = "order.created"
	TypeOrderStatusChanged Type = "order.status_changed"
	TypeOrderCancelled     Type = "order.cancelled"
)

type OrderEvent struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	OrderID     string    `json:"order_id"`
	Status      string    `json:"status"`
	TotalAmount int       `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// Publisher emits order lifecycle events to Kafka for downstream consumers
// (analytics, fulfillment). Publishing is best effort: callers log failures
// and move on.
type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, t Type, order entities.Order) error {
	event := OrderEvent{
		ID:          uuid.NewString(),
		Type:        t,
		OrderID:     order.ID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		Timestamp:   time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Keyed by order id so consumers see each order's events in order.
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
	})
	if err != nil {
		eventsFailed.WithLabelValues(string(t)).Inc()
		return fmt.Errorf("failed to publish event: %w", err)
	}

	eventsPublished.WithLabelValues(string(t)).Inc()
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
