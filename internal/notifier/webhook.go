package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/eriju-studio/storefront-service/internal/config"
	"github.com/eriju-studio/storefront-service/internal/entities"
)

// Embed accent colors per event: new orders neutral, cancellations alert,
// completions success.
const (
	colorNewOrder  = 0x0f172a
	colorCancelled = 0xe74c3c
	colorCompleted = 0x2ecc71
)

var eventTitles = map[entities.EventKind]string{
	entities.EventNewOrder:  "🛒 New order received",
	entities.EventCancelled: "❌ Order cancelled",
	entities.EventCompleted: "✅ Order completed",
}

var eventColors = map[entities.EventKind]int{
	entities.EventNewOrder:  colorNewOrder,
	entities.EventCancelled: colorCancelled,
	entities.EventCompleted: colorCompleted,
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []embedField `json:"fields"`
	Footer    embedFooter  `json:"footer"`
	Timestamp string       `json:"timestamp"`
}

type message struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds"`
}

// WebhookSender posts order events to a single staff webhook. Delivery is
// best effort and at most once: any failure is logged and swallowed so a
// missed alert can never fail the transition or checkout that triggered it.
type WebhookSender struct {
	logger   *slog.Logger
	url      string
	username string
	client   *http.Client
}

func NewWebhookSender(logger *slog.Logger, cfg config.Webhook) *WebhookSender {
	return &WebhookSender{
		logger:   logger.With(slog.String("sender", "webhook")),
		url:      cfg.URL,
		username: cfg.Username,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *WebhookSender) Notify(ctx context.Context, order entities.Order, kind entities.EventKind) {
	if err := s.deliver(ctx, order, kind); err != nil {
		notificationsFailed.WithLabelValues(string(kind)).Inc()
		s.logger.ErrorContext(ctx, "failed to deliver notification",
			slog.String("order_id", order.ID),
			slog.String("event", string(kind)),
			slog.Any("error", err),
		)
		return
	}

	notificationsSent.WithLabelValues(string(kind)).Inc()
	s.logger.DebugContext(ctx, "notification delivered",
		slog.String("order_id", order.ID), slog.String("event", string(kind)))
}

func (s *WebhookSender) deliver(ctx context.Context, order entities.Order, kind entities.EventKind) error {
	body, err := json.Marshal(buildMessage(s.username, order, kind))
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func buildMessage(username string, order entities.Order, kind entities.EventKind) message {
	return message{
		Username: username,
		Embeds: []embed{{
			Title: eventTitles[kind],
			Color: eventColors[kind],
			Fields: []embedField{
				{Name: "Order ID", Value: fmt.Sprintf("`%s`", order.ID)},
				{Name: "Customer", Value: order.RecipientName, Inline: true},
				{Name: "Phone", Value: order.Phone, Inline: true},
				{Name: "Email", Value: order.CustomerEmail},
				{Name: "Shipping address", Value: order.ShippingAddress},
				{Name: "Total", Value: fmt.Sprintf("**NT$ %d**", order.TotalAmount)},
				{Name: "Items", Value: order.ItemsSummary()},
			},
			Footer:    embedFooter{Text: "Storefront checkout system"},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}
}
