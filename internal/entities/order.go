package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type LineItem struct {
	ProductID string
	Name      string
	UnitPrice int
	Quantity  int
}

type Order struct {
	ID              string
	CustomerEmail   string
	RecipientName   string
	Phone           string
	ShippingAddress string
	TotalAmount     int
	Status          Status
	CancelReason    string
	CreatedAt       time.Time

	Items []LineItem
}

// OrderDraft is the checkout input: shipping form plus the authenticated
// customer identity. Items and total are taken from the cart, not from here.
type OrderDraft struct {
	CustomerEmail   string
	RecipientName   string
	Phone           string
	ShippingAddress string
}

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrCancelReasonRequired = errors.New("cancel reason is required")
	ErrActorNotAllowed      = errors.New("actor is not allowed to perform this transition")
)

// InvalidTransitionError names the attempted edge so callers can report
// exactly which move was rejected.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition: %s -> %s", e.From, e.To)
}

func (o Order) ItemsTotal() int {
	total := 0
	for _, it := range o.Items {
		total += it.UnitPrice * it.Quantity
	}
	return total
}

// ItemsSummary renders the line items as a single human-readable line,
// e.g. "Ceramic Mug (x2), Coaster (x1)".
func (o Order) ItemsSummary() string {
	parts := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", it.Name, it.Quantity))
	}
	return strings.Join(parts, ", ")
}
