package handler

import (
	"time"

	"github.com/eriju-studio/storefront-service/internal/entities"
)

// LineItem is one snapshotted order line
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Order represents a customer order
type Order struct {
	ID              string     `json:"order_id"`
	CustomerEmail   string     `json:"customer_email"`
	RecipientName   string     `json:"recipient_name"`
	Phone           string     `json:"phone"`
	ShippingAddress string     `json:"shipping_address"`
	TotalAmount     int        `json:"total_amount"`
	Status          string     `json:"status"`
	CancelReason    string     `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	Items           []LineItem `json:"items"`
}

// Product is a catalog entry
type Product struct {
	ID          string    `json:"product_id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	Available   bool      `json:"available"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductRequest carries the admin-editable product fields
type ProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       int    `json:"price" validate:"required,gt=0"`
	Available   bool   `json:"available"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

// CartEntry is one cart line with its catalog snapshot
type CartEntry struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	ImageURL  string `json:"image_url,omitempty"`
	Quantity  int    `json:"quantity"`
}

// CartEntryRequest names a product and quantity; the catalog snapshot is
// taken server-side
type CartEntryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// CartRequest replaces the session cart
type CartRequest struct {
	Entries []CartEntryRequest `json:"entries" validate:"dive"`
}

// CartResponse is the reconciled cart with its running subtotal
type CartResponse struct {
	Entries  []CartEntry `json:"entries"`
	Subtotal int         `json:"subtotal"`
}

// CheckoutRequest is the shipping form plus session and identity
type CheckoutRequest struct {
	SessionID       string `json:"session_id" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	RecipientName   string `json:"recipient_name" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
}

// CancelOrderRequest carries the mandatory cancellation reason
type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// UpdateStatusRequest is the admin transition request
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason,omitempty"`
}

// AdminOrdersResponse is a filtered listing plus per-status counts for the
// console badges
type AdminOrdersResponse struct {
	Orders []Order        `json:"orders"`
	Counts map[string]int `json:"counts"`
}

func LineItemEntityToJSON(i entities.LineItem) LineItem {
	return LineItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemEntityToJSON(it))
	}

	return Order{
		ID:              o.ID,
		CustomerEmail:   o.CustomerEmail,
		RecipientName:   o.RecipientName,
		Phone:           o.Phone,
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		CancelReason:    o.CancelReason,
		CreatedAt:       o.CreatedAt,
		Items:           items,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Available:   p.Available,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func ProductsEntityToJSON(products []entities.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductEntityToJSON(p))
	}
	return result
}

func CartEntityToJSON(c entities.Cart) CartResponse {
	entries := make([]CartEntry, 0, len(c))
	for _, e := range c {
		entries = append(entries, CartEntry{
			ProductID: e.ProductID,
			Name:      e.Name,
			Price:     e.Price,
			ImageURL:  e.ImageURL,
			Quantity:  e.Quantity,
		})
	}
	return CartResponse{Entries: entries, Subtotal: c.Subtotal()}
}

func CartRequestToEntity(req CartRequest) entities.Cart {
	cart := make(entities.Cart, 0, len(req.Entries))
	for _, e := range req.Entries {
		cart = append(cart, entities.CartEntry{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
		})
	}
	return cart
}
