package repo

import (
	"database/sql"
	"time"

	"github.com/eriju-studio/storefront-service/internal/entities"
)

type Order struct {
	ID              string         `db:"id"`
	CustomerEmail   string         `db:"customer_email"`
	RecipientName   string         `db:"recipient_name"`
	Phone           string         `db:"phone"`
	ShippingAddress string         `db:"shipping_address"`
	TotalAmount     int            `db:"total_amount"`
	Status          string         `db:"status"`
	CancelReason    sql.NullString `db:"cancel_reason"`
	CreatedAt       time.Time      `db:"created_at"`
}

type OrderItem struct {
	OrderID   string `db:"order_id"`
	Position  int    `db:"position"`
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	UnitPrice int    `db:"unit_price"`
	Quantity  int    `db:"quantity"`
}

type Product struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Price       int            `db:"price"`
	Available   bool           `db:"available"`
	ImageURL    sql.NullString `db:"image_url"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

func ItemToEntity(i OrderItem) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		CustomerEmail:   o.CustomerEmail,
		RecipientName:   o.RecipientName,
		Phone:           o.Phone,
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     o.TotalAmount,
		Status:          entities.Status(o.Status),
		CancelReason:    nullStringToString(o.CancelReason),
		CreatedAt:       o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Available:   p.Available,
		ImageURL:    nullStringToString(p.ImageURL),
		Description: nullStringToString(p.Description),
		CreatedAt:   p.CreatedAt,
	}
}
