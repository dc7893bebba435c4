package entities_test

import (
	"testing"

	"github.com/eriju-studio/storefront-service/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestOrder_ItemsTotal(t *testing.T) {
	order := entities.Order{Items: []entities.LineItem{
		{Name: "Mug", UnitPrice: 500, Quantity: 2},
		{Name: "Coaster", UnitPrice: 300, Quantity: 1},
	}}
	assert.Equal(t, 1300, order.ItemsTotal())
}

func TestOrder_ItemsSummary(t *testing.T) {
	order := entities.Order{Items: []entities.LineItem{
		{Name: "Mug", UnitPrice: 500, Quantity: 2},
		{Name: "Coaster", UnitPrice: 300, Quantity: 1},
	}}
	assert.Equal(t, "Mug (x2), Coaster (x1)", order.ItemsSummary())
}

func TestCart_Subtotal(t *testing.T) {
	cart := entities.Cart{
		{ProductID: "p1", Price: 500, Quantity: 2},
		{ProductID: "p2", Price: 300, Quantity: 1},
	}
	assert.Equal(t, 1300, cart.Subtotal())
}
