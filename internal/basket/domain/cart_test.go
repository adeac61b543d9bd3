package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	cart := &ShoppingCart{
		UserName: "alice",
		Items: []ShoppingCartItem{
			{ProductID: "p1", ProductName: "Widget", Price: 9.99, Quantity: 2},
			{ProductID: "p2", ProductName: "Gadget", Price: 5.00, Quantity: 3},
		},
	}

	assert.InDelta(t, 34.98, cart.TotalPrice(), 0.001)
}

func TestTotalPrice_EmptyCart(t *testing.T) {
	cart := &ShoppingCart{UserName: "alice"}
	assert.Zero(t, cart.TotalPrice())
}
