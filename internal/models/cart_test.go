// internal/models/cart_test.go
package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, price string) Product {
	return Product{ID: id, Name: id, Price: decimal.RequireFromString(price), InStock: true}
}

func TestCartAddAccumulatesQuantity(t *testing.T) {
	cart := NewCart()
	a := product("a", "30.00")

	for i := 0; i < 3; i++ {
		cart.Add(a)
	}

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount())
	assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("90.00")))
}

func TestCartOneLinePerProduct(t *testing.T) {
	cart := NewCart()
	cart.Add(product("a", "30.00"))
	cart.Add(product("b", "120.00"))
	cart.Add(product("a", "30.00"))

	require.Len(t, cart.Lines, 2)
	seen := map[string]bool{}
	for _, l := range cart.Lines {
		assert.False(t, seen[l.Product.ID], "duplicate line for %s", l.Product.ID)
		seen[l.Product.ID] = true
		assert.GreaterOrEqual(t, l.Quantity, 1)
	}
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(product("a", "30.00"))
	cart.Add(product("a", "30.00"))

	cart.Remove("a")
	assert.True(t, cart.IsEmpty())

	// Removing an absent product is a no-op.
	cart.Remove("missing")
	assert.True(t, cart.IsEmpty())
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(product("a", "30.00"))

	cart.UpdateQuantity("a", 5)
	line, ok := cart.Line("a")
	require.True(t, ok)
	assert.Equal(t, 5, line.Quantity)

	// Non-positive quantities delegate to remove.
	cart.UpdateQuantity("a", 0)
	assert.True(t, cart.IsEmpty())

	cart.Add(product("a", "30.00"))
	cart.UpdateQuantity("a", -2)
	assert.True(t, cart.IsEmpty())

	// Updating an absent product is a no-op.
	cart.UpdateQuantity("missing", 4)
	assert.True(t, cart.IsEmpty())
}

func TestCartClearZeroesDerivedValues(t *testing.T) {
	cart := NewCart()
	cart.Add(product("a", "30.00"))
	cart.Add(product("b", "120.00"))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
	assert.True(t, cart.Subtotal().IsZero())
}

func TestCartSnapshotIsDetached(t *testing.T) {
	cart := NewCart()
	cart.Add(product("a", "30.00"))

	snap := cart.Snapshot()
	cart.UpdateQuantity("a", 9)
	cart.Clear()

	require.Len(t, snap, 1)
	assert.Equal(t, 1, snap[0].Quantity)
}

func TestCartLineTotal(t *testing.T) {
	line := CartLine{Product: product("a", "19.99"), Quantity: 3}
	assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("59.97")))
}
