// internal/models/cart.go
package models

import (
	"github.com/shopspring/decimal"
)

// CartLine is one product-plus-quantity entry. Quantity is always >= 1;
// a line whose quantity would drop to zero is removed from the cart
// instead of being stored.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the session-scoped aggregate of what the user intends to buy.
// At most one line exists per product id; insertion order is preserved
// for display. Derived values are computed on every read, never cached.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add creates a line with quantity 1 on first add, and increments the
// existing line otherwise.
func (c *Cart) Add(p Product) {
	if i := c.find(p.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// Remove deletes the line entirely regardless of quantity. No-op if the
// product is not in the cart.
func (c *Cart) Remove(productID string) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}

// UpdateQuantity sets a line's quantity directly. A non-positive
// quantity delegates to Remove so a zero-quantity line can never exist.
// No-op if the product is not in the cart.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.find(productID); i >= 0 {
		c.Lines[i].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the cart line for a product, if present.
func (c *Cart) Line(productID string) (CartLine, bool) {
	if i := c.find(productID); i >= 0 {
		return c.Lines[i], true
	}
	return CartLine{}, false
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity across all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// Snapshot returns a copy of the current lines, detached from the cart
// so later mutations cannot reach into a placed order.
func (c *Cart) Snapshot() []CartLine {
	if len(c.Lines) == 0 {
		return nil
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}
