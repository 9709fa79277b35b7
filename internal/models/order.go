// internal/models/order.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the synthetic record produced by the checkout machine's
// terminal transition. Once created it is immutable; the line snapshot
// is taken before the cart is cleared.
type Order struct {
	Number    string          `json:"number"`
	CreatedAt time.Time       `json:"created_at"`
	Lines     []CartLine      `json:"lines"`
	AddressID string          `json:"address_id"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
}

func (o Order) ItemCount() int {
	count := 0
	for _, l := range o.Lines {
		count += l.Quantity
	}
	return count
}

// TrackingEvent is one stage of an order's synthesized delivery
// timeline. Stages past the order's current status are projections.
type TrackingEvent struct {
	Status    OrderStatus `json:"status"`
	Label     string      `json:"label"`
	At        time.Time   `json:"at"`
	Completed bool        `json:"completed"`
}

// Address is one entry of the fixed mock address book used by the
// checkout flow. Nothing is persisted.
type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Line1     string `json:"line1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"is_default"`
}

// CheckoutState is the per-session position in the linear
// cart -> address -> payment -> confirmation flow.
type CheckoutState struct {
	Step      CheckoutStep `json:"step"`
	AddressID string       `json:"address_id,omitempty"`
}
