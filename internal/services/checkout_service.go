// internal/services/checkout_service.go
package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopstream/storefront/internal/config"
	"github.com/shopstream/storefront/internal/models"
	"github.com/shopstream/storefront/internal/session"
)

var (
	// ErrAuthRequired blocks cart -> address. The machine stays put and
	// the caller hands the user off to the auth flow.
	ErrAuthRequired = errors.New("authentication required")

	ErrEmptyCart      = errors.New("cart is empty")
	ErrWrongStep      = errors.New("not allowed from the current checkout step")
	ErrNoAddress      = errors.New("no delivery address selected")
	ErrUnknownAddress = errors.New("unknown address")
)

// CheckoutService drives the strictly linear
// cart -> address -> payment -> confirmation flow. Every transition
// either succeeds or is blocked by a guard that leaves the state
// unchanged; there are no partial-failure states.
type CheckoutService struct {
	cfg       config.CheckoutConfig
	addresses []models.Address
}

// CheckoutView is what the checkout screen renders: the machine's
// position plus everything the current step needs.
type CheckoutView struct {
	Step      models.CheckoutStep `json:"step"`
	AddressID string              `json:"address_id,omitempty"`
	Addresses []models.Address    `json:"addresses"`
	Summary   OrderTotals         `json:"summary"`
	ItemCount int                 `json:"item_count"`
}

type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func NewCheckoutService(cfg config.CheckoutConfig) *CheckoutService {
	return &CheckoutService{
		cfg:       cfg,
		addresses: mockAddresses(),
	}
}

// Addresses returns the fixed mock address book. Selection among these
// is a purely local UI choice; nothing is persisted.
func (s *CheckoutService) Addresses() []models.Address {
	return s.addresses
}

func (s *CheckoutService) View(sess *session.Session) CheckoutView {
	sess.Lock()
	defer sess.Unlock()
	return s.view(sess)
}

func (s *CheckoutService) view(sess *session.Session) CheckoutView {
	return CheckoutView{
		Step:      sess.Checkout.Step,
		AddressID: sess.Checkout.AddressID,
		Addresses: s.addresses,
		Summary:   s.totals(sess.Cart.Subtotal()),
		ItemCount: sess.Cart.ItemCount(),
	}
}

// Proceed handles "proceed to buy" (cart -> address). Unauthenticated
// sessions are blocked with ErrAuthRequired and the machine does not
// advance. A machine left at confirmation by a previous order re-enters
// at cart first, which is the "continue shopping" exit.
func (s *CheckoutService) Proceed(sess *session.Session) (CheckoutView, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout.Step == models.CheckoutStepConfirmation {
		sess.Checkout = models.CheckoutState{Step: models.CheckoutStepCart}
	}
	if sess.Checkout.Step != models.CheckoutStepCart {
		return s.view(sess), ErrWrongStep
	}
	if sess.Cart.IsEmpty() {
		return s.view(sess), ErrEmptyCart
	}
	if !sess.Authenticated {
		return s.view(sess), ErrAuthRequired
	}

	sess.Checkout.Step = models.CheckoutStepAddress
	return s.view(sess), nil
}

// EnterAt implements the external re-entry convention: after the auth
// hand-off the caller jumps straight to the address step via a query
// parameter rather than the machine resuming on its own. Only the
// address step may be entered this way.
func (s *CheckoutService) EnterAt(sess *session.Session, step models.CheckoutStep) (CheckoutView, error) {
	if step != models.CheckoutStepAddress {
		return s.View(sess), ErrWrongStep
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Cart.IsEmpty() {
		return s.view(sess), ErrEmptyCart
	}
	if !sess.Authenticated {
		return s.view(sess), ErrAuthRequired
	}

	sess.Checkout = models.CheckoutState{Step: models.CheckoutStepAddress}
	return s.view(sess), nil
}

// SelectAddress handles "deliver to this address" (address -> payment).
func (s *CheckoutService) SelectAddress(sess *session.Session, addressID string) (CheckoutView, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout.Step != models.CheckoutStepAddress {
		return s.view(sess), ErrWrongStep
	}
	if addressID == "" {
		return s.view(sess), ErrNoAddress
	}
	if !s.knownAddress(addressID) {
		return s.view(sess), ErrUnknownAddress
	}

	sess.Checkout.AddressID = addressID
	sess.Checkout.Step = models.CheckoutStepPayment
	return s.view(sess), nil
}

// ChangeAddress is the one modeled backward transition
// (payment -> address). It re-runs no guard.
func (s *CheckoutService) ChangeAddress(sess *session.Session) (CheckoutView, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout.Step != models.CheckoutStepPayment {
		return s.view(sess), ErrWrongStep
	}

	sess.Checkout.Step = models.CheckoutStepAddress
	return s.view(sess), nil
}

// PlaceOrder handles "place order" (payment -> confirmation). Ordering
// matters: the order snapshot is captured before the cart is cleared,
// otherwise the confirmation screen has nothing to display.
func (s *CheckoutService) PlaceOrder(sess *session.Session) (models.Order, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout.Step != models.CheckoutStepPayment {
		return models.Order{}, ErrWrongStep
	}
	if sess.Checkout.AddressID == "" {
		return models.Order{}, ErrNoAddress
	}
	if sess.Cart.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	totals := s.totals(sess.Cart.Subtotal())
	order := models.Order{
		Number:    generateOrderNumber(s.cfg.OrderPrefix),
		CreatedAt: time.Now(),
		Lines:     sess.Cart.Snapshot(),
		AddressID: sess.Checkout.AddressID,
		Subtotal:  totals.Subtotal,
		Shipping:  totals.Shipping,
		Tax:       totals.Tax,
		Total:     totals.Total,
		Status:    models.OrderStatusPlaced,
	}

	sess.Orders = append(sess.Orders, order)
	sess.Cart.Clear()
	sess.Checkout.Step = models.CheckoutStepConfirmation

	return order, nil
}

// totals computes shipping and tax for a cart subtotal. Shipping is
// free at or above the threshold, a flat fee below it; tax applies to
// the subtotal only.
func (s *CheckoutService) totals(subtotal decimal.Decimal) OrderTotals {
	shipping := decimal.Zero
	threshold := decimal.NewFromFloat(s.cfg.FreeShippingThreshold)
	if subtotal.GreaterThan(decimal.Zero) && subtotal.LessThan(threshold) {
		shipping = decimal.NewFromFloat(s.cfg.ShippingFee)
	}

	tax := subtotal.
		Mul(decimal.NewFromFloat(s.cfg.TaxPercent)).
		Div(decimal.NewFromInt(100)).
		Round(2)

	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

func (s *CheckoutService) knownAddress(id string) bool {
	for _, a := range s.addresses {
		if a.ID == id {
			return true
		}
	}
	return false
}

const orderSuffixCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderNumber builds "<prefix>-<base36 millis>-<4 random
// chars>", uppercased.
func generateOrderNumber(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	buf := make([]byte, 4)
	rand.Read(buf)
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = orderSuffixCharset[int(b)%len(orderSuffixCharset)]
	}

	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", prefix, ts, suffix))
}

func mockAddresses() []models.Address {
	return []models.Address{
		{
			ID:        "addr-1",
			Name:      "Home",
			Line1:     "14 Beach View Apartments, Carter Road",
			City:      "Mumbai",
			State:     "Maharashtra",
			Pincode:   "400050",
			Phone:     "+91 98200 11223",
			IsDefault: true,
		},
		{
			ID:      "addr-2",
			Name:    "Office",
			Line1:   "3rd Floor, Sunrise Tech Park, Outer Ring Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560103",
			Phone:   "+91 98450 44556",
		},
		{
			ID:      "addr-3",
			Name:    "Parents",
			Line1:   "B-22, Green Park Extension",
			City:    "New Delhi",
			State:   "Delhi",
			Pincode: "110016",
			Phone:   "+91 98110 77889",
		},
	}
}
