// internal/services/cart_service.go
package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/shopstream/storefront/internal/catalog"
	"github.com/shopstream/storefront/internal/models"
	"github.com/shopstream/storefront/internal/session"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")
)

// CartService mediates between the catalog and the session's cart
// aggregate. The stock check lives here, at the add-to-cart trigger;
// the aggregate itself (models.Cart) never enforces stock.
type CartService struct {
	catalog *catalog.Store
}

// CartSummary is the cart plus its derived values, computed on every
// read so they can never go stale.
type CartSummary struct {
	Lines     []models.CartLine `json:"lines"`
	ItemCount int               `json:"item_count"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
}

func NewCartService(store *catalog.Store) *CartService {
	return &CartService{catalog: store}
}

func (s *CartService) Add(sess *session.Session, productID string) (CartSummary, error) {
	product, ok := s.catalog.Product(productID)
	if !ok {
		return CartSummary{}, ErrProductNotFound
	}
	if !product.InStock {
		return CartSummary{}, ErrOutOfStock
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Cart.Add(product)
	return summarize(sess.Cart), nil
}

func (s *CartService) Remove(sess *session.Session, productID string) CartSummary {
	sess.Lock()
	defer sess.Unlock()
	sess.Cart.Remove(productID)
	return summarize(sess.Cart)
}

func (s *CartService) UpdateQuantity(sess *session.Session, productID string, quantity int) CartSummary {
	sess.Lock()
	defer sess.Unlock()
	sess.Cart.UpdateQuantity(productID, quantity)
	return summarize(sess.Cart)
}

// Clear empties the cart and sends the checkout machine back to its
// initial step: any later stage was reached on the strength of a cart
// that no longer exists.
func (s *CartService) Clear(sess *session.Session) CartSummary {
	sess.Lock()
	defer sess.Unlock()
	sess.Cart.Clear()
	sess.Checkout = models.CheckoutState{Step: models.CheckoutStepCart}
	return summarize(sess.Cart)
}

func (s *CartService) Get(sess *session.Session) CartSummary {
	sess.Lock()
	defer sess.Unlock()
	return summarize(sess.Cart)
}

func summarize(c *models.Cart) CartSummary {
	return CartSummary{
		Lines:     c.Snapshot(),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
	}
}
