// internal/services/helpers_test.go
package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/shopstream/storefront/internal/catalog"
	"github.com/shopstream/storefront/internal/config"
	"github.com/shopstream/storefront/internal/models"
	"github.com/shopstream/storefront/internal/session"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()

	products := []models.Product{
		{ID: "a", Name: "Budget Buds", Category: "electronics", Price: dec("30.00"), Rating: 4.2, ReviewCount: 500, InStock: true},
		{ID: "b", Name: "Runner Pro", Category: "fashion", Price: dec("120.00"), Rating: 4.8, ReviewCount: 900, InStock: true},
		{ID: "c", Name: "Desk Lamp", Category: "home", Price: dec("50.00"), Rating: 3.9, ReviewCount: 120, InStock: true},
		{ID: "d", Name: "Studio Monitor", Category: "electronics", Price: dec("250.00"), Rating: 4.8, ReviewCount: 80, InStock: false},
		{ID: "e", Name: "Novel", Category: "books", Price: dec("600.00"), Rating: 4.5, ReviewCount: 2000, InStock: true},
	}
	categories := []models.Category{
		{ID: "electronics", Name: "Electronics"},
		{ID: "fashion", Name: "Fashion"},
		{ID: "home", Name: "Home & Kitchen"},
		{ID: "books", Name: "Books"},
	}

	store, err := catalog.NewStore(products, categories)
	require.NoError(t, err)
	return store
}

func testSessionStore() *session.Store {
	return session.NewStore(time.Hour, 15)
}

func testCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		TaxPercent:            8.0,
		FreeShippingThreshold: 50.0,
		ShippingFee:           4.99,
		OrderPrefix:           "ORD",
	}
}

// authenticate flips the session's auth flag the way a successful stub
// login would.
func authenticate(sess *session.Session) {
	sess.Lock()
	sess.Authenticated = true
	sess.Name = "Test Shopper"
	sess.Email = "shopper@example.com"
	sess.Unlock()
}
