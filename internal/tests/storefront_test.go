// internal/tests/storefront_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/shopstream/storefront/internal/catalog"
	"github.com/shopstream/storefront/internal/config"
	"github.com/shopstream/storefront/internal/router"
)

type StorefrontTestSuite struct {
	suite.Suite
	router    *gin.Engine
	sessionID string
	token     string
}

func (suite *StorefrontTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		Session: config.SessionConfig{
			JWTSecret: "test-secret",
			TokenTTL:  1,
			TTL:       60,
		},
		Browse: config.BrowseConfig{
			PageSize:      15,
			PanelPageSize: 10,
			Increment:     10,
			LoadDelayMs:   0,
		},
		Checkout: config.CheckoutConfig{
			TaxPercent:            8.0,
			FreeShippingThreshold: 50.0,
			ShippingFee:           4.99,
			OrderPrefix:           "ORD",
		},
		Storage: config.StorageConfig{
			PincodeFile: filepath.Join(suite.T().TempDir(), "pincode.json"),
		},
	}

	store, err := catalog.Initialize()
	suite.Require().NoError(err)

	suite.router, err = router.Initialize(store, cfg)
	suite.Require().NoError(err)
}

func (suite *StorefrontTestSuite) request(method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if suite.sessionID != "" {
		req.Header.Set("X-Session-ID", suite.sessionID)
	}
	if suite.token != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	if sid := w.Header().Get("X-Session-ID"); sid != "" {
		suite.sessionID = sid
	}

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func data(response map[string]interface{}) map[string]interface{} {
	d, _ := response["data"].(map[string]interface{})
	return d
}

func (suite *StorefrontTestSuite) TestStorefrontFlow() {
	suite.sessionID = ""
	suite.token = ""

	// Health
	w, _ := suite.request("GET", "/health", nil)
	suite.Equal(http.StatusOK, w.Code)

	// Browse with a category filter: every result is fashion.
	w, resp := suite.request("GET", "/v1/products?category=fashion", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.NotEmpty(suite.sessionID)
	products := data(resp)["products"].([]interface{})
	suite.NotEmpty(products)
	for _, p := range products {
		suite.Equal("fashion", p.(map[string]interface{})["category"])
	}

	// Unknown product id renders a not-found envelope.
	w, resp = suite.request("GET", "/v1/products/nope", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.False(resp["success"].(bool))

	// Add one in-stock product ($49.99).
	w, resp = suite.request("POST", "/v1/cart/items", map[string]interface{}{"product_id": "p-1001"})
	suite.Equal(http.StatusOK, w.Code)
	suite.InDelta(1.0, data(resp)["item_count"].(float64), 0.001)

	// Proceeding unauthenticated blocks with a redirect to auth.
	w, resp = suite.request("POST", "/v1/checkout/proceed", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	errObj := resp["error"].(map[string]interface{})
	details := errObj["details"].(map[string]interface{})
	suite.Contains(details["redirect"], "/v1/auth/login")

	// Machine did not advance.
	w, resp = suite.request("GET", "/v1/checkout", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("cart", data(resp)["step"])

	// Stub login with arbitrary non-empty credentials.
	w, resp = suite.request("POST", "/v1/auth/login?redirect=checkout", map[string]interface{}{
		"email":    "maya@example.com",
		"password": "anything",
	})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("checkout", data(resp)["redirect"])
	auth := data(resp)["auth"].(map[string]interface{})
	suite.token = auth["token"].(string)
	suite.NotEmpty(suite.token)

	// Re-enter checkout at the address step, per the hand-off
	// convention.
	w, resp = suite.request("GET", "/v1/checkout?step=address", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("address", data(resp)["step"])

	// Select a mock address, then place the order.
	w, resp = suite.request("POST", "/v1/checkout/address", map[string]interface{}{"address_id": "addr-1"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("payment", data(resp)["step"])

	w, resp = suite.request("POST", "/v1/checkout/order", nil)
	suite.Equal(http.StatusCreated, w.Code)
	order := data(resp)["order"].(map[string]interface{})
	orderNumber := order["number"].(string)
	suite.NotEmpty(orderNumber)

	// $49.99 is under the free-shipping threshold: flat fee plus 8% tax.
	// Decimals marshal as quoted strings.
	suite.Equal("49.99", order["subtotal"])
	suite.Equal("4.99", order["shipping"])
	suite.Equal("4", order["tax"])
	suite.Equal("58.98", order["total"])

	// The cart was cleared by the terminal transition.
	w, resp = suite.request("GET", "/v1/cart", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.InDelta(0.0, data(resp)["item_count"].(float64), 0.001)

	// The placed order feeds both history and tracking.
	w, resp = suite.request("GET", "/v1/orders", nil)
	suite.Equal(http.StatusOK, w.Code)
	orders := data(resp)["orders"].([]interface{})
	suite.Require().Len(orders, 1)
	suite.Equal(orderNumber, orders[0].(map[string]interface{})["number"])

	w, resp = suite.request("GET", "/v1/orders/"+orderNumber+"/tracking", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(data(resp)["tracking"].([]interface{}), 5)
}

func (suite *StorefrontTestSuite) TestIncrementalReveal() {
	// Fresh session for this test.
	suite.sessionID = ""
	suite.token = ""

	w, resp := suite.request("GET", "/v1/products", nil)
	suite.Equal(http.StatusOK, w.Code)
	meta := resp["meta"].(map[string]interface{})
	total := int(meta["total"].(float64))
	suite.Greater(total, 15)
	suite.Equal(15, int(meta["visible"].(float64)))
	suite.True(meta["has_more"].(bool))

	w, resp = suite.request("POST", "/v1/products/more", nil)
	suite.Equal(http.StatusOK, w.Code)
	meta = resp["meta"].(map[string]interface{})
	suite.Equal(total, int(meta["visible"].(float64)))
	suite.False(meta["has_more"].(bool))
}

func (suite *StorefrontTestSuite) TestPincodeAndAssistant() {
	suite.sessionID = ""
	suite.token = ""

	w, resp := suite.request("PUT", "/v1/pincode", map[string]interface{}{"pincode": "400050"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("400050", data(resp)["pincode"])

	w, resp = suite.request("GET", "/v1/pincode", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("400050", data(resp)["pincode"])

	// Malformed pincode is rejected by validation.
	w, _ = suite.request("PUT", "/v1/pincode", map[string]interface{}{"pincode": "abc"})
	suite.Equal(http.StatusBadRequest, w.Code)

	// Assistant keyword rules.
	w, resp = suite.request("POST", "/v1/assistant/query", map[string]interface{}{"message": "show me a laptop"})
	suite.Equal(http.StatusOK, w.Code)
	suite.True(data(resp)["matched"].(bool))
	suggestion := data(resp)["suggestion"].(map[string]interface{})
	suite.Equal("electronics", suggestion["category"])

	w, resp = suite.request("POST", "/v1/assistant/query", map[string]interface{}{"message": "how is the weather"})
	suite.Equal(http.StatusOK, w.Code)
	suite.False(data(resp)["matched"].(bool))
}

func TestStorefrontSuite(t *testing.T) {
	suite.Run(t, new(StorefrontTestSuite))
}
