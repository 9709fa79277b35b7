// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

// Color is a purchasable color variant of a product. Image, when set,
// overrides the product's primary image for that variant.
type Color struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Image string `json:"image,omitempty"`
}

type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Category      string           `json:"category"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	InStock       bool             `json:"in_stock"`
	Sizes         []string         `json:"sizes,omitempty"`
	Colors        []Color          `json:"colors,omitempty"`
	Images        []string         `json:"images,omitempty"`
	Features      []string         `json:"features,omitempty"`
	Description   string           `json:"description,omitempty"`
}

// Discounted reports whether the product carries a struck-through
// original price. Display convention only, not validated against Price.
func (p Product) Discounted() bool {
	return p.OriginalPrice != nil
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Image string `json:"image"`
}
