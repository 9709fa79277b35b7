// internal/catalog/store.go
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/shopstream/storefront/internal/models"
)

// Store holds the immutable catalog: every product and category is
// loaded once at process start and never mutated afterwards. Reads
// need no locking.
type Store struct {
	products   []models.Product
	categories []models.Category
	byID       map[string]models.Product
	categoryID map[string]models.Category
}

// Initialize builds the store from the static seed data and validates
// catalog invariants. A violation fails startup.
func Initialize() (*Store, error) {
	return NewStore(seedProducts(), seedCategories())
}

// NewStore validates and indexes a catalog. Invariants: product ids are
// unique, prices are non-negative, ratings fall within [0, 5], and every
// product's category exists in the category set.
func NewStore(products []models.Product, categories []models.Category) (*Store, error) {
	s := &Store{
		products:   products,
		categories: categories,
		byID:       make(map[string]models.Product, len(products)),
		categoryID: make(map[string]models.Category, len(categories)),
	}

	for _, c := range categories {
		if _, dup := s.categoryID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", c.ID)
		}
		s.categoryID[c.ID] = c
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has empty id", p.Name)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q has negative price", p.ID)
		}
		if p.OriginalPrice != nil && p.OriginalPrice.IsNegative() {
			return nil, fmt.Errorf("product %q has negative original price", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("product %q has rating %.2f outside [0,5]", p.ID, p.Rating)
		}
		if _, ok := s.categoryID[p.Category]; !ok {
			return nil, fmt.Errorf("product %q references unknown category %q", p.ID, p.Category)
		}
		s.byID[p.ID] = p
	}

	logrus.WithFields(logrus.Fields{
		"products":   len(products),
		"categories": len(categories),
	}).Info("Catalog loaded")

	return s, nil
}

// Products returns the full catalog in insertion order. Callers must
// not mutate the returned slice.
func (s *Store) Products() []models.Product {
	return s.products
}

func (s *Store) Categories() []models.Category {
	return s.categories
}

func (s *Store) Product(id string) (models.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func (s *Store) Category(id string) (models.Category, bool) {
	c, ok := s.categoryID[id]
	return c, ok
}

// FilterMetadata summarizes the catalog for the storefront's filter
// panel: stock availability counts and the full price range.
type FilterMetadata struct {
	InStock    int               `json:"in_stock"`
	OutOfStock int               `json:"out_of_stock"`
	PriceMin   decimal.Decimal   `json:"price_min"`
	PriceMax   decimal.Decimal   `json:"price_max"`
	Categories []models.Category `json:"categories"`
}

func (s *Store) FilterMetadata() FilterMetadata {
	meta := FilterMetadata{Categories: s.categories}
	for i, p := range s.products {
		if p.InStock {
			meta.InStock++
		} else {
			meta.OutOfStock++
		}
		if i == 0 {
			meta.PriceMin = p.Price
			meta.PriceMax = p.Price
			continue
		}
		if p.Price.LessThan(meta.PriceMin) {
			meta.PriceMin = p.Price
		}
		if p.Price.GreaterThan(meta.PriceMax) {
			meta.PriceMax = p.Price
		}
	}
	return meta
}
