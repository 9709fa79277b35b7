// internal/catalog/store_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstream/storefront/internal/models"
)

func fixtureCategories() []models.Category {
	return []models.Category{
		{ID: "electronics", Name: "Electronics"},
		{ID: "fashion", Name: "Fashion"},
		{ID: "home", Name: "Home & Kitchen"},
		{ID: "books", Name: "Books"},
	}
}

func TestNewStoreIndexesCatalog(t *testing.T) {
	store, err := NewStore(fixtureProducts(), fixtureCategories())
	require.NoError(t, err)

	p, ok := store.Product("b")
	require.True(t, ok)
	assert.Equal(t, "Runner Pro", p.Name)

	_, ok = store.Product("missing")
	assert.False(t, ok)

	c, ok := store.Category("books")
	require.True(t, ok)
	assert.Equal(t, "Books", c.Name)

	assert.Len(t, store.Products(), 5)
	assert.Len(t, store.Categories(), 4)
}

func TestNewStoreRejectsInvalidCatalogs(t *testing.T) {
	base := fixtureCategories()

	tests := []struct {
		name     string
		mutate   func(p []models.Product) []models.Product
		errorHas string
	}{
		{
			"duplicate product id",
			func(p []models.Product) []models.Product {
				p[1].ID = p[0].ID
				return p
			},
			"duplicate product id",
		},
		{
			"empty product id",
			func(p []models.Product) []models.Product {
				p[0].ID = ""
				return p
			},
			"empty id",
		},
		{
			"negative price",
			func(p []models.Product) []models.Product {
				p[0].Price = dec("-1")
				return p
			},
			"negative price",
		},
		{
			"negative original price",
			func(p []models.Product) []models.Product {
				p[0].OriginalPrice = decPtr("-10")
				return p
			},
			"negative original price",
		},
		{
			"rating above 5",
			func(p []models.Product) []models.Product {
				p[0].Rating = 5.1
				return p
			},
			"outside [0,5]",
		},
		{
			"unknown category",
			func(p []models.Product) []models.Product {
				p[0].Category = "toys"
				return p
			},
			"unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.mutate(fixtureProducts()), base)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorHas)
		})
	}
}

func TestNewStoreRejectsDuplicateCategory(t *testing.T) {
	cats := fixtureCategories()
	cats = append(cats, models.Category{ID: "books"})

	_, err := NewStore(fixtureProducts(), cats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate category id")
}

func TestFilterMetadata(t *testing.T) {
	store, err := NewStore(fixtureProducts(), fixtureCategories())
	require.NoError(t, err)

	meta := store.FilterMetadata()
	assert.Equal(t, 4, meta.InStock)
	assert.Equal(t, 1, meta.OutOfStock)
	assert.True(t, meta.PriceMin.Equal(dec("30.00")))
	assert.True(t, meta.PriceMax.Equal(dec("600.00")))
	assert.Len(t, meta.Categories, 4)
}

func TestSeedCatalogIsValid(t *testing.T) {
	store, err := Initialize()
	require.NoError(t, err)
	assert.NotEmpty(t, store.Products())
	assert.NotEmpty(t, store.Categories())
}
