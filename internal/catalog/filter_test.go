// internal/catalog/filter_test.go
package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstream/storefront/internal/models"
)

func fixtureProducts() []models.Product {
	return []models.Product{
		{ID: "a", Name: "Budget Buds", Category: "electronics", Price: dec("30.00"), Rating: 4.2, ReviewCount: 500, InStock: true, Description: "wireless earbuds"},
		{ID: "b", Name: "Runner Pro", Category: "fashion", Price: dec("120.00"), Rating: 4.8, ReviewCount: 900, InStock: true},
		{ID: "c", Name: "Desk Lamp", Category: "home", Price: dec("50.00"), Rating: 3.9, ReviewCount: 120, InStock: true},
		{ID: "d", Name: "Studio Monitor", Category: "electronics", Price: dec("250.00"), Rating: 4.8, ReviewCount: 80, InStock: false},
		{ID: "e", Name: "Novel", Category: "books", Price: dec("600.00"), Rating: 4.5, ReviewCount: 2000, InStock: true},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSearchNoFilterKeepsInsertionOrder(t *testing.T) {
	got := Search(fixtureProducts(), FilterState{})
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(got))
}

func TestSearchPredicates(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterState
		want   []string
	}{
		{"category exact match", FilterState{Category: "fashion"}, []string{"b"}},
		{"category no match is empty not error", FilterState{Category: "beauty"}, []string{}},
		{"query matches name", FilterState{Query: "runner"}, []string{"b"}},
		{"query matches category", FilterState{Query: "electron"}, []string{"a", "d"}},
		{"query matches description", FilterState{Query: "earbuds"}, []string{"a"}},
		{"query is case insensitive", FilterState{Query: "RUNNER"}, []string{"b"}},
		{"min rating", FilterState{MinRating: 4.5}, []string{"b", "d", "e"}},
		{"bucket under50 excludes boundary", FilterState{PriceBucket: BucketUnder50}, []string{"a"}},
		{"bucket 50to100 includes lower bound", FilterState{PriceBucket: Bucket50To100}, []string{"c"}},
		{"bucket 100to200", FilterState{PriceBucket: Bucket100To200}, []string{"b"}},
		{"bucket 200to500", FilterState{PriceBucket: Bucket200To500}, []string{"d"}},
		{"bucket over500 is open ended", FilterState{PriceBucket: BucketOver500}, []string{"e"}},
		{"predicates are ANDed", FilterState{Category: "electronics", MinRating: 4.5}, []string{"d"}},
		{"all predicates together", FilterState{Category: "electronics", Query: "buds", MinRating: 4.0, PriceBucket: BucketUnder50}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(fixtureProducts(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearchSort(t *testing.T) {
	tests := []struct {
		name string
		sort SortKey
		want []string
	}{
		{"price ascending", SortPriceAsc, []string{"a", "c", "b", "d", "e"}},
		{"price descending", SortPriceDesc, []string{"e", "d", "b", "c", "a"}},
		{"rating descending is stable for ties", SortRatingDesc, []string{"b", "d", "e", "a", "c"}},
		{"reviews descending", SortReviewsDesc, []string{"e", "b", "a", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(fixtureProducts(), FilterState{Sort: tt.sort})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearchIsPure(t *testing.T) {
	products := fixtureProducts()
	filter := FilterState{Category: "electronics", Sort: SortPriceDesc}

	first := Search(products, filter)
	second := Search(products, filter)

	assert.Equal(t, first, second)
	// Input order untouched by sorting the output.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(products))
}

func TestSearchOutputIsSubsequenceOfCatalog(t *testing.T) {
	products := fixtureProducts()
	got := Search(products, FilterState{MinRating: 4.0})

	pos := -1
	for _, p := range got {
		found := false
		for i, cp := range products {
			if cp.ID == p.ID && i > pos {
				pos = i
				found = true
				break
			}
		}
		require.True(t, found, "result %q out of catalog order", p.ID)
	}
}

func TestPriceBucketContains(t *testing.T) {
	assert.True(t, BucketAny.Contains(dec("9999")))
	assert.True(t, BucketUnder50.Contains(decimal.Zero))
	assert.False(t, BucketUnder50.Contains(dec("50")))
	assert.True(t, BucketOver500.Contains(dec("500")))
	assert.False(t, Bucket200To500.Contains(dec("500")))
}

func TestFilterParamValidity(t *testing.T) {
	assert.True(t, SortDefault.Valid())
	assert.True(t, SortPriceAsc.Valid())
	assert.False(t, SortKey("alphabetical").Valid())

	assert.True(t, BucketAny.Valid())
	assert.True(t, Bucket100To200.Valid())
	assert.False(t, PriceBucket("under5000").Valid())
}
