// internal/catalog/filter.go
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopstream/storefront/internal/models"
)

type SortKey string

const (
	SortDefault     SortKey = ""
	SortPriceAsc    SortKey = "price_asc"
	SortPriceDesc   SortKey = "price_desc"
	SortRatingDesc  SortKey = "rating_desc"
	SortReviewsDesc SortKey = "reviews_desc"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortReviewsDesc:
		return true
	}
	return false
}

// PriceBucket is one of five fixed, non-overlapping price ranges. Each
// bucket includes its lower bound and excludes its upper bound.
type PriceBucket string

const (
	BucketAny      PriceBucket = ""
	BucketUnder50  PriceBucket = "under50"
	Bucket50To100  PriceBucket = "50to100"
	Bucket100To200 PriceBucket = "100to200"
	Bucket200To500 PriceBucket = "200to500"
	BucketOver500  PriceBucket = "over500"
)

var bucketBounds = map[PriceBucket][2]decimal.Decimal{
	BucketUnder50:  {decimal.Zero, decimal.NewFromInt(50)},
	Bucket50To100:  {decimal.NewFromInt(50), decimal.NewFromInt(100)},
	Bucket100To200: {decimal.NewFromInt(100), decimal.NewFromInt(200)},
	Bucket200To500: {decimal.NewFromInt(200), decimal.NewFromInt(500)},
	BucketOver500:  {decimal.NewFromInt(500), decimal.Decimal{}},
}

func (b PriceBucket) Valid() bool {
	if b == BucketAny {
		return true
	}
	_, ok := bucketBounds[b]
	return ok
}

// Contains reports whether a price falls within the bucket. The empty
// bucket matches everything.
func (b PriceBucket) Contains(price decimal.Decimal) bool {
	if b == BucketAny {
		return true
	}
	bounds, ok := bucketBounds[b]
	if !ok {
		return false
	}
	if price.LessThan(bounds[0]) {
		return false
	}
	if b == BucketOver500 {
		return true
	}
	return price.LessThan(bounds[1])
}

// FilterState is the set of user-chosen predicates narrowing the
// catalog view. Zero values mean "match all" on that dimension.
type FilterState struct {
	Category    string      `json:"category"`
	Query       string      `json:"query"`
	MinRating   float64     `json:"min_rating"`
	PriceBucket PriceBucket `json:"price_bucket"`
	Sort        SortKey     `json:"sort"`
}

func (f FilterState) matches(p models.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	return f.PriceBucket.Contains(p.Price)
}

// Search applies every active predicate (ANDed) to the catalog and
// returns the matches ordered by the sort key, or in catalog insertion
// order when no sort is set. Pure: the input is never mutated and the
// same inputs always yield the same output. An empty result is a valid,
// expected output.
func Search(products []models.Product, f FilterState) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortReviewsDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReviewCount > out[j].ReviewCount
		})
	}

	return out
}
