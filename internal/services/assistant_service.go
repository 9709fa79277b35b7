// internal/services/assistant_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/shopstream/storefront/internal/catalog"
)

// AssistantRule maps a keyword set to a category (and optionally a
// price bucket). Rules are evaluated top-to-bottom and the first match
// wins: this is a static lookup table, not inference.
type AssistantRule struct {
	Keywords []string
	Category string
	Bucket   catalog.PriceBucket
	Reply    string
}

// Suggestion is the filter state the assistant proposes for a query.
type Suggestion struct {
	Category string              `json:"category"`
	Bucket   catalog.PriceBucket `json:"price_bucket,omitempty"`
	Reply    string              `json:"reply"`
}

type AssistantService struct {
	rules []AssistantRule
}

// NewAssistantService validates that every rule points at a real
// category.
func NewAssistantService(store *catalog.Store, rules []AssistantRule) (*AssistantService, error) {
	for _, r := range rules {
		if _, ok := store.Category(r.Category); !ok {
			return nil, fmt.Errorf("assistant rule references unknown category %q", r.Category)
		}
	}
	return &AssistantService{rules: rules}, nil
}

// Match lowercases the input and returns the first rule any of whose
// keywords appears as a substring. No match returns ok=false.
func (s *AssistantService) Match(input string) (Suggestion, bool) {
	q := strings.ToLower(input)
	for _, r := range s.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(q, kw) {
				return Suggestion{
					Category: r.Category,
					Bucket:   r.Bucket,
					Reply:    r.Reply,
				}, true
			}
		}
	}
	return Suggestion{}, false
}

// DefaultAssistantRules is the canned keyword script shipped with the
// storefront.
func DefaultAssistantRules() []AssistantRule {
	return []AssistantRule{
		{
			Keywords: []string{"cheap electronics", "budget gadget"},
			Category: "electronics",
			Bucket:   catalog.BucketUnder50,
			Reply:    "Here are some electronics under $50.",
		},
		{
			Keywords: []string{"laptop", "phone", "headphone", "earbud", "charger", "gadget", "electronic"},
			Category: "electronics",
			Reply:    "Take a look at our electronics.",
		},
		{
			Keywords: []string{"shoe", "sneaker", "jacket", "scarf", "wear", "clothes", "fashion", "outfit"},
			Category: "fashion",
			Reply:    "Here is what's trending in fashion.",
		},
		{
			Keywords: []string{"kitchen", "cook", "coffee", "vacuum", "home"},
			Category: "home",
			Reply:    "Browsing home and kitchen for you.",
		},
		{
			Keywords: []string{"serum", "lipstick", "skincare", "makeup", "beauty"},
			Category: "beauty",
			Reply:    "Here are our beauty picks.",
		},
		{
			Keywords: []string{"yoga", "trek", "hike", "gym", "fitness", "sport", "outdoor"},
			Category: "sports",
			Reply:    "Gear up with sports and outdoors.",
		},
		{
			Keywords: []string{"book", "novel", "read"},
			Category: "books",
			Reply:    "Some reading material, coming up.",
		},
	}
}
