// internal/catalog/seed.go
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/shopstream/storefront/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "electronics", Name: "Electronics", Icon: "cpu", Image: "/img/categories/electronics.jpg"},
		{ID: "fashion", Name: "Fashion", Icon: "shirt", Image: "/img/categories/fashion.jpg"},
		{ID: "home", Name: "Home & Kitchen", Icon: "home", Image: "/img/categories/home.jpg"},
		{ID: "beauty", Name: "Beauty", Icon: "sparkles", Image: "/img/categories/beauty.jpg"},
		{ID: "sports", Name: "Sports & Outdoors", Icon: "dumbbell", Image: "/img/categories/sports.jpg"},
		{ID: "books", Name: "Books", Icon: "book", Image: "/img/categories/books.jpg"},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "p-1001",
			Name:          "Aurora Wireless Earbuds",
			Price:         dec("49.99"),
			OriginalPrice: decPtr("69.99"),
			Category:      "electronics",
			Rating:        4.3,
			ReviewCount:   2841,
			InStock:       true,
			Colors: []models.Color{
				{Name: "Black", Hex: "#111111"},
				{Name: "White", Hex: "#f5f5f5", Image: "/img/products/earbuds-white.jpg"},
			},
			Images:      []string{"/img/products/earbuds-1.jpg", "/img/products/earbuds-2.jpg"},
			Features:    []string{"Active noise cancellation", "28h battery with case", "IPX4 splash resistance"},
			Description: "Compact true-wireless earbuds with hybrid noise cancellation and low-latency mode.",
		},
		{
			ID:            "p-1002",
			Name:          "Nimbus 14 Laptop",
			Price:         dec("899.00"),
			OriginalPrice: decPtr("1049.00"),
			Category:      "electronics",
			Rating:        4.6,
			ReviewCount:   412,
			InStock:       true,
			Images:        []string{"/img/products/nimbus14-1.jpg"},
			Features:      []string{"14\" 2.8K OLED display", "16GB RAM / 512GB SSD", "1.2kg magnesium chassis"},
			Description:   "Thin-and-light laptop for everyday work with all-day battery life.",
		},
		{
			ID:          "p-1003",
			Name:        "Pulse Smart Watch",
			Price:       dec("179.99"),
			Category:    "electronics",
			Rating:      4.1,
			ReviewCount: 1268,
			InStock:     true,
			Colors: []models.Color{
				{Name: "Graphite", Hex: "#2f2f2f"},
				{Name: "Rose Gold", Hex: "#b76e79"},
			},
			Images:      []string{"/img/products/pulse-watch.jpg"},
			Features:    []string{"AMOLED always-on display", "GPS + heart-rate tracking", "7-day battery"},
			Description: "Fitness-first smart watch with sleep and stress tracking.",
		},
		{
			ID:          "p-1004",
			Name:        "Volt USB-C Charger 65W",
			Price:       dec("29.50"),
			Category:    "electronics",
			Rating:      4.7,
			ReviewCount: 5203,
			InStock:     false,
			Images:      []string{"/img/products/volt-charger.jpg"},
			Features:    []string{"GaN II architecture", "Dual-port fast charging"},
			Description: "Pocket-size 65W charger for laptops, tablets and phones.",
		},
		{
			ID:            "p-2001",
			Name:          "Harbor Denim Jacket",
			Price:         dec("74.00"),
			OriginalPrice: decPtr("98.00"),
			Category:      "fashion",
			Rating:        4.4,
			ReviewCount:   389,
			InStock:       true,
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors: []models.Color{
				{Name: "Indigo", Hex: "#3f4e7d"},
				{Name: "Washed Black", Hex: "#3a3a3a", Image: "/img/products/harbor-black.jpg"},
			},
			Images:      []string{"/img/products/harbor-jacket.jpg"},
			Description: "Classic-fit denim jacket in heavyweight 14oz cotton.",
		},
		{
			ID:          "p-2002",
			Name:        "Meridian Running Sneakers",
			Price:       dec("119.95"),
			Category:    "fashion",
			Rating:      4.8,
			ReviewCount: 947,
			InStock:     true,
			Sizes:       []string{"7", "8", "9", "10", "11", "12"},
			Colors: []models.Color{
				{Name: "Cloud White", Hex: "#fafafa"},
				{Name: "Volt", Hex: "#cdff00"},
			},
			Images:      []string{"/img/products/meridian-1.jpg", "/img/products/meridian-2.jpg"},
			Features:    []string{"Nitrogen-infused foam midsole", "Engineered mesh upper"},
			Description: "Neutral daily trainer with a soft, responsive ride.",
		},
		{
			ID:          "p-2003",
			Name:        "Fieldstone Wool Scarf",
			Price:       dec("34.00"),
			Category:    "fashion",
			Rating:      4.2,
			ReviewCount: 156,
			InStock:     true,
			Colors: []models.Color{
				{Name: "Oatmeal", Hex: "#d9cbb3"},
				{Name: "Forest", Hex: "#2d4a33"},
			},
			Images:      []string{"/img/products/fieldstone-scarf.jpg"},
			Description: "Merino wool scarf woven in a classic herringbone pattern.",
		},
		{
			ID:            "p-3001",
			Name:          "Ember Cast Iron Dutch Oven 5.5qt",
			Price:         dec("89.99"),
			OriginalPrice: decPtr("129.99"),
			Category:      "home",
			Rating:        4.9,
			ReviewCount:   3112,
			InStock:       true,
			Colors: []models.Color{
				{Name: "Flame", Hex: "#d84b16"},
				{Name: "Deep Teal", Hex: "#0f4c5c"},
			},
			Images:      []string{"/img/products/ember-oven.jpg"},
			Features:    []string{"Enameled cast iron", "Oven safe to 260°C"},
			Description: "Heirloom-quality dutch oven for braising, baking and roasting.",
		},
		{
			ID:          "p-3002",
			Name:        "Drift Ceramic Pour-Over Set",
			Price:       dec("42.00"),
			Category:    "home",
			Rating:      4.5,
			ReviewCount: 621,
			InStock:     true,
			Images:      []string{"/img/products/drift-pourover.jpg"},
			Description: "Matte ceramic dripper and carafe for slow-brewed coffee.",
		},
		{
			ID:          "p-3003",
			Name:        "Halcyon Robot Vacuum",
			Price:       dec("549.00"),
			Category:    "home",
			Rating:      4.0,
			ReviewCount: 864,
			InStock:     true,
			Images:      []string{"/img/products/halcyon-vacuum.jpg"},
			Features:    []string{"LiDAR mapping", "Self-emptying dock", "4000Pa suction"},
			Description: "Maps your home and empties itself for up to 60 days.",
		},
		{
			ID:          "p-4001",
			Name:        "Lumen Vitamin C Serum",
			Price:       dec("24.99"),
			Category:    "beauty",
			Rating:      4.3,
			ReviewCount: 1745,
			InStock:     true,
			Images:      []string{"/img/products/lumen-serum.jpg"},
			Features:    []string{"15% L-ascorbic acid", "Fragrance free"},
			Description: "Brightening daily serum with vitamin C and ferulic acid.",
		},
		{
			ID:          "p-4002",
			Name:        "Velvet Matte Lipstick Trio",
			Price:       dec("38.50"),
			Category:    "beauty",
			Rating:      3.9,
			ReviewCount: 203,
			InStock:     false,
			Images:      []string{"/img/products/velvet-trio.jpg"},
			Description: "Three long-wear matte shades in a travel case.",
		},
		{
			ID:            "p-5001",
			Name:          "Summit Trekking Poles (Pair)",
			Price:         dec("64.95"),
			OriginalPrice: decPtr("79.95"),
			Category:      "sports",
			Rating:        4.6,
			ReviewCount:   532,
			InStock:       true,
			Images:        []string{"/img/products/summit-poles.jpg"},
			Features:      []string{"Carbon fiber shafts", "Quick-lock adjustment"},
			Description:   "Featherweight poles with cork grips for long days on trail.",
		},
		{
			ID:          "p-5002",
			Name:        "Tidal Yoga Mat 6mm",
			Price:       dec("48.00"),
			Category:    "sports",
			Rating:      4.4,
			ReviewCount: 918,
			InStock:     true,
			Colors: []models.Color{
				{Name: "Storm", Hex: "#4b5d6b"},
				{Name: "Coral", Hex: "#f47f6b"},
			},
			Images:      []string{"/img/products/tidal-mat.jpg"},
			Description: "Dense, grippy mat with alignment guides.",
		},
		{
			ID:          "p-6001",
			Name:        "The Cartographer's Daughter",
			Price:       dec("16.99"),
			Category:    "books",
			Rating:      4.7,
			ReviewCount: 2290,
			InStock:     true,
			Images:      []string{"/img/products/cartographer.jpg"},
			Description: "A sweeping historical novel spanning three generations and two continents.",
		},
		{
			ID:          "p-6002",
			Name:        "Practical Bread Baking",
			Price:       dec("32.00"),
			Category:    "books",
			Rating:      4.5,
			ReviewCount: 688,
			InStock:     true,
			Images:      []string{"/img/products/bread-baking.jpg"},
			Description: "Step-by-step techniques from sandwich loaves to sourdough.",
		},
	}
}
