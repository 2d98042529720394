package catalog

// Product represents a catalog entry for the liquor store.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Product struct {
	ID                string  `json:"productId"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	SubCategory       string  `json:"subCategory,omitempty"`
	Price             float64 `json:"price"`
	Cost              float64 `json:"cost"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	Barcode           string  `json:"barcode,omitempty"`
	ImageURL          string  `json:"imageUrl,omitempty"`
	Description       string  `json:"description,omitempty"`
	ABV               float64 `json:"abv"`
	Volume            string  `json:"volume,omitempty"`
	Brand             string  `json:"brand,omitempty"`
}

// AllowedCategories contains the supported product categories used across the app.
var AllowedCategories = []string{
	"beer",
	"wine",
	"spirits",
	"mixers",
	"other",
}

// IsAllowedCategory reports whether category is one of the supported values.
func IsAllowedCategory(category string) bool {
	for _, c := range AllowedCategories {
		if category == c {
			return true
		}
	}
	return false
}

// IsLowStock reports whether the product is at or below its restock threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
