package catalog

import (
	"math"
	"time"

	"storefront/internal/models"
)

// NewProductWindow is how long a product keeps its "new" badge.
const NewProductWindow = 30 * 24 * time.Hour

// OnSale reports whether the compare-at price marks the product down.
func OnSale(p models.Product) bool {
	return p.ComparePrice > 0 && p.ComparePrice > p.Price
}

// DiscountPercent is the rounded percentage off the compare-at price,
// 0 when the product is not on sale.
func DiscountPercent(p models.Product) int {
	if !OnSale(p) {
		return 0
	}
	return int(math.Round((p.ComparePrice - p.Price) / p.ComparePrice * 100))
}

// IsNew reports whether the product was created within the last 30
// days. "Now" is a parameter so callers recompute per render instead of
// caching a value that ages.
func IsNew(p models.Product, now time.Time) bool {
	if p.CreatedAt.IsZero() {
		return false
	}
	return now.Sub(p.CreatedAt) <= NewProductWindow
}
