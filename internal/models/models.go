package models

import "time"

// Rating is the aggregate review score carried with a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is one catalog entry. Products are loaded once per session
// from the product source and never mutated afterwards.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	ComparePrice  float64  `json:"compare_price,omitempty"`
	Gender        []string `json:"gender,omitempty"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category"`
	Image         string   `json:"image,omitempty"`
	VariantImages []string `json:"variant_images,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"size,omitempty"`
	Rating        *Rating  `json:"rating,omitempty"`
	// Stock is nil when unknown or unlimited.
	Stock     *int      `json:"stock,omitempty"`
	CreatedAt time.Time `json:"create_at"`
}

// CartLine is one entry in the cart. The product is denormalized so the
// cart page can render without re-fetching the catalog.
type CartLine struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
	Color   string  `json:"color,omitempty"`
	Size    string  `json:"size,omitempty"`
}

// LineKey identifies a line within a cart. Two lines with the same
// product id but different color or size selections are distinct.
type LineKey struct {
	ProductID string
	Color     string
	Size      string
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.Product.ID, Color: l.Color, Size: l.Size}
}
