package catalog

import (
	"time"

	"storefront/internal/models"
)

func intp(n int) *int { return &n }

// mockProducts is the session dataset used when no remote source is
// configured. Creation dates are relative to startup so recency badges
// and the featured rail behave the same on any day.
func mockProducts() []models.Product {
	now := time.Now().UTC()
	days := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	return []models.Product{
		{
			ID: "1", Title: "Classic Crew Tee", Price: 19.99, ComparePrice: 24.99,
			Gender: []string{"men"}, Category: "t-shirts",
			Description: "Heavyweight cotton tee with a ribbed crew neck.",
			Image:       "/img/products/crew-tee.jpg",
			Colors:      []string{"White", "Black", "Navy"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Rating:      &models.Rating{Rate: 4.3, Count: 118},
			Stock:       intp(42), CreatedAt: days(4),
		},
		{
			ID: "2", Title: "Slim Chino Pants", Price: 49.50,
			Gender: []string{"men"}, Category: "pants",
			Description: "Stretch twill chinos, garment dyed.",
			Image:       "/img/products/slim-chino.jpg",
			Colors:      []string{"Khaki", "Olive"},
			Sizes:       []string{"30", "32", "34", "36"},
			Rating:      &models.Rating{Rate: 4.1, Count: 74},
			Stock:       intp(18), CreatedAt: days(51),
		},
		{
			ID: "3", Title: "Relaxed Linen Shirt", Price: 39.00, ComparePrice: 55.00,
			Gender: []string{"women"}, Category: "shirts",
			Description: "Breathable linen blend with shell buttons.",
			Image:       "/img/products/linen-shirt.jpg",
			VariantImages: []string{
				"/img/products/linen-shirt-2.jpg",
				"/img/products/linen-shirt-3.jpg",
			},
			Colors: []string{"White", "Sand"},
			Sizes:  []string{"XS", "S", "M", "L"},
			Rating: &models.Rating{Rate: 4.6, Count: 201},
			Stock:  intp(7), CreatedAt: days(12),
		},
		{
			ID: "4", Title: "High-Rise Denim", Price: 64.00,
			Gender: []string{"women"}, Category: "pants",
			Description: "Rigid denim with a vintage straight leg.",
			Image:       "/img/products/high-rise-denim.jpg",
			Colors:      []string{"Indigo", "Washed Blue"},
			Sizes:       []string{"24", "26", "28", "30"},
			Rating:      &models.Rating{Rate: 4.4, Count: 156},
			Stock:       intp(23), CreatedAt: days(89),
		},
		{
			ID: "5", Title: "Everyday Hoodie", Price: 54.00, ComparePrice: 68.00,
			Gender: []string{"men", "women"}, Category: "hoodies",
			Description: "Brushed fleece, kangaroo pocket, unisex fit.",
			Image:       "/img/products/everyday-hoodie.jpg",
			Colors:      []string{"Heather Grey", "Black"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Rating:      &models.Rating{Rate: 4.8, Count: 312},
			Stock:       intp(64), CreatedAt: days(2),
		},
		{
			ID: "6", Title: "Court Sneakers", Price: 79.95,
			Gender: []string{"men", "women"}, Category: "shoes",
			Description: "Leather upper on a cupsole, tonal laces.",
			Image:       "/img/products/court-sneakers.jpg",
			Colors:      []string{"White", "Cream"},
			Sizes:       []string{"39", "40", "41", "42", "43", "44"},
			Rating:      &models.Rating{Rate: 4.2, Count: 98},
			Stock:       intp(31), CreatedAt: days(26),
		},
		{
			ID: "7", Title: "Wool Beanie", Price: 18.00,
			Gender: []string{"men", "women"}, Category: "accessories",
			Description: "Merino rib knit, one size.",
			Image:       "/img/products/wool-beanie.jpg",
			Colors:      []string{"Charcoal", "Rust", "Forest"},
			Rating:      &models.Rating{Rate: 4.0, Count: 41},
			Stock:       intp(120), CreatedAt: days(140),
		},
		{
			ID: "8", Title: "Pleated Midi Skirt", Price: 45.00, ComparePrice: 60.00,
			Gender: []string{"women"}, Category: "skirts",
			Description: "Sharp pleats in a fluid crepe.",
			Image:       "/img/products/pleated-midi.jpg",
			Colors:      []string{"Black", "Emerald"},
			Sizes:       []string{"XS", "S", "M", "L"},
			Rating:      &models.Rating{Rate: 4.5, Count: 87},
			Stock:       intp(12), CreatedAt: days(9),
		},
		{
			ID: "9", Title: "Oxford Button-Down", Price: 42.00,
			Gender: []string{"men"}, Category: "shirts",
			Description: "Classic oxford cloth, single chest pocket.",
			Image:       "/img/products/oxford.jpg",
			Colors:      []string{"Blue", "White", "Pink"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Rating:      &models.Rating{Rate: 4.3, Count: 133},
			Stock:       intp(27), CreatedAt: days(63),
		},
		{
			ID: "10", Title: "Canvas Tote", Price: 24.00,
			Gender: []string{"men", "women"}, Category: "accessories",
			Description: "Heavy canvas with an interior zip pocket.",
			Image:       "/img/products/canvas-tote.jpg",
			Colors:      []string{"Natural", "Black"},
			Rating:      &models.Rating{Rate: 3.9, Count: 22},
			CreatedAt:   days(17),
		},
		{
			ID: "11", Title: "Ribbed Tank", Price: 14.50,
			Gender: []string{"women"}, Category: "t-shirts",
			Description: "Fitted rib jersey tank.",
			Image:       "/img/products/ribbed-tank.jpg",
			Colors:      []string{"White", "Black", "Sage"},
			Sizes:       []string{"XS", "S", "M", "L"},
			Rating:      &models.Rating{Rate: 4.1, Count: 67},
			Stock:       intp(0), CreatedAt: days(33),
		},
		{
			ID: "12", Title: "Trail Runners", Price: 95.00, ComparePrice: 120.00,
			Gender: []string{"men"}, Category: "shoes",
			Description: "Grippy outsole and reinforced toe cap.",
			Image:       "/img/products/trail-runners.jpg",
			Colors:      []string{"Graphite", "Burnt Orange"},
			Sizes:       []string{"40", "41", "42", "43", "44", "45"},
			Rating:      &models.Rating{Rate: 4.7, Count: 244},
			Stock:       intp(15), CreatedAt: days(6),
		},
	}
}
