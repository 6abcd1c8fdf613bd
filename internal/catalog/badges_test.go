package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func TestOnSaleAndDiscount(t *testing.T) {
	p := models.Product{Price: 80, ComparePrice: 100}
	require.True(t, OnSale(p))
	require.Equal(t, 20, DiscountPercent(p))
}

func TestNotOnSale(t *testing.T) {
	cases := []struct {
		name    string
		product models.Product
	}{
		{"no compare price", models.Product{Price: 80}},
		{"compare equals price", models.Product{Price: 80, ComparePrice: 80}},
		{"compare below price", models.Product{Price: 80, ComparePrice: 60}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, OnSale(tc.product))
			require.Zero(t, DiscountPercent(tc.product))
		})
	}
}

func TestDiscountRounds(t *testing.T) {
	// (100-66.5)/100 = 33.5% rounds up
	p := models.Product{Price: 66.5, ComparePrice: 100}
	require.Equal(t, 34, DiscountPercent(p))
}

func TestIsNew(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	require.True(t, IsNew(models.Product{CreatedAt: now.AddDate(0, 0, -5)}, now))
	require.True(t, IsNew(models.Product{CreatedAt: now.Add(-NewProductWindow)}, now))
	require.False(t, IsNew(models.Product{CreatedAt: now.Add(-NewProductWindow - time.Second)}, now))
	require.False(t, IsNew(models.Product{}, now))
}
