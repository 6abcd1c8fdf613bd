package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"
)

// ErrNotFound is the one error the core propagates: a product id that
// does not exist in the catalog. Distinct from an empty list.
var ErrNotFound = errors.New("product not found")

// Source provides the full catalog. It is awaited once per session and
// treated as an opaque asynchronous provider; lookup by id is a scan of
// the same list, not a separate index.
type Source interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
}

// MockSource serves the built-in dataset, optionally delaying to mimic
// a remote call.
type MockSource struct {
	Latency  time.Duration
	products []models.Product
}

func NewMockSource() *MockSource {
	return &MockSource{products: mockProducts()}
}

func (s *MockSource) List(ctx context.Context) ([]models.Product, error) {
	if s.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Latency):
		}
	}
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MockSource) Get(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(products, id)
}

func findByID(products []models.Product, id string) (*models.Product, error) {
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
}
