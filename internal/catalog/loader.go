package catalog

import (
	"context"
	"sync"

	"storefront/internal/models"
)

// Loader caches the catalog for the session and serializes competing
// loads under a latest-request-wins rule: a fetch that resolves after a
// newer fetch has already completed is discarded rather than allowed to
// overwrite the fresher result.
type Loader struct {
	src Source

	mu      sync.Mutex
	seq     uint64 // most recently issued request
	applied uint64 // request whose result is installed
	cached  []models.Product
	loaded  bool
}

func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Load fetches the catalog through the source. The result is installed
// only if no newer request completed while this one was in flight; the
// returned slice is always the freshest installed catalog.
func (l *Loader) Load(ctx context.Context) ([]models.Product, error) {
	l.mu.Lock()
	l.seq++
	id := l.seq
	l.mu.Unlock()

	products, err := l.src.List(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if id >= l.applied {
		l.applied = id
		l.cached = products
		l.loaded = true
	}
	return copyProducts(l.cached), nil
}

// Products returns the session catalog, loading it on first use.
func (l *Loader) Products(ctx context.Context) ([]models.Product, error) {
	l.mu.Lock()
	if l.loaded {
		defer l.mu.Unlock()
		return copyProducts(l.cached), nil
	}
	l.mu.Unlock()
	return l.Load(ctx)
}

// Get looks the product up inside the session catalog. A miss is
// ErrNotFound, never an empty result.
func (l *Loader) Get(ctx context.Context, id string) (*models.Product, error) {
	products, err := l.Products(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(products, id)
}

func copyProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	copy(out, in)
	return out
}
