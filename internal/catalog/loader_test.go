package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

type listResult struct {
	products []models.Product
	err      error
}

// stubSource blocks each List call until the test releases it, so load
// ordering can be controlled exactly.
type stubSource struct {
	mu    sync.Mutex
	calls []chan listResult
}

func (s *stubSource) List(ctx context.Context) ([]models.Product, error) {
	ch := make(chan listResult, 1)
	s.mu.Lock()
	s.calls = append(s.calls, ch)
	s.mu.Unlock()
	r := <-ch
	return r.products, r.err
}

func (s *stubSource) Get(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(products, id)
}

func (s *stubSource) waitForCalls(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		got := len(s.calls)
		s.mu.Unlock()
		if got >= n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d List calls", n)
}

func (s *stubSource) release(i int, r listResult) {
	s.mu.Lock()
	ch := s.calls[i]
	s.mu.Unlock()
	ch <- r
}

func TestLoaderCachesAfterFirstLoad(t *testing.T) {
	src := &stubSource{}
	l := NewLoader(src)
	ctx := context.Background()

	catalogV1 := []models.Product{{ID: "1", Title: "Tee"}}

	done := make(chan struct{})
	var got []models.Product
	var err error
	go func() {
		got, err = l.Load(ctx)
		close(done)
	}()
	src.waitForCalls(t, 1)
	src.release(0, listResult{products: catalogV1})
	<-done

	require.NoError(t, err)
	require.Equal(t, catalogV1, got)

	// second read is served from cache, no new List call
	cached, err := l.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, catalogV1, cached)
	src.mu.Lock()
	require.Len(t, src.calls, 1)
	src.mu.Unlock()
}

func TestLoaderDiscardsStaleResult(t *testing.T) {
	src := &stubSource{}
	l := NewLoader(src)
	ctx := context.Background()

	stale := []models.Product{{ID: "1", Title: "Old Catalog"}}
	fresh := []models.Product{{ID: "2", Title: "New Catalog"}}

	var wg sync.WaitGroup
	var staleGot []models.Product

	// first request goes out and hangs
	wg.Add(1)
	go func() {
		defer wg.Done()
		staleGot, _ = l.Load(ctx)
	}()
	src.waitForCalls(t, 1)

	// a newer request starts and completes first
	wg.Add(1)
	var freshGot []models.Product
	go func() {
		defer wg.Done()
		freshGot, _ = l.Load(ctx)
	}()
	src.waitForCalls(t, 2)
	src.release(1, listResult{products: fresh})

	// let the newer result install before the stale one resolves
	require.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.loaded
	}, 2*time.Second, time.Millisecond)

	src.release(0, listResult{products: stale})
	wg.Wait()

	require.Equal(t, fresh, freshGot)
	// the superseded fetch must not overwrite the fresher catalog
	require.Equal(t, fresh, staleGot)

	current, err := l.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, fresh, current)
}

func TestLoaderPropagatesError(t *testing.T) {
	src := &stubSource{}
	l := NewLoader(src)

	boom := errors.New("fetch failed")
	done := make(chan struct{})
	var err error
	go func() {
		_, err = l.Load(context.Background())
		close(done)
	}()
	src.waitForCalls(t, 1)
	src.release(0, listResult{err: boom})
	<-done

	require.ErrorIs(t, err, boom)
}

func TestLoaderGet(t *testing.T) {
	src := &stubSource{}
	l := NewLoader(src)
	ctx := context.Background()

	catalogV1 := []models.Product{{ID: "7", Title: "Beanie", Price: 18}}
	done := make(chan struct{})
	var p *models.Product
	var err error
	go func() {
		p, err = l.Get(ctx, "7")
		close(done)
	}()
	src.waitForCalls(t, 1)
	src.release(0, listResult{products: catalogV1})
	<-done

	require.NoError(t, err)
	require.Equal(t, "Beanie", p.Title)

	_, err = l.Get(ctx, "404")
	require.ErrorIs(t, err, ErrNotFound)
}
