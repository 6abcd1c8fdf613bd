package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"storefront/internal/blobstore"
	"storefront/internal/models"
)

const testKey = "storefront_cart_v1"

func newTestStore(t *testing.T) (*Store, blobstore.Store) {
	t.Helper()
	slot, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewStore(context.Background(), slot, testKey, nil), slot
}

func product(id string, price float64) models.Product {
	return models.Product{ID: id, Title: "product " + id, Price: price, Category: "t-shirts"}
}

func TestAddMergesSameSelection(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	p := product("7", 25)

	s.Add(ctx, p, 2, "", "")
	s.Add(ctx, p, 2, "", "")

	lines := s.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 4, lines[0].Qty)
}

func TestAddKeepsDistinctSelectionsApart(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	p := product("1", 19.99)

	s.Add(ctx, p, 1, "Black", "M")
	s.Add(ctx, p, 1, "Black", "L")
	s.Add(ctx, p, 1, "White", "M")
	s.Add(ctx, p, 1, "Black", "M")

	lines := s.Lines()
	require.Len(t, lines, 3)
	require.Equal(t, 2, lines[0].Qty)
	require.Equal(t, "Black", lines[0].Color)
	require.Equal(t, "M", lines[0].Size)
}

func TestAddClampsNonPositiveQty(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, product("1", 10), 0, "", "")
	s.Add(ctx, product("2", 10), -5, "", "")

	lines := s.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, 1, lines[0].Qty)
	require.Equal(t, 1, lines[1].Qty)
}

func TestRemoveMatchesFullKey(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	p := product("1", 10)

	s.Add(ctx, p, 1, "Black", "M")
	s.Add(ctx, p, 1, "", "")

	// wrong selection leaves the cart unchanged
	s.Remove(ctx, "1", "White", "M")
	require.Equal(t, 2, s.Len())

	// unset matches unset only
	s.Remove(ctx, "1", "", "")
	lines := s.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "Black", lines[0].Color)
}

func TestRemoveMissingKeyIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, product("1", 10), 1, "", "")
	before := s.Lines()

	s.Remove(ctx, "999", "", "")
	require.Equal(t, before, s.Lines())
}

func TestUpdateQtySetsAndRemoves(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, product("1", 10), 3, "", "")
	s.UpdateQty(ctx, "1", 7, "", "")
	require.Equal(t, 7, s.Lines()[0].Qty)

	s.UpdateQty(ctx, "1", 0, "", "")
	require.Equal(t, 0, s.Len())

	s.Add(ctx, product("2", 10), 3, "", "")
	s.UpdateQty(ctx, "2", -5, "", "")
	require.Equal(t, 0, s.Len())
}

func TestUpdateQtyMissingKeyIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, product("1", 10), 1, "", "")
	s.UpdateQty(ctx, "999", 5, "", "")

	lines := s.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 1, lines[0].Qty)
}

func TestTotalScenario(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	p := product("7", 25)

	s.Add(ctx, p, 2, "", "")
	require.Equal(t, 1, s.Len())
	require.InDelta(t, 50.00, s.Total(), 1e-9)

	s.Add(ctx, p, 1, "", "")
	require.Equal(t, 1, s.Len())
	require.InDelta(t, 75.00, s.Total(), 1e-9)

	s.Remove(ctx, "7", "", "")
	require.Equal(t, 0, s.Len())
	require.Zero(t, s.Total())
}

func TestClear(t *testing.T) {
	s, slot := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, product("1", 10), 2, "", "")
	s.Add(ctx, product("2", 20), 1, "", "")
	s.Clear(ctx)

	require.Equal(t, 0, s.Len())
	require.Zero(t, s.Total())

	// the empty state is persisted too
	restored := NewStore(ctx, slot, testKey, nil)
	require.Equal(t, 0, restored.Len())
}

func TestEstimatedTax(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, product("1", 100), 1, "", "")
	require.InDelta(t, 100*TaxRate, s.EstimatedTax(), 1e-9)
	require.InDelta(t, 100*(1+TaxRate), s.TotalWithTax(), 1e-9)
}

func TestPersistRestoreRoundTrip(t *testing.T) {
	slot, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	s := NewStore(ctx, slot, testKey, nil)
	s.Add(ctx, product("1", 19.99), 2, "Black", "M")
	s.Add(ctx, product("3", 39.00), 1, "", "S")
	s.Add(ctx, product("1", 19.99), 1, "White", "")

	restored := NewStore(ctx, slot, testKey, nil)
	require.Equal(t, s.Lines(), restored.Lines())
	require.InDelta(t, s.Total(), restored.Total(), 1e-9)
}

func TestCorruptStateLoadsEmpty(t *testing.T) {
	slot, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, slot.Set(ctx, testKey, []byte("{not json")))

	s := NewStore(ctx, slot, testKey, nil)
	require.Equal(t, 0, s.Len())

	// the store stays usable after recovery
	s.Add(ctx, product("1", 10), 1, "", "")
	require.Equal(t, 1, s.Len())
}

func TestMissingStateLoadsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	require.Equal(t, 0, s.Len())
	require.Zero(t, s.Total())
}
