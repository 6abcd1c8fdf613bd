package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"storefront/internal/blobstore"
	"storefront/internal/models"
)

// TaxRate is the fixed rate behind the display-only tax estimate.
const TaxRate = 0.08

// Store owns the cart lines for the session. Lines keep insertion
// order; identity is the (product, color, size) key. Every mutation is
// written back to the blob slot, and a slot that is absent or fails to
// parse at load time degrades to an empty cart.
type Store struct {
	mu    sync.Mutex
	lines []models.CartLine

	slot blobstore.Store
	key  string
	log  *slog.Logger
}

// NewStore restores the previously persisted cart, or starts empty.
// Load failure is the one recovered error in the package: it is logged
// and never surfaced.
func NewStore(ctx context.Context, slot blobstore.Store, key string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{slot: slot, key: key, log: log}
	s.lines = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []models.CartLine {
	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, blobstore.ErrNoKey) {
			s.log.Warn("cart_load_failed", "key", s.key, "error", err)
		}
		return nil
	}
	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.log.Warn("cart_load_failed", "key", s.key, "reason", "unparsable state", "error", err)
		return nil
	}
	return lines
}

// persist is called with the lock held. Write failure is logged, not
// returned: the in-memory cart stays authoritative for the session.
func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		s.log.Error("cart_persist_failed", "key", s.key, "error", err)
		return
	}
	if err := s.slot.Set(ctx, s.key, raw); err != nil {
		s.log.Error("cart_persist_failed", "key", s.key, "error", err)
	}
}

// Add merges into the line with the same (product, color, size) key or
// appends a new one. A quantity below 1 counts as 1, so a stored line
// can never reach qty <= 0 through Add.
func (s *Store) Add(ctx context.Context, p models.Product, qty int, color, size string) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.LineKey{ProductID: p.ID, Color: color, Size: size}
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Qty += qty
			s.persist(ctx)
			return
		}
	}
	s.lines = append(s.lines, models.CartLine{Product: p, Qty: qty, Color: color, Size: size})
	s.persist(ctx)
}

// Remove deletes the line matching the full key. Unset color or size
// only matches lines added without that selection. Missing key is a
// no-op.
func (s *Store) Remove(ctx context.Context, productID, color, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeLocked(models.LineKey{ProductID: productID, Color: color, Size: size}) {
		s.persist(ctx)
	}
}

func (s *Store) removeLocked(key models.LineKey) bool {
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQty sets the quantity on the matching line. A quantity of zero
// or below removes the line instead. Missing key is a no-op.
func (s *Store) UpdateQty(ctx context.Context, productID string, qty int, color, size string) {
	key := models.LineKey{ProductID: productID, Color: color, Size: size}
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		if s.removeLocked(key) {
			s.persist(ctx)
		}
		return
	}
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Qty = qty
			s.persist(ctx)
			return
		}
	}
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist(ctx)
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len is the number of lines; Count the number of units across them.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Qty
	}
	return n
}

// Total is recomputed on every call, never cached across mutations.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, l := range s.lines {
		total += l.Product.Price * float64(l.Qty)
	}
	return total
}

// EstimatedTax is a fixed-rate display figure, not a tax computation.
func (s *Store) EstimatedTax() float64 {
	return s.Total() * TaxRate
}

func (s *Store) TotalWithTax() float64 {
	return s.Total() * (1 + TaxRate)
}
