package cart

import (
	"sync"

	"github.com/amakha/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Line is one product/quantity pair. The product fields are copied by value
// when the line is added; later catalog edits do not rewrite existing lines.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Store holds the current cart. The demo serves one browser session per
// process, so there is exactly one cart behind the handle. None of the
// operations fail: unknown ids are silent no-ops.
type Store struct {
	mu    sync.RWMutex
	lines []Line
}

func NewStore() *Store {
	return &Store{}
}

// AddItem merges into an existing line for the product id (quantity +1) or
// appends a fresh quantity-1 line snapshotting the product.
func (s *Store) AddItem(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.ID == product.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{Product: product, Quantity: 1})
}

// RemoveItem drops the line for the product id.
func (s *Store) RemoveItem(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// UpdateQuantity sets the line's quantity to the given absolute value. A
// value of zero or less removes the line; a stored quantity is always >= 1.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i, line := range s.lines {
		if line.ID == productID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Items returns the cart lines in insertion order.
func (s *Store) Items() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total derives the cart total as sum(price * quantity). It is never stored.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (s *Store) removeLocked(productID int64) {
	for i, line := range s.lines {
		if line.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}
