// Package cart holds the process-local cart state: an ordered set of lines,
// each a product snapshot plus a positive quantity, keyed by product id.
package cart

import (
	"sync"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/domain"
)

// Line is one cart entry. Product is a snapshot taken at add time; later
// catalog changes do not retroactively alter an existing line.
type Line struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Store is the cart aggregate. Lines keep insertion order; removing and
// re-adding a product appends a fresh line at the end rather than restoring
// the old position. The mutex keeps the increment-vs-insert decision in Add
// atomic with respect to other mutations.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

// NewStore creates an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add merges qty into the existing line for the product id, or appends a
// new line holding a snapshot of the product. A non-positive qty is a
// no-op, not an error.
func (s *Store) Add(p domain.Product, qty int) {
	if qty <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity += qty
			return
		}
	}
	s.lines = append(s.lines, Line{Product: p, Quantity: qty})
}

// Remove deletes the line for the product id; absent ids are a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// SetQuantity replaces the quantity of an existing line. A non-positive
// qty is equivalent to Remove. Absent ids are a no-op.
func (s *Store) SetQuantity(productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = qty
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

// Lines returns a copy of the cart lines, in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalCount is the sum of all line quantities, for badge display.
func (s *Store) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of price times quantity over all lines, in minor
// currency units.
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, l := range s.lines {
		total += l.Product.Price * int64(l.Quantity)
	}
	return total
}

func (s *Store) removeLocked(productID string) {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}
