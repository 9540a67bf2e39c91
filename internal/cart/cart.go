// Package cart holds the line items for one shopping session and writes them
// through to durable storage on every mutation.
package cart

import (
	"sync"

	"ruya/internal/domain/entity"
	"ruya/pkg/logger"
)

// Item is one cart line. The product is held by value: the cart keeps the
// price and name as they were when the item was added.
type Item struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Store is the authoritative cart for one session. All operations are
// synchronous; mutations persist the full collection before returning.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
}

// NewStore loads any previously persisted cart from storage. A missing,
// corrupt, or unreadable payload starts an empty cart, never an error.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}

	items, err := storage.Load()
	if err != nil {
		logger.Warn("cart: discarding unreadable stored cart: %v", err)
		items = nil
	}
	for _, item := range items {
		if item.Quantity > 0 {
			s.items = append(s.items, item)
		}
	}

	return s
}

// AddItem merges quantity into an existing line for the same product id, or
// appends a new line.
func (s *Store) AddItem(product entity.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			s.persist()
			return
		}
	}

	s.items = append(s.items, Item{Product: product, Quantity: quantity})
	s.persist()
}

// RemoveItem deletes the line for productID. Absent ids are a no-op.
func (s *Store) RemoveItem(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	s.persist()
}

// UpdateQuantity sets the line's quantity to an absolute value. A quantity of
// zero or less removes the line; absent ids are a no-op.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		s.persist()
		return
	}

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems is the sum of all line quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price * quantity over all lines, using the price snapshot
// captured when each item was added.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

func (s *Store) removeLocked(productID int64) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// persist writes the full collection back to storage. A failed write is
// logged and swallowed: the in-memory cart still advances for the rest of
// the session.
func (s *Store) persist() {
	items := make([]Item, len(s.items))
	copy(items, s.items)

	if err := s.storage.Save(items); err != nil {
		logger.Warn("cart: failed to persist cart: %v", err)
	}
}
