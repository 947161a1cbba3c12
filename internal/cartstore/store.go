package cartstore

import (
	"sync"

	"github.com/shoplite/storefront/pkg/types"
)

// Store holds per-owner carts in memory for the development backend.
// Owners are bearer tokens; anonymous requests share a guest cart. Last
// write wins, which matches the contract the engine is written against.
type Store struct {
	mu    sync.Mutex
	carts map[string][]types.CartItem
}

func New() *Store {
	return &Store{carts: map[string][]types.CartItem{}}
}

// Items returns a snapshot of the owner's cart.
func (s *Store) Items(owner string) []types.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[owner]
	snapshot := make([]types.CartItem, len(items))
	copy(snapshot, items)
	return snapshot
}

// Add appends a line or increments the quantity when the identifier is
// already present; identifiers stay unique per cart.
func (s *Store) Add(owner string, item types.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[owner]
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			s.carts[owner] = items
			return
		}
	}
	s.carts[owner] = append(items, item)
}

// Update sets the quantity for the identifier; zero or less removes the
// line. Reports whether the identifier existed.
func (s *Store) Update(owner, id string, quantity int) bool {
	if quantity <= 0 {
		return s.Remove(owner, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[owner]
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			s.carts[owner] = items
			return true
		}
	}
	return false
}

// Remove drops the line for the identifier, reporting whether it existed.
func (s *Store) Remove(owner, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[owner]
	for i := range items {
		if items[i].ID == id {
			s.carts[owner] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the owner's cart.
func (s *Store) Clear(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, owner)
}
