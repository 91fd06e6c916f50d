// Package wishlist holds saved-for-later products with set semantics.
package wishlist

import "jaanmak/internal/domain/catalog"

// Set keeps products unique by id in the order they were saved. Set is
// not safe for concurrent use.
type Set struct {
	items []catalog.Product
}

func New() *Set { return &Set{} }

// Restore rebuilds a set from persisted products, dropping repeats.
func Restore(products []catalog.Product) *Set {
	s := New()
	for _, p := range products {
		if p.ID != "" {
			s.Add(p)
		}
	}
	return s
}

// Add saves p and reports whether it was newly added.
func (s *Set) Add(p catalog.Product) bool {
	if s.Contains(p.ID) {
		return false
	}
	s.items = append(s.items, p)
	return true
}

// Remove drops id and reports whether it was present.
func (s *Set) Remove(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle removes p if saved, otherwise adds it. It reports whether p is
// saved afterwards.
func (s *Set) Toggle(p catalog.Product) bool {
	if s.Remove(p.ID) {
		return false
	}
	return s.Add(p)
}

func (s *Set) Contains(id string) bool {
	for _, p := range s.items {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *Set) Items() []catalog.Product {
	return append([]catalog.Product(nil), s.items...)
}

func (s *Set) Len() int { return len(s.items) }
