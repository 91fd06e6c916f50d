package store

import (
	"jaanmak/internal/domain/carts"
	"jaanmak/internal/domain/catalog"
)

// AddToCart merges qty into the product's line. Stock is not checked here.
func (s *Store) AddToCart(p catalog.Product, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.Add(p, qty); err != nil {
		return err
	}
	return s.persistLocked()
}

func (s *Store) RemoveFromCart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(id)
	return s.persistLocked()
}

func (s *Store) DecreaseQuantity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Decrease(id)
	return s.persistLocked()
}

func (s *Store) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	return s.persistLocked()
}

func (s *Store) Cart() []carts.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *Store) CartSubtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

// CartUnits is the badge count: total units across lines.
func (s *Store) CartUnits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Units()
}

func (s *Store) AddToWishlist(p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.wishlist.Add(p) {
		return nil
	}
	return s.persistLocked()
}

func (s *Store) RemoveFromWishlist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.wishlist.Remove(id) {
		return nil
	}
	return s.persistLocked()
}

// ToggleWishlist saves or unsaves p and reports whether it is now saved.
func (s *Store) ToggleWishlist(p catalog.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := s.wishlist.Toggle(p)
	return saved, s.persistLocked()
}

func (s *Store) InWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(id)
}

func (s *Store) Wishlist() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Items()
}
