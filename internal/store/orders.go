package store

import (
	"context"
	"errors"

	"jaanmak/internal/domain/orders"
)

// RefreshOrders mirrors the server's orders: every order for an admin,
// the customer's own otherwise. Without a session the list is emptied.
func (s *Store) RefreshOrders(ctx context.Context) {
	if err := s.refreshOrders(ctx); err != nil {
		s.logger.Errorw("failed to fetch orders", "error", err)
	}
}

func (s *Store) refreshOrders(ctx context.Context) error {
	s.mu.Lock()
	cred, err := s.credentialLocked()
	if errors.Is(err, ErrNotAuthenticated) {
		s.orders = nil
	}
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return nil
		}
		return err
	}

	var list []orders.Order
	if cred.admin {
		list, err = s.backend.Orders(ctx, cred.token)
	} else {
		list, err = s.backend.MyOrders(ctx, cred.token)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != cred.generation {
		s.logger.Debugw("discarding orders fetched for a previous session")
		return nil
	}
	s.orders = list
	return nil
}

func (s *Store) Orders() []orders.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]orders.Order(nil), s.orders...)
}

func (s *Store) Order(id string) (orders.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return orders.Find(s.orders, id)
}

// UpdateOrderStatus moves an order to status. Only the fields the server
// reports changed are patched into the cached order. Failures are logged
// and returned; the cached order keeps its previous status.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status orders.Status) error {
	if !status.Valid() {
		return orders.ErrUnknownStatus
	}
	cred, err := s.adminCredential()
	if err != nil {
		return err
	}

	patch, err := s.backend.UpdateOrderStatus(ctx, cred.token, id, status)
	if err != nil {
		s.logger.Errorw("failed to update order status", "order", id, "status", status, "error", err)
		return err
	}
	if patch.Status == "" {
		patch.Status = status
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != cred.generation {
		return nil
	}
	s.patchLocked(id, patch.Apply)
	return nil
}

// CancelOrder cancels one of the customer's orders. A cached order that
// is past Processing is refused without asking the server.
func (s *Store) CancelOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	cred, err := s.credentialLocked()
	if err == nil {
		if o, ok := orders.Find(s.orders, id); ok && !o.Status.Cancellable() {
			err = ErrNotCancellable
		}
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if err := s.backend.CancelOrder(ctx, cred.token, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != cred.generation {
		return nil
	}
	s.patchLocked(id, func(o orders.Order) orders.Order {
		o.Status = orders.StatusCancelled
		return o
	})
	return nil
}

func (s *Store) patchLocked(id string, fn func(orders.Order) orders.Order) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i] = fn(s.orders[i])
			return
		}
	}
}
