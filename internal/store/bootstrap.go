package store

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Bootstrap fetches the catalog and, when signed in, the orders at
// startup. Both run concurrently; the first failure is returned after
// both finish, and each cache has already fallen back on its own.
func (s *Store) Bootstrap(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		if err := s.refreshProducts(ctx); err != nil {
			s.logger.Errorw("failed to fetch products, keeping current catalog", "error", err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := s.refreshOrders(ctx); err != nil {
			s.logger.Errorw("failed to fetch orders", "error", err)
			return err
		}
		return nil
	})
	return g.Wait()
}
