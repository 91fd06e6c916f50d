package store

import (
	"context"

	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/params"
)

// RefreshProducts replaces the catalog with the server's list. An empty
// list restores the bundled catalog; a failed fetch keeps what is there.
func (s *Store) RefreshProducts(ctx context.Context) {
	if err := s.refreshProducts(ctx); err != nil {
		s.logger.Errorw("failed to fetch products, keeping current catalog", "error", err)
	}
}

func (s *Store) refreshProducts(ctx context.Context) error {
	list, err := s.backend.Products(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.Replace(list)
	if len(list) == 0 {
		s.logger.Infow("server returned no products, using bundled catalog")
	}
	return nil
}

func (s *Store) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.All()
}

func (s *Store) Product(id string) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Get(id)
}

func (s *Store) Related(p catalog.Product, n int) []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Related(p, n)
}

func (s *Store) ProductPage(page, limit int) ([]catalog.Product, params.Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Page(page, limit)
}

// UsingDefaultCatalog reports whether the bundled catalog is showing.
func (s *Store) UsingDefaultCatalog() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.UsingDefaults()
}

// CreateProduct adds the server's copy of the new product once it exists.
func (s *Store) CreateProduct(ctx context.Context, in catalog.Input) (catalog.Product, error) {
	cred, err := s.adminCredential()
	if err != nil {
		return catalog.Product{}, err
	}
	p, err := s.backend.CreateProduct(ctx, cred.token, in)
	if err != nil {
		return catalog.Product{}, err
	}
	s.mu.Lock()
	s.products.Put(p)
	s.mu.Unlock()
	return p, nil
}

// UpdateProduct replaces the cached product with the server's response.
func (s *Store) UpdateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	cred, err := s.adminCredential()
	if err != nil {
		return catalog.Product{}, err
	}
	updated, err := s.backend.UpdateProduct(ctx, cred.token, p)
	if err != nil {
		return catalog.Product{}, err
	}
	s.mu.Lock()
	s.products.Swap(p.ID, updated)
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	cred, err := s.adminCredential()
	if err != nil {
		return err
	}
	if err := s.backend.DeleteProduct(ctx, cred.token, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.products.Remove(id)
	s.mu.Unlock()
	return nil
}
