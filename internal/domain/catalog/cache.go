package catalog

import "jaanmak/internal/params"

// Cache mirrors the server's product list. It is never empty: it starts
// with the bundled defaults and falls back to them whenever a refresh
// yields nothing usable. Cache is not safe for concurrent use.
type Cache struct {
	products []Product
	fallback bool
}

func NewCache() *Cache {
	return &Cache{products: Defaults(), fallback: true}
}

// Replace swaps the cache for a server list. An empty list restores the
// defaults.
func (c *Cache) Replace(products []Product) {
	if len(products) == 0 {
		c.Reset()
		return
	}
	c.products = append([]Product(nil), products...)
	c.fallback = false
}

// Reset restores the bundled catalog.
func (c *Cache) Reset() {
	c.products = Defaults()
	c.fallback = true
}

// UsingDefaults reports whether the bundled catalog is being served.
func (c *Cache) UsingDefaults() bool { return c.fallback }

// Put stores the server's version of a product, replacing the entry with
// the same id or appending it.
func (c *Cache) Put(p Product) {
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return
		}
	}
	c.products = append(c.products, p)
}

// Swap replaces the entry stored under id with p. The server may hand
// back a different id than the one sent, so the old key is used for the
// lookup. If id is absent p is appended.
func (c *Cache) Swap(id string, p Product) {
	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i] = p
			return
		}
	}
	c.products = append(c.products, p)
}

func (c *Cache) Remove(id string) {
	out := c.products[:0]
	for _, p := range c.products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	c.products = out
}

func (c *Cache) Get(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Cache) All() []Product {
	return append([]Product(nil), c.products...)
}

func (c *Cache) Len() int { return len(c.products) }

// Related returns up to n other products sharing p's category, in catalog order.
func (c *Cache) Related(p Product, n int) []Product {
	var out []Product
	for _, other := range c.products {
		if len(out) >= n {
			break
		}
		if other.ID != p.ID && other.Category == p.Category {
			out = append(out, other)
		}
	}
	return out
}

// Page slices the catalog for listing views.
func (c *Cache) Page(page, limit int) ([]Product, params.Pagination) {
	p := params.Paginate(page, limit)
	p.ComputeMeta(len(c.products))
	start, end := p.Bounds(len(c.products))
	return append([]Product(nil), c.products[start:end]...), p
}
