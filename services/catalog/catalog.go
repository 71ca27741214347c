package catalog

import (
	"fmt"

	"k2demo/models"
)

// Catalog is the in-memory product catalog. Loaded once at startup and
// immutable for the process lifetime; order is preserved so tie-broken search
// results stay stable.
type Catalog struct {
	products []models.Product
	byID     map[string]*models.Product
}

// New builds a catalog keyed by SKU id. Duplicate ids are an authoring error.
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: products,
		byID:     make(map[string]*models.Product, len(products)),
	}
	for i := range products {
		p := &c.products[i]
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate SKU id %q", p.ID)
		}
		c.byID[p.ID] = p
	}
	return c, nil
}

// MustNew is New for static data known to be well-formed.
func MustNew(products []models.Product) *Catalog {
	c, err := New(products)
	if err != nil {
		panic(err)
	}
	return c
}

// Get resolves a SKU id. The second return is false when the SKU is unknown.
func (c *Catalog) Get(id string) (*models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the products in authoring order. Callers must not mutate.
func (c *Catalog) All() []models.Product {
	return c.products
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.products)
}
