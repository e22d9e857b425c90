// Package catalog holds the immutable set of fashion items the matching
// engine works over. The catalog is built once at startup and only ever read
// afterwards, so it needs no locking.
package catalog

import (
	"fmt"

	"github.com/styleloom/stylist/internal/domain"
)

// Catalog is a read-only, insertion-ordered item collection.
type Catalog struct {
	items []domain.Item
	byID  map[string]domain.Item
}

// New builds a catalog from items, rejecting malformed entries and duplicate
// ids. Duplicate ids are a configuration error: fail fast rather than
// silently overwrite.
func New(items []domain.Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]domain.Item, 0, len(items)),
		byID:  make(map[string]domain.Item, len(items)),
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[it.ID]; exists {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateItemID, it.ID)
		}
		c.items = append(c.items, it)
		c.byID[it.ID] = it
	}
	return c, nil
}

// GetAll returns all items in insertion order. Callers must not mutate the
// returned slice elements.
func (c *Catalog) GetAll() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// GetByID returns the item with the given id or domain.ErrItemNotFound.
func (c *Catalog) GetByID(id string) (domain.Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %q", domain.ErrItemNotFound, id)
	}
	return it, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}
