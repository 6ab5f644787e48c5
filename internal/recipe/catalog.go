// Package recipe provides the recipe catalog.
package recipe

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.Catalog = (*MemoryCatalog)(nil)

// MemoryCatalog holds recipes in memory, sorted by name. It is meant for a
// single flow of control and does no locking.
type MemoryCatalog struct {
	recipes []*domain.Recipe
	log     *logger.Logger
}

// NewMemoryCatalog creates an empty catalog.
func NewMemoryCatalog(log *logger.Logger) *MemoryCatalog {
	return &MemoryCatalog{log: log}
}

// Add appends the recipe and re-sorts the whole collection by name.
// The sort is stable, so equal names stay in insertion order.
func (c *MemoryCatalog) Add(r *domain.Recipe) {
	c.recipes = append(c.recipes, r)
	sort.SliceStable(c.recipes, func(i, j int) bool {
		return c.recipes[i].Name < c.recipes[j].Name
	})
	c.log.Debug("catalog add %q, count=%d", r.Name, len(c.recipes))
}

// List yields (1-based position, name) pairs in sorted order. Each call
// returns a fresh sequence over the catalog as it is when iterated.
func (c *MemoryCatalog) List() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, r := range c.recipes {
			if !yield(i+1, r.Name) {
				return
			}
		}
	}
}

// Search yields the (position, name) pairs whose name contains query,
// ignoring case. Positions refer to the full catalog so they can be passed
// straight to Get.
func (c *MemoryCatalog) Search(query string) iter.Seq2[int, string] {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(yield func(int, string) bool) {
		for pos, name := range c.List() {
			if !strings.Contains(strings.ToLower(name), q) {
				continue
			}
			if !yield(pos, name) {
				return
			}
		}
	}
}

// Get returns the recipe at a 1-based position.
func (c *MemoryCatalog) Get(position int) (*domain.Recipe, error) {
	if position < 1 || position > len(c.recipes) {
		c.log.Debug("catalog get out of range: %d (count=%d)", position, len(c.recipes))
		return nil, fmt.Errorf("%w: %d not in 1..%d", domain.ErrOutOfRange, position, len(c.recipes))
	}
	return c.recipes[position-1], nil
}

// Len returns the number of recipes.
func (c *MemoryCatalog) Len() int {
	return len(c.recipes)
}
