// Package engine finishes recipe entry: it applies the calorie policy and
// files recipes into the catalog.
package engine

import (
	"context"
	"fmt"
	"iter"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithCalorieLimit sets the total above which finished recipes raise the
// calories-exceeded notification.
func WithCalorieLimit(limit float64) Option {
	return func(e *Engine) {
		e.calorieLimit = limit
	}
}

// WithIDFunc replaces the recipe ID generator.
func WithIDFunc(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// Engine owns the path from a fully entered recipe to the catalog. It
// depends only on interfaces and is fully testable with fakes.
type Engine struct {
	catalog      domain.Catalog
	log          *logger.Logger
	calorieLimit float64
	newID        func() string
	finished     map[*domain.Recipe]struct{}
}

// New creates an engine over the given catalog.
func New(catalog domain.Catalog, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog:      catalog,
		log:          log,
		calorieLimit: domain.DefaultCalorieLimit,
		newID:        generateID,
		finished:     make(map[*domain.Recipe]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CalorieLimit returns the configured calorie limit.
func (e *Engine) CalorieLimit() float64 {
	return e.calorieLimit
}

// FinishRecipe completes detail entry for r. It assigns an ID if r has
// none, runs the calorie check exactly once (calling onExceeded in order
// when the total is over the limit), and adds r to the catalog.
//
// A recipe can only be finished once.
func (e *Engine) FinishRecipe(ctx context.Context, r *domain.Recipe, onExceeded ...domain.CaloriesExceededFunc) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if r == nil {
		return false, domain.ErrNilRecipe
	}
	if _, ok := e.finished[r]; ok {
		return false, fmt.Errorf("finishing %q: %w", r.Name, domain.ErrAlreadyFinished)
	}

	if r.ID == "" {
		r.ID = e.newID()
	}

	exceeded := r.CheckCalories(e.calorieLimit, onExceeded...)
	if exceeded {
		e.log.Info("recipe %s (%q) over calorie limit: %.2f > %.2f", r.ID, r.Name, r.TotalCalories(), e.calorieLimit)
	}

	e.catalog.Add(r)
	e.finished[r] = struct{}{}

	e.log.Info("recipe %s added: %q (%d ingredients, %d steps)", r.ID, r.Name, len(r.Ingredients), len(r.Steps))
	return exceeded, nil
}

// Recipes yields (1-based position, name) pairs in catalog order.
func (e *Engine) Recipes() iter.Seq2[int, string] {
	return e.catalog.List()
}

// Find yields the catalog entries whose name contains query.
func (e *Engine) Find(query string) iter.Seq2[int, string] {
	return e.catalog.Search(query)
}

// Recipe returns the recipe at a 1-based catalog position.
func (e *Engine) Recipe(position int) (*domain.Recipe, error) {
	r, err := e.catalog.Get(position)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}
	return r, nil
}

// Count returns the number of recipes in the catalog.
func (e *Engine) Count() int {
	return e.catalog.Len()
}
