package domain

import (
	"context"
	"iter"
)

// Catalog holds the recipes known to the running process, ordered by name.
type Catalog interface {
	// Add inserts a recipe and re-sorts the collection by name. Recipes
	// with equal names keep their insertion order.
	Add(recipe *Recipe)
	// List yields (1-based position, name) pairs in current order.
	List() iter.Seq2[int, string]
	// Get returns the recipe at a 1-based position, or ErrOutOfRange.
	Get(position int) (*Recipe, error)
	// Search yields the (position, name) pairs whose name contains query,
	// case-insensitively. Positions refer to the full list.
	Search(query string) iter.Seq2[int, string]
	// Len returns the number of recipes.
	Len() int
}

// IntentParser converts raw menu input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout or to the terminal UI.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// Console is the terminal surface the interaction shell drives. Prompt
// blocks until the user submits a line and returns io.EOF once input is
// closed.
type Console interface {
	Prompt(ctx context.Context, label string) (string, error)
	PrintTitle(text string)
	PrintLine(text string)
	PrintHint(text string)
	PrintUrgent(text string)
	ShowRecipe(recipe *Recipe)
	SetStatus(text string)
}
