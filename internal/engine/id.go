package engine

import "github.com/google/uuid"

// generateID returns a random UUID for a newly finished recipe.
func generateID() string {
	return uuid.NewString()
}
