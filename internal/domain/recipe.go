// Package domain defines the core types and interfaces for the recipe book.
// All other packages depend on domain; domain depends on nothing.
package domain

// DefaultCalorieLimit is the total above which a finished recipe raises
// the calories-exceeded notification.
const DefaultCalorieLimit = 300.0

// Ingredient is a named quantity of a food item. Only Quantity changes
// after creation, and only through Recipe.Scale.
type Ingredient struct {
	Name            string
	Quantity        float64
	Unit            string // "cups", "grams", "pieces", ...
	CaloriesPerUnit float64
	FoodGroup       string
}

// Calories returns the calories this ingredient contributes at its
// current quantity.
func (i Ingredient) Calories() float64 {
	return i.Quantity * i.CaloriesPerUnit
}

// Step is one instruction. Its position in Recipe.Steps is its identity.
type Step struct {
	Description string
}

// CaloriesExceededFunc receives the computed total when a recipe crosses
// its calorie limit.
type CaloriesExceededFunc func(total float64)

// Recipe is a named aggregate of ingredients and steps.
//
// The total calorie count is derived from the live ingredient list on
// every read and is never stored.
type Recipe struct {
	ID          string
	Name        string
	Ingredients []Ingredient
	Steps       []Step
}

// NewRecipe returns an empty recipe with the given name.
func NewRecipe(name string) *Recipe {
	return &Recipe{
		Name:        name,
		Ingredients: []Ingredient{},
		Steps:       []Step{},
	}
}

// AddIngredient appends an ingredient. Callers validate numeric fields.
func (r *Recipe) AddIngredient(ing Ingredient) {
	r.Ingredients = append(r.Ingredients, ing)
}

// AddStep appends a step. Any text is accepted, including "".
func (r *Recipe) AddStep(description string) {
	r.Steps = append(r.Steps, Step{Description: description})
}

// TotalCalories sums quantity × calories-per-unit over the current
// ingredients.
func (r *Recipe) TotalCalories() float64 {
	var total float64
	for _, ing := range r.Ingredients {
		total += ing.Calories()
	}
	return total
}

// CheckCalories compares the current total against limit. When the total
// is strictly greater, every handler is called in order with that total
// and CheckCalories reports true. With no handlers the event is dropped.
func (r *Recipe) CheckCalories(limit float64, handlers ...CaloriesExceededFunc) bool {
	total := r.TotalCalories()
	if total <= limit {
		return false
	}
	for _, h := range handlers {
		if h != nil {
			h(total)
		}
	}
	return true
}

// Scale multiplies every ingredient quantity by factor in place.
// Zero and negative factors are applied as given.
func (r *Recipe) Scale(factor float64) {
	for i := range r.Ingredients {
		r.Ingredients[i].Quantity *= factor
	}
}

// Clear drops all ingredients and steps. The name and ID are kept.
func (r *Recipe) Clear() {
	r.Ingredients = r.Ingredients[:0]
	r.Steps = r.Steps[:0]
}
