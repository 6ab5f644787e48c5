package domain

// IntentType classifies what the user picked from the menu.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentAddRecipe
	IntentDisplayRecipe
	IntentListRecipes
	IntentExit
	IntentHelp // show the menu again
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentAddRecipe:
		return "add_recipe"
	case IntentDisplayRecipe:
		return "display_recipe"
	case IntentListRecipes:
		return "list_recipes"
	case IntentExit:
		return "exit"
	case IntentHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Intent represents a parsed menu choice.
type Intent struct {
	Type    IntentType
	Payload string // optional context, e.g. a name filter for list
}
