package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// FormatNumber prints a quantity or calorie value the short way: whole
// numbers without a decimal point, everything else with the fewest digits
// that round-trip.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IngredientLine renders "2 cups flour (455 calories per unit, Grains)".
func IngredientLine(ing domain.Ingredient) string {
	return fmt.Sprintf("%s %s %s (%s calories per unit, %s)",
		FormatNumber(ing.Quantity), ing.Unit, ing.Name,
		FormatNumber(ing.CaloriesPerUnit), ing.FoodGroup)
}

// RecipeText renders a recipe as plain text: the name, ingredients in
// insertion order, steps numbered from 1, and the total calories last.
func RecipeText(r *domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe: %s\n", r.Name)
	b.WriteString("Ingredients:\n")
	for _, ing := range r.Ingredients {
		b.WriteString(IngredientLine(ing))
		b.WriteByte('\n')
	}
	b.WriteString("\nSteps:\n")
	for i, s := range r.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.Description)
	}
	fmt.Fprintf(&b, "\nTotal Calories: %s\n", FormatNumber(r.TotalCalories()))
	return b.String()
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`",
	"#", `\#`, "[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`,
)

// RecipeMarkdown renders the same content as RecipeText, in the same
// order, as markdown for glamour.
func RecipeMarkdown(r *domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", mdEscaper.Replace(r.Name))

	b.WriteString("## Ingredients\n\n")
	if len(r.Ingredients) == 0 {
		b.WriteString("_none_\n")
	}
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "- %s %s **%s** _(%s calories per unit, %s)_\n",
			FormatNumber(ing.Quantity), mdEscaper.Replace(ing.Unit), mdEscaper.Replace(ing.Name),
			FormatNumber(ing.CaloriesPerUnit), mdEscaper.Replace(ing.FoodGroup))
	}

	b.WriteString("\n## Steps\n\n")
	if len(r.Steps) == 0 {
		b.WriteString("_none_\n")
	}
	for i, s := range r.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, mdEscaper.Replace(s.Description))
	}

	fmt.Fprintf(&b, "\n**Total Calories:** %s\n", FormatNumber(r.TotalCalories()))
	return b.String()
}

// RenderMarkdown renders markdown with the named glamour style ("dark",
// "light", "notty", ...), word-wrapped at width. It returns the markdown
// unchanged if rendering fails.
func RenderMarkdown(markdown, style string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
