// Package shell runs the interactive recipe menu on top of a Console.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/display"
	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Menu and prompt text.
const (
	menuTitle        = "Recipe Management System"
	menuChoose       = "Choose an option: "
	msgInvalidChoice = "Invalid input. Please enter a valid option number:"
	msgInvalidOption = "Invalid option. Please try again."

	promptName        = "Enter the name of the recipe: "
	promptIngredients = "Enter the number of ingredients: "
	promptSteps       = "Enter the number of steps: "
	promptRecipeNum   = "Enter the recipe number to display: "
	msgInvalidCount   = "Invalid input. Please enter a whole number (0 or more):"
	msgInvalidRecipe  = "Invalid input. Please enter a valid recipe number:"

	msgNoRecipes        = "No recipes available."
	msgNoRecipesDisplay = "No recipes available to display."
)

var menuEntries = []string{
	"1. Add a new recipe",
	"2. Display a recipe",
	"3. List all recipes",
	"4. Exit",
}

// Shell reads menu choices from a console and drives the engine.
type Shell struct {
	engine   *engine.Engine
	parser   domain.IntentParser
	notifier domain.Notifier
	console  domain.Console
	log      *logger.Logger
}

// New creates a shell.
func New(eng *engine.Engine, parser domain.IntentParser, notifier domain.Notifier, console domain.Console, log *logger.Logger) *Shell {
	return &Shell{
		engine:   eng,
		parser:   parser,
		notifier: notifier,
		console:  console,
		log:      log,
	}
}

// Run shows the menu and handles choices until the user exits, input ends
// or ctx is cancelled. Those all return nil; any other console error is
// returned.
func (s *Shell) Run(ctx context.Context) error {
	err := s.loop(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		s.log.Info("shell stopped: %v", err)
		return nil
	}
	return err
}

func (s *Shell) loop(ctx context.Context) error {
	showMenu := true
	for {
		label := ""
		if showMenu {
			s.refreshStatus()
			s.printMenu()
			label = menuChoose
		}

		input, err := s.console.Prompt(ctx, label)
		if err != nil {
			return err
		}

		intent, err := s.parser.Parse(ctx, input)
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidInput) {
				return fmt.Errorf("parsing choice: %w", err)
			}
			s.log.Debug("rejected choice %q: %v", input, err)
			s.console.PrintUrgent(msgInvalidChoice)
			showMenu = false
			continue
		}
		s.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)

		showMenu = true
		switch intent.Type {
		case domain.IntentAddRecipe:
			err = s.addRecipe(ctx)
		case domain.IntentDisplayRecipe:
			err = s.displayRecipe(ctx)
		case domain.IntentListRecipes:
			s.listRecipes(intent.Payload)
		case domain.IntentHelp:
			// The menu is shown again below.
		case domain.IntentExit:
			s.log.Info("exit requested")
			return nil
		default:
			s.console.PrintUrgent(msgInvalidOption)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) printMenu() {
	s.console.PrintLine("")
	s.console.PrintTitle(menuTitle)
	for _, entry := range menuEntries {
		s.console.PrintLine(entry)
	}
}

func (s *Shell) refreshStatus() {
	s.console.SetStatus(fmt.Sprintf("%d recipes | calorie limit %s",
		s.engine.Count(), display.FormatNumber(s.engine.CalorieLimit())))
}

// ── Add ──────────────────────────────────────────────────────────

func (s *Shell) addRecipe(ctx context.Context) error {
	name, err := s.console.Prompt(ctx, promptName)
	if err != nil {
		return err
	}
	r := domain.NewRecipe(name)
	s.console.PrintLine("Entering details for recipe: " + name)

	n, err := s.readCount(ctx, promptIngredients)
	if err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		ing, err := s.readIngredient(ctx, i)
		if err != nil {
			return err
		}
		r.AddIngredient(ing)
	}

	n, err = s.readCount(ctx, promptSteps)
	if err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		s.console.PrintLine(fmt.Sprintf("Enter description for step #%d:", i))
		desc, err := s.console.Prompt(ctx, "")
		if err != nil {
			return err
		}
		r.AddStep(desc)
	}

	warn := func(total float64) {
		msg := fmt.Sprintf("Warning: Total calories (%s) exceed %s!",
			display.FormatNumber(total), display.FormatNumber(s.engine.CalorieLimit()))
		if err := s.notifier.NotifyUrgent(ctx, msg); err != nil {
			s.log.Warn("calorie warning not delivered: %v", err)
		}
	}
	if _, err := s.engine.FinishRecipe(ctx, r, warn); err != nil {
		return fmt.Errorf("adding recipe: %w", err)
	}

	if err := s.notifier.Notify(ctx, fmt.Sprintf("Recipe %q added.", r.Name)); err != nil {
		s.log.Warn("add notice not delivered: %v", err)
	}
	return nil
}

func (s *Shell) readIngredient(ctx context.Context, i int) (domain.Ingredient, error) {
	var ing domain.Ingredient
	var err error

	s.console.PrintLine(fmt.Sprintf("Enter details for ingredient #%d:", i))
	if ing.Name, err = s.console.Prompt(ctx, "Name: "); err != nil {
		return ing, err
	}
	if ing.Quantity, err = s.readAmount(ctx, "Quantity"); err != nil {
		return ing, err
	}
	if ing.Unit, err = s.console.Prompt(ctx, "Unit of measurement: "); err != nil {
		return ing, err
	}
	if ing.CaloriesPerUnit, err = s.readAmount(ctx, "Calories per unit"); err != nil {
		return ing, err
	}
	if ing.FoodGroup, err = s.console.Prompt(ctx, "Food group: "); err != nil {
		return ing, err
	}
	return ing, nil
}

// readAmount prompts for field until the answer is a finite number >= 0.
func (s *Shell) readAmount(ctx context.Context, field string) (float64, error) {
	label := field + ": "
	for {
		input, err := s.console.Prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		if v, ok := parseAmount(input); ok {
			return v, nil
		}
		s.console.PrintUrgent("Invalid input. Please enter a valid number for " + field + ":")
		label = ""
	}
}

// readCount prompts until the answer is a whole number >= 0.
func (s *Shell) readCount(ctx context.Context, label string) (int, error) {
	for {
		input, err := s.console.Prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		if n, ok := parseCount(input); ok {
			return n, nil
		}
		s.console.PrintUrgent(msgInvalidCount)
		label = ""
	}
}

func parseAmount(input string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	// "-0" parses as negative zero.
	if v == 0 {
		v = 0
	}
	return v, true
}

func parseCount(input string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ── Display and list ─────────────────────────────────────────────

func (s *Shell) displayRecipe(ctx context.Context) error {
	s.listRecipes("")
	if s.engine.Count() == 0 {
		s.console.PrintLine(msgNoRecipesDisplay)
		return nil
	}

	label := promptRecipeNum
	for {
		input, err := s.console.Prompt(ctx, label)
		if err != nil {
			return err
		}
		if pos, err := strconv.Atoi(strings.TrimSpace(input)); err == nil {
			r, err := s.engine.Recipe(pos)
			if err == nil {
				s.console.ShowRecipe(r)
				return nil
			}
			s.log.Debug("display: %v", err)
		}
		s.console.PrintUrgent(msgInvalidRecipe)
		label = ""
	}
}

// listRecipes prints the numbered catalog. A non-empty filter limits the
// output to names containing it; positions stay those of the full list.
func (s *Shell) listRecipes(filter string) {
	if s.engine.Count() == 0 {
		s.console.PrintLine(msgNoRecipes)
		return
	}

	entries := s.engine.Recipes()
	if filter != "" {
		entries = s.engine.Find(filter)
	}

	var lines []string
	for pos, name := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s", pos, name))
	}
	if len(lines) == 0 {
		s.console.PrintHint(fmt.Sprintf("No recipes match %q.", filter))
		return
	}

	s.console.PrintTitle("Recipes:")
	for _, line := range lines {
		s.console.PrintLine(line)
	}
}
