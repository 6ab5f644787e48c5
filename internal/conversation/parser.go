// Package conversation provides menu parsing and user notification implementations.
package conversation

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*MenuParser)(nil)

// menuOptions maps the numbered menu entries to intents.
var menuOptions = map[int]domain.IntentType{
	1: domain.IntentAddRecipe,
	2: domain.IntentDisplayRecipe,
	3: domain.IntentListRecipes,
	4: domain.IntentExit,
}

// MenuParser matches menu input to intents. Numbers select the menu entry
// directly; a few keywords are accepted as aliases.
type MenuParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// listFilter captures an optional name filter after a list keyword.
var listFilter = regexp.MustCompile(`(?i)^(?:list|ls|recipes)\s+(.+)$`)

// NewMenuParser creates a menu parser.
func NewMenuParser(log *logger.Logger) *MenuParser {
	p := &MenuParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(add|new|a)$`), domain.IntentAddRecipe},
		{regexp.MustCompile(`(?i)^(display|show|view|d)$`), domain.IntentDisplayRecipe},
		{regexp.MustCompile(`(?i)^(list|ls|recipes|l)$`), domain.IntentListRecipes},
		{regexp.MustCompile(`(?i)^(exit|quit|q|bye)$`), domain.IntentExit},
		{regexp.MustCompile(`(?i)^(help|menu|h|\?)$`), domain.IntentHelp},
	}
	return p
}

// Parse converts menu input into an intent. Whole numbers always parse:
// numbers outside the menu come back as IntentUnknown with the number as
// payload. Anything else that matches no keyword is ErrInvalidInput.
func (p *MenuParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty choice", domain.ErrInvalidInput)
	}

	p.log.Debug("parsing menu input: %q", trimmed)

	if n, err := strconv.Atoi(trimmed); err == nil {
		if t, ok := menuOptions[n]; ok {
			return &domain.Intent{Type: t}, nil
		}
		p.log.Debug("menu number %d has no entry", n)
		return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
	}

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent}, nil
		}
	}

	if m := listFilter.FindStringSubmatch(trimmed); m != nil {
		return &domain.Intent{Type: domain.IntentListRecipes, Payload: strings.TrimSpace(m[1])}, nil
	}

	return nil, fmt.Errorf("%w: %q is not a menu option", domain.ErrInvalidInput, trimmed)
}
