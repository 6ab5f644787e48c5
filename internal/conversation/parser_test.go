package conversation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

func TestMenuParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewMenuParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Numbered options
		{"1", domain.IntentAddRecipe, ""},
		{"2", domain.IntentDisplayRecipe, ""},
		{"3", domain.IntentListRecipes, ""},
		{"4", domain.IntentExit, ""},
		{" 2 ", domain.IntentDisplayRecipe, ""},

		// Numbers without an entry
		{"0", domain.IntentUnknown, "0"},
		{"5", domain.IntentUnknown, "5"},
		{"-1", domain.IntentUnknown, "-1"},
		{"42", domain.IntentUnknown, "42"},

		// Keyword aliases
		{"add", domain.IntentAddRecipe, ""},
		{"NEW", domain.IntentAddRecipe, ""},
		{"show", domain.IntentDisplayRecipe, ""},
		{"view", domain.IntentDisplayRecipe, ""},
		{"list", domain.IntentListRecipes, ""},
		{"recipes", domain.IntentListRecipes, ""},
		{"quit", domain.IntentExit, ""},
		{"q", domain.IntentExit, ""},
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},

		// List with a name filter
		{"list bread", domain.IntentListRecipes, "bread"},
		{"ls  apple pie ", domain.IntentListRecipes, "apple pie"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			require.NoError(t, err)
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			assert.Equal(t, tt.wantPayload, intent.Payload)
		})
	}
}

func TestMenuParserInvalid(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewMenuParser(log)
	ctx := context.Background()

	for _, input := range []string{"", "   ", "abc", "1.5", "two", "add recipe"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			intent, err := parser.Parse(ctx, input)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, intent)
		})
	}
}

func TestCLINotifier(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	var lines []string
	n := NewCLINotifier(log, func(format string, a ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, a...))
	})
	ctx := context.Background()

	require.NoError(t, n.Notify(ctx, "saved"))
	require.NoError(t, n.NotifyUrgent(ctx, "Warning: Total calories (400) exceed 300!"))

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "saved")
	assert.Contains(t, lines[1], "Warning: Total calories (400) exceed 300!")
}
