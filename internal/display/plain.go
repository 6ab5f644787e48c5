package display

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// Compile-time interface check.
var _ domain.Console = (*Plain)(nil)

// Plain is a line-mode console for pipes, scripts and dumb terminals.
// Prompts are written without a trailing newline and answers are read one
// line at a time.
type Plain struct {
	in     *bufio.Reader
	out    io.Writer
	styles palette
}

// NewPlain creates a line-mode console. Colors follow what out supports.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newPalette(lipgloss.NewRenderer(out)),
	}
}

// Prompt writes label and reads the next line, whatever its length. A last
// line without a newline is still returned; io.EOF follows once the input
// is exhausted.
func (p *Plain) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if label != "" {
		fmt.Fprint(p.out, p.styles.prompt.Render(label))
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Printf prints formatted text on its own line.
func (p *Plain) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// PrintTitle prints a header line.
func (p *Plain) PrintTitle(text string) {
	fmt.Fprintln(p.out, p.styles.title.Render(text))
}

// PrintLine prints a regular line.
func (p *Plain) PrintLine(text string) {
	fmt.Fprintln(p.out, p.styles.primary.Render(text))
}

// PrintHint prints a dimmed line.
func (p *Plain) PrintHint(text string) {
	fmt.Fprintln(p.out, p.styles.hint.Render(text))
}

// PrintUrgent prints an error or alert line.
func (p *Plain) PrintUrgent(text string) {
	fmt.Fprintln(p.out, p.styles.urgent.Render(text))
}

// ShowRecipe prints the recipe in the plain text layout.
func (p *Plain) ShowRecipe(r *domain.Recipe) {
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, RecipeText(r))
}

// SetStatus is a no-op; line mode has no status bar.
func (p *Plain) SetStatus(string) {}
