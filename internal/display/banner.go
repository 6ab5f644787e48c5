package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerArt string

// RenderBanner returns the startup art centred for the current terminal.
func RenderBanner() string {
	return renderBanner(TermWidth())
}

// renderBanner indents every line by the same amount so the art stays
// aligned as a block. Art wider than width is not indented.
func renderBanner(width int) string {
	lines := strings.Split(strings.TrimRight(bannerArt, "\n"), "\n")

	artWidth := 0
	for _, l := range lines {
		artWidth = max(artWidth, lipgloss.Width(l))
	}
	indent := strings.Repeat(" ", max(0, (width-artWidth)/2))

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = indent + BannerStyle.Render(l)
	}
	return strings.Join(out, "\n") + "\n"
}

// TermWidth returns the column count of stdout, or 80 when it is not a
// terminal.
func TermWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}
