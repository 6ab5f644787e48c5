package display

import "github.com/charmbracelet/lipgloss"

// palette holds every style the consoles use. Building it from a renderer
// lets each console pick up the color support of its own output.
type palette struct {
	bar     lipgloss.Style
	prompt  lipgloss.Style
	title   lipgloss.Style
	primary lipgloss.Style
	hint    lipgloss.Style
	urgent  lipgloss.Style
	echo    lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		bar: r.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#a1a1aa")),
		// Muted slate for prompts.
		prompt: r.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")),
		// Soft mint for headers.
		title: r.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true),
		// Light zinc for regular lines.
		primary: r.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")),
		// Dimmed zinc for hints and metadata.
		hint: r.NewStyle().
			Foreground(lipgloss.Color("#71717a")),
		// Soft coral for errors and alerts.
		urgent: r.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")),
		echo: r.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")),
	}
}

// BannerStyle is the muted slate used for the startup banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#94a3b8"))
