// Package display provides the terminal consoles: a Bubble Tea UI for
// interactive terminals and a line-mode console for everything else.
//
// The [UI] type manages a status bar and an input prompt at the bottom of
// the terminal. All application output is printed above the rendered area
// via Program.Println, so writes from the shell never garble the display.
package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// Compile-time interface check.
var _ domain.Console = (*UI)(nil)

// UIOption configures the UI.
type UIOption func(*UI)

// WithMarkdownStyle sets the glamour style used to render recipes.
// Pick it before Run: querying the terminal background once Bubble Tea
// owns stdin does not work.
func WithMarkdownStyle(style string) UIOption {
	return func(u *UI) { u.mdStyle = style }
}

// WithWrap sets the word-wrap width for rendered recipes.
func WithWrap(width int) UIOption {
	return func(u *UI) { u.wrap = width }
}

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Another goroutine may call the
// print methods and [UI.Prompt] at any time after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	done    atomic.Bool
	styles  palette
	mdStyle string
	wrap    int
}

// NewUI creates the display. Call Run() to start.
func NewUI(opts ...UIOption) *UI {
	u := &UI{
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
		styles:  newPalette(lipgloss.DefaultRenderer()),
		mdStyle: "dark",
		wrap:    80,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt on its own line.
// Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// ── Console ──────────────────────────────────────────────────────

// Prompt shows label on the input line and waits for the user to submit
// a line. It returns io.EOF after the UI quits.
func (u *UI) Prompt(ctx context.Context, label string) (string, error) {
	u.send(promptMsg(label))
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-u.inputCh:
		return line, nil
	case <-u.quitCh:
		return "", io.EOF
	}
}

// PrintTitle prints a header line.
func (u *UI) PrintTitle(text string) {
	u.Println(u.styles.title.Render(text))
}

// PrintLine prints a regular line.
func (u *UI) PrintLine(text string) {
	u.Println(u.styles.primary.Render(text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(u.styles.hint.Render(text))
}

// PrintUrgent prints an urgent/error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(u.styles.urgent.Render(text))
}

// ShowRecipe renders the recipe as markdown above the prompt.
func (u *UI) ShowRecipe(r *domain.Recipe) {
	u.Println(RenderMarkdown(RecipeMarkdown(r), u.mdStyle, u.wrap))
}

// SetStatus replaces the text of the status bar.
func (u *UI) SetStatus(text string) {
	u.send(statusMsg(text))
}

func (u *UI) send(msg tea.Msg) {
	if u.program != nil && !u.done.Load() {
		u.program.Send(msg)
	}
}

// WaitReady blocks until the Bubble Tea event loop is running. It returns
// false if the UI stopped first, e.g. because the terminal could not be
// set up.
func (u *UI) WaitReady() bool {
	select {
	case <-u.readyCh:
		return true
	case <-u.quitCh:
		return false
	}
}

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Keep the prompt plain text so the textinput width math stays
	// correct; styling goes through PromptStyle.
	ti.Prompt = "> "
	ti.PromptStyle = u.styles.prompt
	ti.TextStyle = u.styles.echo
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		input:   ti,
		inputCh: u.inputCh,
		readyCh: u.readyCh,
		styles:  u.styles,
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	styles  palette
	status  string
	width   int
}

// Messages.
type (
	promptMsg string
	statusMsg string
)

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("Recipe Book"),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			echo := m.styles.prompt.Render(m.input.Prompt) + m.styles.echo.Render(v)
			m.input.Reset()
			// Empty lines are answers too (a blank step is allowed).
			m.inputCh <- v
			return m, tea.Println(echo)
		}

	case promptMsg:
		m.input.Prompt = string(msg)
		if m.input.Prompt == "" {
			m.input.Prompt = "> "
		}
		m.fitInput()
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.fitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// fitInput lets the text input use the full width minus the prompt.
func (m *model) fitInput() {
	if n := lipgloss.Width(m.input.Prompt); m.width > n {
		m.input.Width = m.width - n
	}
}

func (m model) View() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(m.renderBar())
		b.WriteByte('\n')
	}
	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	return m.styles.bar.Width(w).Render(" " + m.status + " ")
}
