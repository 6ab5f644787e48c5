// Recipebook is a console recipe manager.
//
// Usage:
//
//	recipebook [--calorie-limit N] [--plain] [--demo] [-v|-q]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebook/internal/config"
	"github.com/hammamikhairi/recipebook/internal/conversation"
	"github.com/hammamikhairi/recipebook/internal/display"
	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/recipe"
	"github.com/hammamikhairi/recipebook/internal/shell"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "recipebook",
	Short: "Enter, list and display recipes with calorie totals",
	Long: `recipebook keeps a list of recipes for the current session.

Each recipe has ingredients (with calories per unit and a food group) and
numbered steps. Recipes are listed alphabetically, and a warning is shown
when a new recipe's total calories go over the configured limit.

Settings come from flags, RECIPEBOOK_* environment variables (a .env file
is loaded if present) or recipebook.yaml.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	v, err := config.New(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logLevel := logger.LevelNormal
	if cfg.Verbose {
		logLevel = logger.LevelVerbose
	}
	if cfg.Quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the menu stays clean.
	logOut, closeLog := openLogOutput(cfg.LogFile)
	defer closeLog()

	log := logger.New(logLevel, logOut)
	defer func() { _ = log.Sync() }()

	if cfg.ConfigFile != "" {
		log.Info("config loaded from %s", cfg.ConfigFile)
	}

	// Interrupt cancels ctx so the menu can stop cleanly.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Wire dependencies.
	catalog := recipe.NewMemoryCatalog(log)
	eng := engine.New(catalog, log, engine.WithCalorieLimit(cfg.CalorieLimit))
	parser := conversation.NewMenuParser(log)

	if cfg.Demo {
		for _, r := range recipe.Samples() {
			if _, err := eng.FinishRecipe(ctx, r); err != nil {
				return fmt.Errorf("seeding samples: %w", err)
			}
		}
		log.Info("seeded %d sample recipes", eng.Count())
	}

	if cfg.Plain || !display.IsInteractive() {
		return runPlain(ctx, cfg, eng, parser, log)
	}
	return runTUI(ctx, cancel, cfg, eng, parser, log)
}

// runPlain drives the menu over stdin/stdout line by line.
func runPlain(ctx context.Context, cfg config.Config, eng *engine.Engine, parser *conversation.MenuParser, log *logger.Logger) error {
	console := display.NewPlain(os.Stdin, os.Stdout)
	notifier := conversation.NewCLINotifier(log, console.Printf)

	if display.IsInteractive() {
		fmt.Println(display.RenderBanner())
	}
	log.Info("line mode (calorie limit %v)", cfg.CalorieLimit)

	// A blocked read on stdin does not see ctx, so stop waiting for the
	// shell once ctx is cancelled.
	done := make(chan error, 1)
	go func() {
		done <- shell.New(eng, parser, notifier, console, log).Run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		log.Info("interrupted, leaving")
		return nil
	}
}

// runTUI hands the terminal to Bubble Tea and runs the menu in the
// background.
func runTUI(ctx context.Context, cancel context.CancelFunc, cfg config.Config, eng *engine.Engine, parser *conversation.MenuParser, log *logger.Logger) error {
	// Query the background before Bubble Tea takes over stdin.
	mdStyle := "dark"
	if !lipgloss.HasDarkBackground() {
		mdStyle = "light"
	}

	ui := display.NewUI(
		display.WithMarkdownStyle(mdStyle),
		display.WithWrap(cfg.Wrap),
	)
	notifier := conversation.NewCLINotifier(log, ui.Printf)
	sh := shell.New(eng, parser, notifier, ui, log)

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Pick a number or type 'help'. Ctrl+D or 'quit' exits."))
	fmt.Println()

	done := make(chan error, 1)
	go func() {
		if !ui.WaitReady() {
			done <- nil
			return
		}
		done <- sh.Run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal; blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
		return fmt.Errorf("running display: %w", err)
	}
	cancel()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		log.Warn("menu did not stop after the display quit")
		return nil
	}
}

// openLogOutput opens path for appending, creating its directory. It falls
// back to stderr when path is empty, "stderr" or cannot be opened.
func openLogOutput(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { _ = f.Close() }
}
