package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"
	"github.com/theirongolddev/tally/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// logToFile points the logger at the TUI log file so log lines do not
// land on the alternate screen.
func logToFile(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func runTUI(_ *cobra.Command, _ []string) error {
	restore, err := logToFile(config.LogPath(cfg))
	if err != nil {
		return err
	}
	defer restore()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	dark, err := store.DarkMode(db, cfg.Appearance.DefaultDark)
	if err != nil {
		log.WithError(err).Warn("reading theme preference")
	}

	tab, ok := model.ParseKind(cfg.General.DefaultTab)
	if !ok {
		tab = model.KindDebt
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(openEngines(db), db, tui.Options{
		Currency:   cfg.General.Currency,
		DarkTheme:  cfg.Appearance.DarkTheme,
		LightTheme: cfg.Appearance.LightTheme,
		Dark:       dark,
		Tab:        tab,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
