package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func themeOptions(dark bool) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, t := range theme.All {
		if t.Dark == dark {
			opts = append(opts, huh.NewOption(t.Name, t.Name))
		}
	}
	return opts
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file, not the flag-adjusted cfg.
	fileCfg, err := config.Load()
	if err != nil {
		return err
	}

	tabOpts := make([]huh.Option[string], 0, len(model.Kinds))
	for _, k := range model.Kinds {
		tabOpts = append(tabOpts, huh.NewOption(k.Label(), string(k)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Currency").
				Description("ISO code used when showing amounts").
				Value(&fileCfg.General.Currency).
				Validate(func(s string) error {
					if !cli.KnownCurrency(strings.TrimSpace(s)) {
						return errors.New("unknown currency code")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Open the dashboard on").
				Options(tabOpts...).
				Value(&fileCfg.General.DefaultTab),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Dark theme").
				Options(themeOptions(true)...).
				Value(&fileCfg.Appearance.DarkTheme),
			huh.NewSelect[string]().
				Title("Light theme").
				Options(themeOptions(false)...).
				Value(&fileCfg.Appearance.LightTheme),
			huh.NewConfirm().
				Title("Start in dark mode?").
				Value(&fileCfg.Appearance.DefaultDark),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return err
	}
	fileCfg.General.Currency = strings.ToUpper(strings.TrimSpace(fileCfg.General.Currency))

	if err := config.Save(fileCfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `tally setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
