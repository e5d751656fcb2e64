package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/store"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or set the dark/light preference",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(_ *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	dark, err := store.DarkMode(db, cfg.Appearance.DefaultDark)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		switch args[0] {
		case "dark":
			dark = true
		case "light":
			dark = false
		case "toggle":
			dark = !dark
		}
		if err := store.SetDarkMode(db, dark); err != nil {
			return err
		}
		log.WithField("dark", dark).Debug("theme preference saved")
	}

	if dark {
		fmt.Printf("  Theme: dark (%s)\n", cfg.Appearance.DarkTheme)
	} else {
		fmt.Printf("  Theme: light (%s)\n", cfg.Appearance.LightTheme)
	}
	return nil
}
