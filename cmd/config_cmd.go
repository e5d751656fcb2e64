package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database:    %s\n", config.DBPath(cfg))
	fmt.Printf("    Currency:    %s\n", cfg.General.Currency)
	fmt.Printf("    Default tab: %s\n", cfg.General.DefaultTab)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Dark theme:   %s\n", cfg.Appearance.DarkTheme)
	fmt.Printf("    Light theme:  %s\n", cfg.Appearance.LightTheme)
	fmt.Printf("    Default dark: %v\n", cfg.Appearance.DefaultDark)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level:    %s\n", log.GetLevel())
	fmt.Printf("    TUI file: %s\n", config.LogPath(cfg))
	fmt.Println()

	fmt.Println("  Run `tally setup` to reconfigure.")
	return nil
}
