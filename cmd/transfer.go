package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagExportOut string

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a browser local-storage export (use - for stdin)",
	Long: "Import debts, savings goals, investments and the theme from a JSON object\n" +
		"keyed by debts, savingsGoals, passiveIncomeInvestments and theme.\n" +
		"Items whose id is already present are skipped.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all collections as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	bundle, err := ledger.DecodeBundle(data)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	for _, kind := range model.Kinds {
		items, ok := bundle.Collections[kind]
		if !ok {
			continue
		}
		e := openEngine(db, kind)
		added := e.Import(items)
		checkSaved(e)
		log.WithFields(logrus.Fields{"kind": kind, "read": len(items), "added": added}).Debug("collection imported")
		if !flagQuiet {
			fmt.Printf("  %-12s %d imported, %d skipped\n", kind.Label(), added, len(items)-added)
		}
	}

	if bundle.Dark != nil {
		if err := store.SetDarkMode(db, *bundle.Dark); err != nil {
			return err
		}
	}
	return nil
}

func runExport(_ *cobra.Command, _ []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	bundle := ledger.Bundle{Collections: make(map[model.Kind][]model.Item)}
	for kind, e := range openEngines(db) {
		bundle.Collections[kind] = e.Items()
	}
	if _, ok, err := db.Get(store.ThemeKey); err == nil && ok {
		dark, err := store.DarkMode(db, cfg.Appearance.DefaultDark)
		if err != nil {
			return err
		}
		bundle.Dark = &dark
	}

	data, err := ledger.EncodeBundle(bundle)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if flagExportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagExportOut, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", flagExportOut, err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported to %s\n", flagExportOut)
	}
	return nil
}
