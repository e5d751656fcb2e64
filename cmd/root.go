// Package cmd implements the tally CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDB       string
	flagCurrency string
	flagLogLevel string
	flagVerbose  bool
	flagQuiet    bool
)

// cfg and log are set up before any command runs.
var (
	cfg config.Config
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Track debts, savings goals and passive income",
	Long: "Track what you owe, what you are saving toward and what your investments\n" +
		"have earned, from the command line or an interactive dashboard.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Fail("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default $XDG_DATA_HOME/tally/tally.db)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "ISO currency code for display")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print errors")
}

// setup loads config, applies flag overrides and configures the logger.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	if flagDB != "" {
		cfg.General.DBPath = flagDB
	}
	if flagCurrency != "" {
		cfg.General.Currency = strings.ToUpper(flagCurrency)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if !cli.KnownCurrency(cfg.General.Currency) {
		log.Warnf("unknown currency %q, using %s", cfg.General.Currency, cli.DefaultCurrency)
		cfg.General.Currency = cli.DefaultCurrency
	}

	return configureLogger(log, cfg.Log.Level)
}

func configureLogger(l *logrus.Logger, level string) error {
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	lvl := logrus.WarnLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}
	switch {
	case flagVerbose:
		lvl = logrus.DebugLevel
	case flagQuiet:
		lvl = logrus.ErrorLevel
	}
	l.SetLevel(lvl)
	return nil
}

// openDB opens the configured database.
func openDB() (*store.DB, error) {
	path := config.DBPath(cfg)
	log.WithField("path", path).Debug("opening database")
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// openEngine loads kind's collection from kv. Unreadable data is logged
// by the engine and the collection starts empty.
func openEngine(kv store.KV, kind model.Kind) *ledger.Engine {
	return ledger.Open(kind, ledger.NewKVStore(kv, kind), ledger.WithLogger(log))
}

// openEngines loads every collection, keyed by kind.
func openEngines(kv store.KV) map[model.Kind]*ledger.Engine {
	engines := make(map[model.Kind]*ledger.Engine, len(model.Kinds))
	for _, kind := range model.Kinds {
		engines[kind] = openEngine(kv, kind)
	}
	return engines
}

// checkSaved turns a failed write into a warning; the change was applied
// but will not survive this process.
func checkSaved(e *ledger.Engine) {
	if err := e.SaveErr(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Warn("  warning: change not saved: "+err.Error()))
	}
}
