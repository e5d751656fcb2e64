package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals across all trackers",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	engines := openEngines(db)
	cur := cfg.General.Currency

	debts := engines[model.KindDebt].Summary()
	goals := engines[model.KindSavings].Summary()
	invs := engines[model.KindInvestment].Summary()

	if debts.Count+goals.Count+invs.Count == 0 {
		fmt.Println("\n  Nothing tracked yet.")
		fmt.Println("  Start with `tally debt add`, `tally savings add` or `tally invest add`,")
		fmt.Println("  or run `tally tui`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("TALLY  as of " + debts.AsOf.String()))
	fmt.Println()

	rows := [][]string{
		{"Debts", strconv.Itoa(debts.Count)},
		{"Owed", cli.FormatMoney(debts.TotalTarget, cur)},
		{"Paid", cli.FormatMoney(debts.TotalProgress, cur)},
		{"Remaining", cli.FormatMoney(debts.TotalRemaining, cur)},
		{"Cleared", fmt.Sprintf("%d of %d", debts.Completed, debts.Count)},
		{"---"},
		{"Savings goals", strconv.Itoa(goals.Count)},
		{"Target", cli.FormatMoney(goals.TotalTarget, cur)},
		{"Saved", cli.FormatMoney(goals.TotalProgress, cur)},
		{"To go", cli.FormatMoney(goals.TotalRemaining, cur)},
		{"Reached", fmt.Sprintf("%d of %d", goals.Completed, goals.Count)},
		{"---"},
		{"Investments", strconv.Itoa(invs.Count)},
		{"Principal", cli.FormatMoney(invs.TotalPrincipal, cur)},
		{"Accrued interest", cli.FormatMoney(invs.TotalInterest, cur)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if debts.Count > 0 {
		fmt.Printf("  Debt payoff     %s\n", cli.RenderProgressBar(debts.Percent(), 30))
	}
	if goals.Count > 0 {
		fmt.Printf("  Savings         %s\n", cli.RenderProgressBar(goals.Percent(), 30))
	}
	if when, ok := lastChange(db); ok {
		fmt.Println(cli.Muted("  Last change     " + when.Local().Format("2006-01-02 15:04")))
	}
	fmt.Println()

	return nil
}

// lastChange returns when any collection was last written.
func lastChange(db *store.DB) (time.Time, bool) {
	var latest time.Time
	for _, kind := range model.Kinds {
		at, ok, err := db.UpdatedAt(kind.CollectionKey())
		if err != nil {
			log.WithError(err).Debug("reading update time")
			continue
		}
		if ok && at.After(latest) {
			latest = at
		}
	}
	return latest, !latest.IsZero()
}
