package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/date"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"

	"github.com/spf13/cobra"
)

// withEngine opens the database and kind's engine for the duration of fn.
func withEngine(kind model.Kind, fn func(e *ledger.Engine) error) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(openEngine(db, kind))
}

// trackerCmd builds the add/rm/ls (and, for tracked kinds, the
// contribution) subcommands for one kind.
func trackerCmd(kind model.Kind, use, contributeVerb string, aliases ...string) *cobra.Command {
	parent := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   "Manage " + strings.ToLower(kind.Label()),
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withEngine(kind, func(e *ledger.Engine) error { return listItems(e, date.Date{}) })
		},
	}

	parent.AddCommand(addCmd(kind))
	parent.AddCommand(&cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Remove a " + kind.Noun(),
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withEngine(kind, func(e *ledger.Engine) error { return removeItem(e, args[0]) })
		},
	})

	var asOf string
	ls := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List " + strings.ToLower(kind.Label()),
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var when date.Date
			if asOf != "" {
				d, err := date.Parse(asOf)
				if err != nil {
					return fmt.Errorf("--as-of: %w", err)
				}
				when = d
			}
			return withEngine(kind, func(e *ledger.Engine) error { return listItems(e, when) })
		},
	}
	if kind == model.KindInvestment {
		ls.Flags().StringVar(&asOf, "as-of", "", "Compute accrued interest as of this date (YYYY-MM-DD)")
	}
	parent.AddCommand(ls)

	if kind.Tracked() {
		parent.AddCommand(&cobra.Command{
			Use:   contributeVerb + " ID AMOUNT",
			Short: "Record a " + contributeVerb + " toward a " + kind.Noun(),
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				return withEngine(kind, func(e *ledger.Engine) error { return contribute(e, args[0], args[1]) })
			},
		})
	}

	return parent
}

func addCmd(kind model.Kind) *cobra.Command {
	c := &cobra.Command{
		Use:   "add NAME AMOUNT",
		Short: "Add a " + kind.Noun(),
		Args:  cobra.ExactArgs(2),
	}
	switch kind {
	case model.KindSavings:
		c.Use = "add NAME TARGET"
	case model.KindInvestment:
		c.Use = "add NAME PRINCIPAL MONTHLY_RATE START_DATE"
		c.Long = "Add an investment. MONTHLY_RATE is a percentage per month;\n" +
			"START_DATE is YYYY-MM-DD and cannot be in the future."
		c.Args = cobra.ExactArgs(4)
	}

	c.RunE = func(_ *cobra.Command, args []string) error {
		d := ledger.Draft{Name: args[0]}
		if kind == model.KindInvestment {
			d.Principal, d.MonthlyRate, d.StartDate = args[1], args[2], args[3]
		} else {
			d.Target = args[1]
		}
		return withEngine(kind, func(e *ledger.Engine) error {
			it, err := e.Add(d)
			if err != nil {
				return err
			}
			checkSaved(e)
			if !flagQuiet {
				fmt.Printf("  Added %s %s (%s)\n", kind.Noun(), it.Name, cli.ShortID(it.ID))
			}
			return nil
		})
	}
	return c
}

// resolve finds an item by exact id or unique prefix. ErrNotFound is
// passed through so callers can treat it as a no-op.
func resolve(e *ledger.Engine, ref string) (model.Item, error) {
	it, err := e.Lookup(ref)
	if errors.Is(err, ledger.ErrAmbiguous) {
		return model.Item{}, fmt.Errorf("id %q matches more than one %s", ref, e.Kind().Noun())
	}
	return it, err
}

// notFound reports an unknown id. It is not an error: the item may already
// be gone.
func notFound(e *ledger.Engine, ref string) error {
	log.WithField("id", ref).Debug("unknown id")
	if !flagQuiet {
		fmt.Println(cli.Muted(fmt.Sprintf("  No %s with id %q, nothing changed", e.Kind().Noun(), ref)))
	}
	return nil
}

func contribute(e *ledger.Engine, ref, amount string) error {
	it, err := resolve(e, ref)
	if errors.Is(err, ledger.ErrNotFound) {
		return notFound(e, ref)
	}
	if err != nil {
		return err
	}
	it, err = e.Contribute(it.ID, amount)
	if errors.Is(err, ledger.ErrNotFound) {
		return notFound(e, ref)
	}
	if err != nil {
		return err
	}
	checkSaved(e)
	if flagQuiet {
		return nil
	}

	cur := cfg.General.Currency
	fmt.Printf("  %s  %s / %s\n", it.Name,
		cli.FormatMoney(it.Progress, cur), cli.FormatMoney(it.Target, cur))
	if it.IsComplete() {
		fmt.Println("  " + cli.Success(it.Kind.CompletionMessage()))
	} else {
		fmt.Printf("  %s remaining\n", cli.FormatMoney(it.Remaining(), cur))
	}
	return nil
}

func removeItem(e *ledger.Engine, ref string) error {
	it, err := resolve(e, ref)
	if errors.Is(err, ledger.ErrNotFound) {
		return notFound(e, ref)
	}
	if err != nil {
		return err
	}
	if !e.Delete(it.ID) {
		return notFound(e, ref)
	}
	checkSaved(e)
	if !flagQuiet {
		fmt.Printf("  Removed %s\n", it.Name)
	}
	return nil
}

// listItems prints the collection. A zero asOf means today.
func listItems(e *ledger.Engine, asOf date.Date) error {
	if asOf.IsZero() {
		asOf = e.Today()
	}
	items := e.Items()
	kind := e.Kind()
	cur := cfg.General.Currency

	if len(items) == 0 {
		fmt.Printf("\n  %s\n\n", kind.EmptyMessage())
		return nil
	}

	fmt.Println()
	t := cli.Table{Title: kind.Label()}
	if kind.Tracked() {
		progress := "Paid"
		if kind == model.KindSavings {
			progress = "Saved"
		}
		t.Headers = []string{"ID", "Name", "Target", progress, "Remaining", "Progress"}
		for _, it := range items {
			status := cli.FormatPercent(it.Percent() / 100)
			if it.IsComplete() {
				status = kind.CompletionMessage()
			}
			t.Rows = append(t.Rows, []string{
				cli.ShortID(it.ID), it.Name,
				cli.FormatMoney(it.Target, cur),
				cli.FormatMoney(it.Progress, cur),
				cli.FormatMoney(it.Remaining(), cur),
				status,
			})
		}
		sum := model.Summarize(kind, items, asOf)
		t.Rows = append(t.Rows, []string{"---"}, []string{
			"", "Total",
			cli.FormatMoney(sum.TotalTarget, cur),
			cli.FormatMoney(sum.TotalProgress, cur),
			cli.FormatMoney(sum.TotalRemaining, cur),
			cli.FormatPercent(sum.Percent() / 100),
		})
	} else {
		t.Headers = []string{"ID", "Name", "Principal", "Rate", "Since", "Months", "Interest"}
		for _, it := range items {
			t.Rows = append(t.Rows, []string{
				cli.ShortID(it.ID), it.Name,
				cli.FormatMoney(it.Principal, cur),
				cli.FormatRate(it.MonthlyRate),
				it.StartDate.String(),
				fmt.Sprintf("%d", it.MonthsElapsed(asOf)),
				cli.FormatMoney(model.AccruedInterest(it, asOf), cur),
			})
		}
		t.Rows = append(t.Rows, []string{"---"}, []string{
			"", "Total", "", "", "", "",
			cli.FormatMoney(model.TotalAccruedInterest(items, asOf), cur),
		})
	}
	fmt.Print(cli.RenderTable(t))
	if kind == model.KindInvestment {
		fmt.Println(cli.Muted("  Interest as of " + asOf.String()))
	}
	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(trackerCmd(model.KindDebt, "debt", "pay", "debts"))
	rootCmd.AddCommand(trackerCmd(model.KindSavings, "savings", "save", "goal", "goals"))
	rootCmd.AddCommand(trackerCmd(model.KindInvestment, "invest", "", "investment", "investments"))
}
