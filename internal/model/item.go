// Package model defines the tracked items (debts, savings goals, investments)
// and the values derived from them.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/date"
)

// Kind tags which tracker an item belongs to.
type Kind string

const (
	KindDebt       Kind = "debt"
	KindSavings    Kind = "savings"
	KindInvestment Kind = "investment"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindDebt, KindSavings, KindInvestment}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindDebt, KindSavings, KindInvestment:
		return true
	}
	return false
}

// CollectionKey returns the store key the kind's collection lives under.
// The names match what the browser version wrote to local storage.
func (k Kind) CollectionKey() string {
	switch k {
	case KindDebt:
		return "debts"
	case KindSavings:
		return "savingsGoals"
	case KindInvestment:
		return "passiveIncomeInvestments"
	}
	return string(k)
}

// Label returns a human-readable plural label.
func (k Kind) Label() string {
	switch k {
	case KindDebt:
		return "Debts"
	case KindSavings:
		return "Savings"
	case KindInvestment:
		return "Investments"
	}
	return string(k)
}

// Noun returns the singular noun for an item of this kind.
func (k Kind) Noun() string {
	switch k {
	case KindDebt:
		return "debt"
	case KindSavings:
		return "savings goal"
	case KindInvestment:
		return "investment"
	}
	return string(k)
}

// CompletionMessage is shown once a debt is paid off or a goal is reached.
func (k Kind) CompletionMessage() string {
	switch k {
	case KindDebt:
		return "Debt cleared!"
	case KindSavings:
		return "Goal reached!"
	}
	return ""
}

// EmptyMessage is shown when the collection has no items.
func (k Kind) EmptyMessage() string {
	switch k {
	case KindDebt:
		return "No debts added."
	case KindSavings:
		return "No savings goals yet."
	case KindInvestment:
		return "No passive income investments added yet."
	}
	return "Nothing here yet."
}

// Tracked reports whether items of this kind carry a target and progress.
func (k Kind) Tracked() bool { return k == KindDebt || k == KindSavings }

// ParseKind accepts a kind name or one of its common aliases.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "debt", "debts":
		return KindDebt, true
	case "savings", "saving", "goal", "goals":
		return KindSavings, true
	case "investment", "investments", "invest":
		return KindInvestment, true
	}
	return "", false
}

// Status is the derived lifecycle state of a tracked item.
type Status int

const (
	StatusOpen Status = iota
	StatusComplete
)

func (s Status) String() string {
	if s == StatusComplete {
		return "complete"
	}
	return "open"
}

// Item is a debt, savings goal or investment.
//
// Debts and savings goals use Target and Progress; investments use
// Principal, MonthlyRate and StartDate. Only Progress changes after creation.
type Item struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Name string `json:"name"`

	Target   decimal.Decimal `json:"target"`
	Progress decimal.Decimal `json:"progress"`

	Principal   decimal.Decimal `json:"principal"`
	MonthlyRate decimal.Decimal `json:"monthlyRate"` // percent per month
	StartDate   date.Date       `json:"startDate"`

	CreatedAt time.Time `json:"createdAt"`
}

var hundred = decimal.NewFromInt(100)

// Remaining is the amount still owed or still to save.
func (it Item) Remaining() decimal.Decimal { return it.Target.Sub(it.Progress) }

// Percent returns progress as a percentage of target, 0 to 100.
func (it Item) Percent() float64 {
	if !it.Target.IsPositive() {
		return 0
	}
	return it.Progress.Div(it.Target).Mul(hundred).InexactFloat64()
}

// IsComplete reports whether the debt is cleared or the goal reached.
func (it Item) IsComplete() bool {
	return it.Kind.Tracked() && it.Target.IsPositive() && it.Progress.GreaterThanOrEqual(it.Target)
}

// Status returns StatusComplete once progress reaches target.
func (it Item) Status() Status {
	if it.IsComplete() {
		return StatusComplete
	}
	return StatusOpen
}

// MonthsElapsed counts whole calendar months from StartDate to asOf.
func (it Item) MonthsElapsed(asOf date.Date) int {
	if it.StartDate.IsZero() {
		return 0
	}
	return date.MonthsBetween(it.StartDate, asOf)
}

// AccruedInterest returns the simple interest earned by an investment as of
// asOf, rounded to cents. Non-investments accrue nothing.
func AccruedInterest(it Item, asOf date.Date) decimal.Decimal {
	if it.Kind != KindInvestment {
		return decimal.Zero
	}
	months := it.MonthsElapsed(asOf)
	if months <= 0 {
		return decimal.Zero
	}
	return it.Principal.
		Mul(it.MonthlyRate.Div(hundred)).
		Mul(decimal.NewFromInt(int64(months))).
		Round(2)
}

// TotalAccruedInterest sums the per-item rounded accruals.
func TotalAccruedInterest(items []Item, asOf date.Date) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(AccruedInterest(it, asOf))
	}
	return total
}
