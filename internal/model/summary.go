package model

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/date"
)

// Summary holds the aggregate across one tracker's items.
type Summary struct {
	Kind      Kind
	AsOf      date.Date
	Count     int
	Completed int

	TotalTarget    decimal.Decimal
	TotalProgress  decimal.Decimal
	TotalRemaining decimal.Decimal

	TotalPrincipal decimal.Decimal
	TotalInterest  decimal.Decimal
}

// Percent returns overall progress across all tracked items, 0 to 100.
func (s Summary) Percent() float64 {
	if !s.TotalTarget.IsPositive() {
		return 0
	}
	return s.TotalProgress.Div(s.TotalTarget).Mul(hundred).InexactFloat64()
}

// Summarize aggregates items of one kind as of the given date.
func Summarize(kind Kind, items []Item, asOf date.Date) Summary {
	s := Summary{
		Kind:           kind,
		AsOf:           asOf,
		TotalTarget:    decimal.Zero,
		TotalProgress:  decimal.Zero,
		TotalRemaining: decimal.Zero,
		TotalPrincipal: decimal.Zero,
		TotalInterest:  decimal.Zero,
	}
	for _, it := range items {
		s.Count++
		if it.IsComplete() {
			s.Completed++
		}
		s.TotalTarget = s.TotalTarget.Add(it.Target)
		s.TotalProgress = s.TotalProgress.Add(it.Progress)
		s.TotalRemaining = s.TotalRemaining.Add(it.Remaining())
		s.TotalPrincipal = s.TotalPrincipal.Add(it.Principal)
	}
	s.TotalInterest = TotalAccruedInterest(items, asOf)
	return s
}
