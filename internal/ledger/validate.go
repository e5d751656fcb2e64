package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/date"
	"github.com/theirongolddev/tally/internal/model"
)

// Draft holds the raw fields of an item as a user typed them.
// Which fields are required depends on the ledger's kind: Name and Target
// for debts and savings goals; Name, Principal, MonthlyRate and StartDate
// for investments.
type Draft struct {
	Name        string
	Target      string
	Principal   string
	MonthlyRate string
	StartDate   string
}

// ParseAmount parses a user-entered amount. A leading currency sign and
// thousands separators are tolerated. It does not check the sign.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}

// positive validates a required positive amount field into errs.
func positive(errs map[string]string, field, raw string) decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		errs[field] = field + " is required"
		return decimal.Zero
	}
	v, err := ParseAmount(raw)
	if err != nil {
		errs[field] = field + " must be a number"
		return decimal.Zero
	}
	if !v.IsPositive() {
		errs[field] = field + " must be greater than zero"
		return decimal.Zero
	}
	return v
}

// newItem validates d for kind and builds the item it describes. The id and
// timestamps are left for the caller.
func newItem(kind model.Kind, d Draft, today date.Date) (model.Item, error) {
	errs := make(map[string]string)

	name := strings.TrimSpace(d.Name)
	if name == "" {
		errs["name"] = "name is required"
	}

	it := model.Item{
		Kind:        kind,
		Name:        name,
		Target:      decimal.Zero,
		Progress:    decimal.Zero,
		Principal:   decimal.Zero,
		MonthlyRate: decimal.Zero,
	}

	switch kind {
	case model.KindDebt, model.KindSavings:
		it.Target = positive(errs, "target", d.Target)
	case model.KindInvestment:
		it.Principal = positive(errs, "principal", d.Principal)
		it.MonthlyRate = positive(errs, "monthlyRate", d.MonthlyRate)
		if strings.TrimSpace(d.StartDate) == "" {
			errs["startDate"] = "startDate is required"
		} else if start, err := date.Parse(strings.TrimSpace(d.StartDate)); err != nil {
			errs["startDate"] = "startDate must be a date (YYYY-MM-DD)"
		} else if start.After(today) {
			errs["startDate"] = "startDate cannot be in the future"
		} else {
			it.StartDate = start
		}
	default:
		errs["kind"] = "unknown kind " + string(kind)
	}

	if len(errs) > 0 {
		return model.Item{}, &ValidationError{Fields: errs}
	}
	return it, nil
}

// checkStored reports why a loaded item cannot be kept, or "" when it is valid.
// It is looser than newItem: stored start dates may lie in the future.
func checkStored(it model.Item) string {
	if strings.TrimSpace(it.Name) == "" {
		return "blank name"
	}
	switch it.Kind {
	case model.KindDebt, model.KindSavings:
		if !it.Target.IsPositive() {
			return "non-positive target"
		}
	case model.KindInvestment:
		if !it.Principal.IsPositive() {
			return "non-positive principal"
		}
		if !it.MonthlyRate.IsPositive() {
			return "non-positive monthly rate"
		}
		if it.StartDate.IsZero() {
			return "missing start date"
		}
	default:
		return "unknown kind"
	}
	return ""
}

// clampProgress keeps progress within [0, target].
func clampProgress(progress, target decimal.Decimal) decimal.Decimal {
	if progress.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(progress, target)
}
