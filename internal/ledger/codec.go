package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/date"
	"github.com/theirongolddev/tally/internal/model"
)

// wireItem is the stored JSON shape. Besides the current field names it
// accepts the ones the browser trackers wrote: total/paid for debts,
// targetAmount/saved for savings goals, interestRate for investments, and
// millisecond-timestamp numeric ids.
type wireItem struct {
	ID        json.RawMessage `json:"id"`
	Kind      model.Kind      `json:"kind"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"createdAt"`
	StartDate date.Date       `json:"startDate"`

	Target      *decimal.Decimal `json:"target"`
	Progress    *decimal.Decimal `json:"progress"`
	Principal   *decimal.Decimal `json:"principal"`
	MonthlyRate *decimal.Decimal `json:"monthlyRate"`

	Total        *decimal.Decimal `json:"total"`
	Paid         *decimal.Decimal `json:"paid"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	Saved        *decimal.Decimal `json:"saved"`
	InterestRate *decimal.Decimal `json:"interestRate"`
}

func first(vals ...*decimal.Decimal) decimal.Decimal {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return decimal.Zero
}

func (w wireItem) item(kind model.Kind) (model.Item, error) {
	it := model.Item{
		Kind:        w.Kind,
		Name:        w.Name,
		CreatedAt:   w.CreatedAt,
		StartDate:   w.StartDate,
		Target:      first(w.Target, w.Total, w.TargetAmount),
		Progress:    first(w.Progress, w.Paid, w.Saved),
		Principal:   first(w.Principal),
		MonthlyRate: first(w.MonthlyRate, w.InterestRate),
	}
	if it.Kind == "" {
		it.Kind = kind
	}

	raw := bytes.TrimSpace(w.ID)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &it.ID); err != nil {
			return model.Item{}, fmt.Errorf("decoding id: %w", err)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return model.Item{}, fmt.Errorf("decoding id: %w", err)
		}
		it.ID = n.String()
		// Date.now() ids double as creation times.
		if ms, err := strconv.ParseInt(it.ID, 10, 64); err == nil && it.CreatedAt.IsZero() {
			it.CreatedAt = time.UnixMilli(ms).UTC()
		}
	}
	return it, nil
}

// DecodeItems parses a stored collection. Items without a kind are given
// kind. The result is not sanitised; the engine does that on load.
func DecodeItems(kind model.Kind, data []byte) ([]model.Item, error) {
	var wire []wireItem
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind.CollectionKey(), err)
	}
	items := make([]model.Item, 0, len(wire))
	for i, w := range wire {
		it, err := w.item(kind)
		if err != nil {
			return nil, fmt.Errorf("decoding %s[%d]: %w", kind.CollectionKey(), i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// number writes a decimal as a bare JSON number, the way the browser
// version stored amounts.
type number decimal.Decimal

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}

// storedItem is the shape written back, using the current field names only.
type storedItem struct {
	ID          string     `json:"id"`
	Kind        model.Kind `json:"kind"`
	Name        string     `json:"name"`
	Target      number     `json:"target"`
	Progress    number     `json:"progress"`
	Principal   number     `json:"principal"`
	MonthlyRate number     `json:"monthlyRate"`
	StartDate   date.Date  `json:"startDate"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func storedItems(items []model.Item) []storedItem {
	out := make([]storedItem, 0, len(items))
	for _, it := range items {
		out = append(out, storedItem{
			ID:          it.ID,
			Kind:        it.Kind,
			Name:        it.Name,
			Target:      number(it.Target),
			Progress:    number(it.Progress),
			Principal:   number(it.Principal),
			MonthlyRate: number(it.MonthlyRate),
			StartDate:   it.StartDate,
			CreatedAt:   it.CreatedAt,
		})
	}
	return out
}

// EncodeItems serialises a collection. An empty collection encodes as [].
func EncodeItems(items []model.Item) ([]byte, error) {
	return json.Marshal(storedItems(items))
}
