package ledger

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/tally/internal/date"
	"github.com/theirongolddev/tally/internal/model"
)

func assertSameItems(t *testing.T, got, want []model.Item) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Kind != w.Kind || g.Name != w.Name || g.StartDate != w.StartDate {
			t.Errorf("item %d = %+v, want %+v", i, g, w)
		}
		if !g.Target.Equal(w.Target) || !g.Progress.Equal(w.Progress) ||
			!g.Principal.Equal(w.Principal) || !g.MonthlyRate.Equal(w.MonthlyRate) {
			t.Errorf("item %d amounts = %s/%s/%s/%s, want %s/%s/%s/%s", i,
				g.Target, g.Progress, g.Principal, g.MonthlyRate,
				w.Target, w.Progress, w.Principal, w.MonthlyRate)
		}
		if !g.CreatedAt.Equal(w.CreatedAt) {
			t.Errorf("item %d CreatedAt = %v, want %v", i, g.CreatedAt, w.CreatedAt)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	items := []model.Item{
		{ID: "d1", Kind: model.KindDebt, Name: "Card", Target: dec("1234.56"), Progress: dec("99.99"), CreatedAt: created},
		{ID: "d2", Kind: model.KindDebt, Name: "Loan \"quoted\"", Target: dec("10"), Progress: dec("10"), CreatedAt: created},
		{ID: "i1", Kind: model.KindInvestment, Name: "Bond", Principal: dec("1000"), MonthlyRate: dec("0.75"),
			StartDate: date.MustParse("2025-01-31"), CreatedAt: created},
	}

	data, err := EncodeItems(items)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeItems(model.KindDebt, data)
	if err != nil {
		t.Fatal(err)
	}
	assertSameItems(t, got, items)
}

func TestEncodeWritesNumbers(t *testing.T) {
	data, err := EncodeItems([]model.Item{{ID: "x", Kind: model.KindSavings, Name: "G", Target: dec("12.5")}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"target":12.5`) {
		t.Fatalf("amounts should be JSON numbers: %s", data)
	}
}

func TestEncodeLeavesDecimalDefaults(t *testing.T) {
	if _, err := EncodeItems([]model.Item{{ID: "x", Kind: model.KindDebt, Name: "D", Target: dec("3")}}); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(dec("1.5"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"1.5"` {
		t.Fatalf("decimal outside the codec encoded as %s, want quoted", data)
	}
}

func TestEncodeEmpty(t *testing.T) {
	data, err := EncodeItems(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("EncodeItems(nil) = %s, want []", data)
	}
}

func TestDecodeLegacyShapes(t *testing.T) {
	debts, err := DecodeItems(model.KindDebt,
		[]byte(`[{"id":1718000000000,"name":"Visa","total":500,"paid":120.5}]`))
	if err != nil {
		t.Fatal(err)
	}
	d := debts[0]
	if d.ID != "1718000000000" || d.Kind != model.KindDebt {
		t.Fatalf("debt id/kind = %q/%q", d.ID, d.Kind)
	}
	if !d.Target.Equal(dec("500")) || !d.Progress.Equal(dec("120.5")) {
		t.Fatalf("debt amounts = %s/%s", d.Target, d.Progress)
	}
	if !d.CreatedAt.Equal(time.UnixMilli(1718000000000)) {
		t.Fatalf("CreatedAt = %v, want derived from id", d.CreatedAt)
	}

	goals, err := DecodeItems(model.KindSavings,
		[]byte(`[{"id":1718000000001,"name":"Trip","targetAmount":"2000","saved":300}]`))
	if err != nil {
		t.Fatal(err)
	}
	if !goals[0].Target.Equal(dec("2000")) || !goals[0].Progress.Equal(dec("300")) {
		t.Fatalf("savings amounts = %s/%s", goals[0].Target, goals[0].Progress)
	}

	invs, err := DecodeItems(model.KindInvestment,
		[]byte(`[{"id":1718000000002,"name":"CD","principal":1000,"interestRate":2,"startDate":"2025-07-19"}]`))
	if err != nil {
		t.Fatal(err)
	}
	inv := invs[0]
	if !inv.MonthlyRate.Equal(dec("2")) || inv.StartDate != date.MustParse("2025-07-19") {
		t.Fatalf("investment = %+v", inv)
	}
	if got := model.AccruedInterest(inv, date.MustParse("2025-10-19")); !got.Equal(dec("60")) {
		t.Fatalf("legacy investment accrued %s, want 60", got)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{`{`, `{"id":"a"}`, `[{"id":{}}]`, `[{"startDate":"tomorrow"}]`} {
		if _, err := DecodeItems(model.KindDebt, []byte(in)); err == nil {
			t.Errorf("DecodeItems(%s) should fail", in)
		}
	}
}

func TestBundle(t *testing.T) {
	in := `{
		"debts": "[{\"id\":1,\"name\":\"Visa\",\"total\":500,\"paid\":50}]",
		"savingsGoals": [{"id":"g","name":"Trip","targetAmount":900,"saved":0}],
		"theme": "dark",
		"unrelated": 42
	}`
	b, err := DecodeBundle([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Collections[model.KindDebt]) != 1 || len(b.Collections[model.KindSavings]) != 1 {
		t.Fatalf("collections = %+v", b.Collections)
	}
	if _, ok := b.Collections[model.KindInvestment]; ok {
		t.Fatal("absent collection should not be present")
	}
	if b.Dark == nil || !*b.Dark {
		t.Fatal("theme should decode as dark")
	}

	out, err := EncodeBundle(b)
	if err != nil {
		t.Fatal(err)
	}
	again, err := DecodeBundle(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, kind := range []model.Kind{model.KindDebt, model.KindSavings} {
		assertSameItems(t, again.Collections[kind], b.Collections[kind])
	}
	if len(again.Collections[model.KindInvestment]) != 0 {
		t.Fatal("investments should encode as an empty array")
	}
	if again.Dark == nil || !*again.Dark {
		t.Fatal("theme lost in round trip")
	}
}
