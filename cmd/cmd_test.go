package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"
)

func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("TALLY_DB", "")
	t.Setenv("TALLY_CURRENCY", "")
	t.Setenv("TALLY_LOG_LEVEL", "")
	return filepath.Join(dir, "tally.db")
}

func run(t *testing.T, dbPath string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append([]string{"--db", dbPath, "-q"}, args...))
	return rootCmd.Execute()
}

func items(t *testing.T, dbPath string, kind model.Kind) []model.Item {
	t.Helper()
	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	return ledger.Open(kind, ledger.NewKVStore(db, kind)).Items()
}

func TestDebtLifecycle(t *testing.T) {
	dbPath := testEnv(t)

	if err := run(t, dbPath, "debt", "add", "Visa", "1,000"); err != nil {
		t.Fatalf("add: %v", err)
	}
	debts := items(t, dbPath, model.KindDebt)
	if len(debts) != 1 || debts[0].Target.String() != "1000" {
		t.Fatalf("debts = %+v", debts)
	}

	prefix := debts[0].ID[:8]
	if err := run(t, dbPath, "debt", "pay", prefix, "1500"); err != nil {
		t.Fatalf("pay: %v", err)
	}
	debts = items(t, dbPath, model.KindDebt)
	if !debts[0].Progress.Equal(debts[0].Target) {
		t.Fatalf("overpayment should clamp to target, progress %s", debts[0].Progress)
	}

	if err := run(t, dbPath, "debt", "ls"); err != nil {
		t.Fatalf("ls: %v", err)
	}
	if err := run(t, dbPath, "debt", "rm", prefix); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if got := items(t, dbPath, model.KindDebt); len(got) != 0 {
		t.Fatalf("debts after rm = %+v", got)
	}
	if err := run(t, dbPath, "debt", "rm", prefix); err != nil {
		t.Fatalf("removing an already removed id should be a no-op, got %v", err)
	}
}

func TestUnknownIDIsNoOp(t *testing.T) {
	dbPath := testEnv(t)

	if err := run(t, dbPath, "debt", "add", "Visa", "100"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := run(t, dbPath, "debt", "rm", "does-not-exist"); err != nil {
		t.Fatalf("rm unknown id: %v", err)
	}
	if err := run(t, dbPath, "debt", "pay", "does-not-exist", "5"); err != nil {
		t.Fatalf("pay unknown id: %v", err)
	}

	debts := items(t, dbPath, model.KindDebt)
	if len(debts) != 1 || !debts[0].Progress.IsZero() {
		t.Fatalf("debts = %+v, want the one untouched debt", debts)
	}
}

func TestAmbiguousIDFails(t *testing.T) {
	dbPath := testEnv(t)

	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	e := ledger.Open(model.KindDebt, ledger.NewKVStore(db, model.KindDebt),
		ledger.WithIDGenerator(func() func() string {
			n := 0
			return func() string { n++; return fmt.Sprintf("abc-%d", n) }
		}()))
	for _, name := range []string{"Visa", "Amex"} {
		if _, err := e.Add(ledger.Draft{Name: name, Target: "100"}); err != nil {
			t.Fatal(err)
		}
	}
	db.Close()

	if err := run(t, dbPath, "debt", "rm", "abc"); err == nil {
		t.Fatal("an id prefix matching two debts should fail")
	}
	if got := items(t, dbPath, model.KindDebt); len(got) != 2 {
		t.Fatalf("debts = %+v, want both kept", got)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	dbPath := testEnv(t)

	if err := run(t, dbPath, "savings", "add", "Trip", "0"); err == nil {
		t.Fatal("zero target should be rejected")
	}
	if err := run(t, dbPath, "invest", "add", "CD", "1000", "2", "2999-01-01"); err == nil {
		t.Fatal("future start date should be rejected")
	}
	if got := items(t, dbPath, model.KindSavings); len(got) != 0 {
		t.Fatalf("nothing should be stored, got %+v", got)
	}
}

func TestInvestmentsHaveNoPayCommand(t *testing.T) {
	dbPath := testEnv(t)
	if err := run(t, dbPath, "invest", "add", "CD", "1000", "2", "2020-01-15"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := run(t, dbPath, "invest", "ls", "--as-of", "2020-04-15"); err != nil {
		t.Fatalf("ls: %v", err)
	}
	if err := run(t, dbPath, "invest", "pay", "x", "1"); err == nil {
		t.Fatal("invest pay should not exist")
	}
}

func TestThemeCommand(t *testing.T) {
	dbPath := testEnv(t)

	if err := run(t, dbPath, "theme", "light"); err != nil {
		t.Fatal(err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := db.Get(store.ThemeKey)
	db.Close()
	if err != nil || !ok || v != "light" {
		t.Fatalf("theme = %q, %v, %v", v, ok, err)
	}

	if err := run(t, dbPath, "theme", "sepia"); err == nil {
		t.Fatal("unknown theme argument should fail")
	}
}

func TestExportImport(t *testing.T) {
	dbPath := testEnv(t)
	if err := run(t, dbPath, "savings", "add", "Trip", "900"); err != nil {
		t.Fatal(err)
	}
	if err := run(t, dbPath, "theme", "dark"); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(filepath.Dir(dbPath), "export.json")
	if err := run(t, dbPath, "export", "-o", out); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"savingsGoals"`) || !strings.Contains(string(data), `"theme": "dark"`) {
		t.Fatalf("export = %s", data)
	}

	other := filepath.Join(filepath.Dir(dbPath), "other.db")
	if err := run(t, other, "import", out); err != nil {
		t.Fatalf("import: %v", err)
	}
	// importing again skips what is already there
	if err := run(t, other, "import", out); err != nil {
		t.Fatalf("re-import: %v", err)
	}
	goals := items(t, other, model.KindSavings)
	if len(goals) != 1 || goals[0].Name != "Trip" {
		t.Fatalf("imported goals = %+v", goals)
	}
}

func TestImportLegacyExport(t *testing.T) {
	dbPath := testEnv(t)
	in := filepath.Join(filepath.Dir(dbPath), "legacy.json")
	legacy := `{"debts":"[{\"id\":1718000000000,\"name\":\"Visa\",\"total\":500,\"paid\":600}]","theme":"light"}`
	if err := os.WriteFile(in, []byte(legacy), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := run(t, dbPath, "import", in); err != nil {
		t.Fatalf("import: %v", err)
	}
	debts := items(t, dbPath, model.KindDebt)
	if len(debts) != 1 || debts[0].ID != "1718000000000" {
		t.Fatalf("debts = %+v", debts)
	}
	if debts[0].Progress.String() != "500" {
		t.Fatalf("legacy overpayment should clamp, progress %s", debts[0].Progress)
	}
}

func TestLastChange(t *testing.T) {
	dbPath := testEnv(t)

	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := lastChange(db); ok {
		t.Fatal("empty database should have no last change")
	}
	db.Close()

	if err := run(t, dbPath, "savings", "add", "Trip", "500"); err != nil {
		t.Fatalf("add: %v", err)
	}
	db, err = store.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if when, ok := lastChange(db); !ok || when.IsZero() {
		t.Fatalf("lastChange = %v, %v after an add", when, ok)
	}
}
