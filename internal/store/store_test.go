package store

import (
	"path/filepath"
	"reflect"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "tally.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testKV(t *testing.T, kv KV) {
	t.Helper()

	if _, ok, err := kv.Get("debts"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v", ok, err)
	}

	if err := kv.Set("debts", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("debts", `[{"id":"b"}]`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if err := kv.Set("theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, ok, err := kv.Get("debts")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if v != `[{"id":"b"}]` {
		t.Fatalf("Get = %q, want the overwritten value", v)
	}

	keys, err := kv.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(keys, []string{"debts", "theme"}) {
		t.Fatalf("Keys = %v", keys)
	}

	if err := kv.Delete("debts"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Delete("missing"); err != nil {
		t.Fatalf("Delete of absent key: %v", err)
	}
	if _, ok, _ := kv.Get("debts"); ok {
		t.Fatal("key still present after Delete")
	}
}

func TestDBKV(t *testing.T) {
	testKV(t, openTestDB(t))
}

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemory())
}

func TestInMemoryDB(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	testKV(t, db)
}

func TestDBPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.db")

	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Set("savingsGoals", "[]"); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := db.UpdatedAt("savingsGoals"); err != nil || !ok {
		t.Fatalf("UpdatedAt = ok %v, err %v", ok, err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	v, ok, err := db.Get("savingsGoals")
	if err != nil || !ok || v != "[]" {
		t.Fatalf("after reopen Get = %q, %v, %v", v, ok, err)
	}
}

func TestDarkMode(t *testing.T) {
	kv := NewMemory()

	if dark, err := DarkMode(kv, true); err != nil || !dark {
		t.Fatalf("unset preference should use fallback true, got %v %v", dark, err)
	}
	if dark, _ := DarkMode(kv, false); dark {
		t.Fatal("unset preference should use fallback false")
	}

	if err := SetDarkMode(kv, false); err != nil {
		t.Fatal(err)
	}
	if v, _, _ := kv.Get(ThemeKey); v != "light" {
		t.Fatalf("stored theme = %q, want light", v)
	}
	if dark, _ := DarkMode(kv, true); dark {
		t.Fatal("stored light should override fallback")
	}

	_ = kv.Set(ThemeKey, "sepia")
	if dark, _ := DarkMode(kv, true); !dark {
		t.Fatal("unknown value should use fallback")
	}
}
