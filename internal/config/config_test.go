package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("TALLY_DB", "")
	t.Setenv("TALLY_CURRENCY", "")
	t.Setenv("TALLY_LOG_LEVEL", "")
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists() = true before Save")
	}
	if got, want := DBPath(cfg), filepath.Join(dir, "data", "tally", "tally.db"); got != want {
		t.Fatalf("DBPath = %q, want %q", got, want)
	}
	if got, want := LogPath(cfg), filepath.Join(dir, "data", "tally", "tally.log"); got != want {
		t.Fatalf("LogPath = %q, want %q", got, want)
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.General.Currency = "EUR"
	cfg.General.DefaultTab = "savings"
	cfg.Appearance.DefaultDark = false
	cfg.Log.Level = "debug"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(ConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config mode = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TALLY_DB", "/tmp/other.db")
	t.Setenv("TALLY_CURRENCY", "gbp")
	t.Setenv("TALLY_LOG_LEVEL", "info")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DBPath != "/tmp/other.db" || DBPath(cfg) != "/tmp/other.db" {
		t.Fatalf("DBPath = %q", cfg.General.DBPath)
	}
	if cfg.General.Currency != "GBP" {
		t.Fatalf("Currency = %q, want GBP", cfg.General.Currency)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if got := LogPath(cfg); got != "/tmp/tally.log" {
		t.Fatalf("LogPath = %q, want next to the database", got)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("[general\ncurrency="), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load should fail on malformed TOML")
	}
}
