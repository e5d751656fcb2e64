package theme

import "testing"

func TestForMode(t *testing.T) {
	tests := []struct {
		dark      bool
		darkName  string
		lightName string
		wantName  string
	}{
		{true, "catppuccin-mocha", "catppuccin-latte", "catppuccin-mocha"},
		{false, "catppuccin-mocha", "catppuccin-latte", "catppuccin-latte"},
		{true, "nope", "", "flexoki-dark"},
		{false, "", "nope", "flexoki-light"},
		// a dark palette configured as the light one is not honored
		{false, "flexoki-dark", "terminal", "flexoki-light"},
	}
	for _, tt := range tests {
		got := ForMode(tt.dark, tt.darkName, tt.lightName)
		if got.Name != tt.wantName {
			t.Errorf("ForMode(%v, %q, %q) = %q, want %q", tt.dark, tt.darkName, tt.lightName, got.Name, tt.wantName)
		}
		if got.Dark != tt.dark {
			t.Errorf("ForMode(%v, ...) returned Dark=%v", tt.dark, got.Dark)
		}
	}
}

func TestSetMode(t *testing.T) {
	defer func(prev Theme) { Active = prev }(Active)

	SetMode(false, "flexoki-dark", "flexoki-light")
	if Active.Name != "flexoki-light" {
		t.Fatalf("Active = %q, want flexoki-light", Active.Name)
	}
	SetActive("terminal")
	if !Active.Dark {
		t.Fatal("terminal theme should be dark")
	}
}

func TestThemeNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, th := range All {
		if seen[th.Name] {
			t.Fatalf("duplicate theme %q", th.Name)
		}
		seen[th.Name] = true
	}
}
