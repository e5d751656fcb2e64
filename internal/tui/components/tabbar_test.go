package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theirongolddev/tally/internal/model"
)

func TestTabIdxByKey(t *testing.T) {
	tests := map[rune]int{'1': 0, '2': 1, '3': 2, '4': -1, 'd': -1}
	for key, want := range tests {
		if got := TabIdxByKey(key); got != want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", key, got, want)
		}
	}
	if got := TabIdxByKind(model.KindInvestment); got != 2 {
		t.Errorf("TabIdxByKind(investment) = %d, want 2", got)
	}
}

func TestRenderTabBarFillsWidth(t *testing.T) {
	bar := RenderTabBar(1, 80)
	if lipgloss.Width(bar) != 80 {
		t.Fatalf("tab bar width = %d, want 80", lipgloss.Width(bar))
	}
	// Styled tabs are escaped rune by rune, so compare the plain text.
	plain := ansi.Strip(bar)
	for _, tab := range Tabs {
		if !strings.Contains(plain, tab.Name) {
			t.Errorf("tab bar missing %q", tab.Name)
		}
	}
}

func TestStatusBarShowsMessage(t *testing.T) {
	bar := RenderStatusBar(60, "[q]uit", "Debt cleared!", false)
	if !strings.Contains(bar, "Debt cleared!") || !strings.Contains(bar, "[q]uit") {
		t.Fatalf("status bar = %q", bar)
	}
	if lipgloss.Width(bar) != 60 {
		t.Fatalf("status bar width = %d, want 60", lipgloss.Width(bar))
	}
}

func TestProgressBarClamps(t *testing.T) {
	full := ProgressBar(150, 30, "#00ff00")
	if !strings.Contains(full, "100%") {
		t.Fatalf("overfull bar should read 100%%: %q", full)
	}
	if w := lipgloss.Width(ProgressBar(40, 30, "#00ff00")); w != 30 {
		t.Fatalf("bar width = %d, want 30", w)
	}
}
