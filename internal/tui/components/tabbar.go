package components

import (
	"strings"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
	Kind model.Kind
}

// Tabs defines all available tabs, one per tracker.
var Tabs = []Tab{
	{Name: "Debts", Key: '1', Kind: model.KindDebt},
	{Name: "Savings", Key: '2', Kind: model.KindSavings},
	{Name: "Investments", Key: '3', Kind: model.KindInvestment},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		key := dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]")
		if i == activeIdx {
			parts = append(parts, key+" "+activeStyle.Render(tab.Name))
		} else {
			parts = append(parts, key+" "+inactiveStyle.Render(tab.Name))
		}
	}

	bar := " " + strings.Join(parts, "   ")
	if pad := width - lipgloss.Width(bar); pad > 0 {
		bar += strings.Repeat(" ", pad)
	}
	return bar
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// TabIdxByKind returns the tab index showing kind, or 0.
func TabIdxByKind(kind model.Kind) int {
	for i, tab := range Tabs {
		if tab.Kind == kind {
			return i
		}
	}
	return 0
}
