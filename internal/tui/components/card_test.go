package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/tally/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(80, 3)
	if len(widths) != 3 || widths[0] != 27 || widths[1] != 27 || widths[2] != 26 {
		t.Fatalf("LayoutRow(80, 3) = %v", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with no items should be nil")
	}
}

func TestCardRowPadsShortCards(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22, false)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22, true)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("test setup: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		if lipgloss.Width(line) != width {
			t.Errorf("line %d width = %d, want %d", i, lipgloss.Width(line), width)
		}
		// below the short card the padding must still carry a background
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("line %d has no ANSI codes", i)
		}
	}
}

func TestSelectedCardUsesAccentBorder(t *testing.T) {
	theme.SetActive("flexoki-dark")

	plain := ContentCard("Card", "body", 30, false)
	selected := ContentCard("Card", "body", 30, true)
	if plain == selected {
		t.Fatal("selected card should render differently")
	}
	if lipgloss.Width(plain) != 30 || lipgloss.Width(selected) != 30 {
		t.Fatalf("card widths = %d/%d, want 30", lipgloss.Width(plain), lipgloss.Width(selected))
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Owed", Value: "$1,000.00"},
		{Label: "Paid", Value: "$250.00", Note: "25.0%"},
		{Label: "Items", Value: "3"},
	}, 90)
	if got := lipgloss.Width(strings.Split(row, "\n")[0]); got != 90 {
		t.Fatalf("row width = %d, want 90", got)
	}
	if MetricCardRow(nil, 90) != "" {
		t.Fatal("empty metric row should render nothing")
	}
}
