package components

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForKind returns the bar color for a tracker: red for paying down
// debt, blue for saving, green once an item is complete.
func ColorForKind(kind model.Kind, complete bool) lipgloss.Color {
	t := theme.Active
	switch {
	case complete:
		return t.Green
	case kind == model.KindDebt:
		return t.Red
	case kind == model.KindSavings:
		return t.Blue
	default:
		return t.Accent
	}
}

// ProgressBar renders a bar for a 0-100 percentage followed by the
// rounded percentage.
func ProgressBar(pct float64, width int, color lipgloss.Color) string {
	t := theme.Active

	pct = min(max(pct, 0), 100)
	barW := max(width-5, 4)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return bar.ViewAs(pct/100) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}

// ItemProgressBar renders a tracked item's progress in its kind's color.
func ItemProgressBar(it model.Item, width int) string {
	return ProgressBar(it.Percent(), width, ColorForKind(it.Kind, it.IsComplete()))
}
