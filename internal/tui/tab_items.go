package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderTracker renders the active tab: a metric strip, then one card per item.
func (a App) renderTracker(cw int) string {
	t := theme.Active
	e := a.engine()
	if e == nil {
		return ""
	}

	items := e.Items()
	sum := e.Summary()

	var b strings.Builder
	b.WriteString(components.MetricCardRow(a.metrics(sum), cw))
	b.WriteString("\n")

	if len(items) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Width(cw).
			Align(lipgloss.Center).
			Padding(1, 0)
		b.WriteString(empty.Render(a.kind().EmptyMessage() + " Press a to add one."))
		return b.String()
	}

	// Cards above the selection scroll off so it stays near the top.
	cursor := a.cursors[a.activeTab]
	first := max(cursor-scrollMargin, 0)
	cards := make([]string, 0, len(items)-first)
	for i := first; i < len(items); i++ {
		cards = append(cards, a.renderItemCard(items[i], cw, i == cursor))
	}
	b.WriteString(strings.Join(cards, "\n"))
	return b.String()
}

// scrollMargin is how many cards stay visible above the selected one.
const scrollMargin = 2

func (a App) metrics(s model.Summary) []components.Metric {
	count := fmt.Sprintf("%d", s.Count)
	if s.Kind.Tracked() {
		progressLabel := "Paid"
		if s.Kind == model.KindSavings {
			progressLabel = "Saved"
		}
		return []components.Metric{
			{Label: "Total", Value: cli.FormatMoney(s.TotalTarget, a.currency)},
			{Label: progressLabel, Value: cli.FormatMoney(s.TotalProgress, a.currency),
				Note: cli.FormatPercent(s.Percent() / 100)},
			{Label: "Remaining", Value: cli.FormatMoney(s.TotalRemaining, a.currency)},
			{Label: "Items", Value: count, Note: fmt.Sprintf("%d complete", s.Completed)},
		}
	}
	return []components.Metric{
		{Label: "Principal", Value: cli.FormatMoney(s.TotalPrincipal, a.currency)},
		{Label: "Accrued interest", Value: cli.FormatMoney(s.TotalInterest, a.currency),
			Note: "as of " + s.AsOf.String()},
		{Label: "Investments", Value: count},
	}
}

func (a App) renderItemCard(it model.Item, cw int, selected bool) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	title := it.Name + "  " + lipgloss.NewStyle().Foreground(t.TextDim).Render(cli.ShortID(it.ID))

	var body strings.Builder
	if it.Kind.Tracked() {
		progressLabel := "paid"
		if it.Kind == model.KindSavings {
			progressLabel = "saved"
		}
		body.WriteString(components.ItemProgressBar(it, inner))
		body.WriteString("\n")
		body.WriteString(valueStyle.Render(fmt.Sprintf("%s / %s",
			cli.FormatMoney(it.Progress, a.currency),
			cli.FormatMoney(it.Target, a.currency))))
		body.WriteString(mutedStyle.Render(" " + progressLabel))
		body.WriteString("\n")
		if it.IsComplete() {
			body.WriteString(goodStyle.Render(remainingLine(it, a.currency)))
		} else {
			body.WriteString(mutedStyle.Render(remainingLine(it, a.currency)))
		}
	} else {
		asOf := a.engine().Today()
		body.WriteString(valueStyle.Render(fmt.Sprintf("%s at %s",
			cli.FormatMoney(it.Principal, a.currency), cli.FormatRate(it.MonthlyRate))))
		body.WriteString(mutedStyle.Render("  since " + it.StartDate.String()))
		body.WriteString("\n")
		body.WriteString(mutedStyle.Render("Accrued interest: "))
		body.WriteString(goodStyle.Render(cli.FormatMoney(model.AccruedInterest(it, asOf), a.currency)))
		body.WriteString(mutedStyle.Render(" (" + cli.FormatMonths(it.MonthsElapsed(asOf)) + ")"))
	}

	return components.ContentCard(title, body.String(), cw, selected)
}
