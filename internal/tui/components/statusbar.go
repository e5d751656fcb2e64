package components

import (
	"strings"

	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest message on the right, in red when isErr is set.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	msgColor := t.Green
	if isErr {
		msgColor = t.Red
	}
	msgStyle := lipgloss.NewStyle().Foreground(msgColor)

	left := " " + hints
	right := ""
	if message != "" {
		right = msgStyle.Render(message) + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
