package components

import (
	"strings"

	"github.com/theirongolddev/motolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: key hints on the left, and a
// flash message on the right when one is set.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	msgStyle := lipgloss.NewStyle().Foreground(t.Total).Background(t.Surface).Bold(true)
	if isErr {
		msgStyle = msgStyle.Foreground(t.Negative)
	}

	left := base.Render(" " + hints)
	right := ""
	if message != "" {
		right = msgStyle.Render(message + " ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		// Message wins over hints on narrow terminals.
		return base.Width(width).Render(" " + message)
	}
	return left + base.Render(strings.Repeat(" ", gap)) + right
}
