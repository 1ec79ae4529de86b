package components

import (
	"strings"

	"github.com/theirongolddev/motolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry of the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs lists the dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Today", Key: '1'},
	{Name: "Week", Key: '2'},
	{Name: "Month", Key: '3'},
	{Name: "History", Key: '4'},
}

const tabPadding = 1

func tabLabel(tab Tab) string {
	return string(tab.Key) + " " + tab.Name
}

// TabVisualWidth is the rendered width of tab, padding included.
func TabVisualWidth(tab Tab) int {
	return lipgloss.Width(tabLabel(tab)) + 2*tabPadding
}

// RenderTabBar renders a single-line tab bar with activeIdx highlighted.
// Tabs are separated by one column.
func RenderTabBar(activeIdx int, width int, right string) string {
	t := theme.Active

	active := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, tabPadding)
	inactive := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, tabPadding)
	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = active.Render(tabLabel(tab))
		} else {
			parts[i] = inactive.Render(tabLabel(tab))
		}
	}
	bar := strings.Join(parts, sep)

	rightStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	r := rightStyle.Render(right + " ")
	gap := width - lipgloss.Width(bar) - lipgloss.Width(r)
	if gap < 1 {
		return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(bar)
	}
	return bar + lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", gap)) + r
}

// TabIdxByKey returns the tab bound to key, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
