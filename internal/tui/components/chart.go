package components

import (
	"strings"

	"github.com/theirongolddev/motolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

func peak(values []float64) float64 {
	p := 0.0
	for _, v := range values {
		p = max(p, v)
	}
	return p
}

// Sparkline renders one block character per value, scaled to the peak.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	top := peak(values)
	if top == 0 {
		top = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / top * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		buf.WriteRune(blocks[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Render(buf.String())
}

// BarChart renders vertical bars, one column group per value, with labels
// underneath. highlight marks one bar with the accent color; -1 for none.
// Too small an area falls back to a sparkline.
func BarChart(values []float64, labels []string, color lipgloss.Color, highlight, width, height int) string {
	n := len(values)
	if n == 0 {
		return ""
	}
	colW := width / n
	if colW < 2 || height < 3 {
		return Sparkline(values, color)
	}
	t := theme.Active
	barW := max(colW-1, 1)
	rows := height - 1 // last row holds the labels

	top := peak(values)
	if top == 0 {
		top = 1
	}
	// Bar heights in eighths of a row.
	eighths := make([]int, n)
	for i, v := range values {
		eighths[i] = int(v / top * float64(rows*8))
		if v > 0 && eighths[i] == 0 {
			eighths[i] = 1
		}
	}

	bg := lipgloss.NewStyle().Background(t.Surface)
	bar := bg.Foreground(color)
	hot := bg.Foreground(t.AccentBright)

	var b strings.Builder
	for r := rows - 1; r >= 0; r-- {
		for i := range values {
			fill := eighths[i] - r*8
			cell := " "
			switch {
			case fill >= 8:
				cell = "█"
			case fill > 0:
				cell = string(blocks[fill-1])
			}
			style := bar
			if i == highlight {
				style = hot
			}
			b.WriteString(style.Render(strings.Repeat(cell, barW)))
			b.WriteString(bg.Render(strings.Repeat(" ", colW-barW)))
		}
		b.WriteString(bg.Render(strings.Repeat(" ", width-colW*n)))
		b.WriteString("\n")
	}

	label := bg.Foreground(t.TextMuted)
	for i := range values {
		l := ""
		if i < len(labels) {
			l = labels[i]
		}
		if lipgloss.Width(l) > colW {
			l = string([]rune(l)[:colW])
		}
		b.WriteString(label.Render(l + strings.Repeat(" ", colW-lipgloss.Width(l))))
	}
	b.WriteString(bg.Render(strings.Repeat(" ", width-colW*n)))
	return b.String()
}
