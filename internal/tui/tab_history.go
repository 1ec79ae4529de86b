package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/model"
	"github.com/theirongolddev/motolog/internal/pipeline"
	"github.com/theirongolddev/motolog/internal/tui/components"
	"github.com/theirongolddev/motolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// historyDays lists every worked day, most recent first.
func (a App) historyDays() []model.DayEntry {
	return pipeline.AggregateDays(a.snap, model.Date{}, model.Date{})
}

func (a App) renderHistoryTab(cw, h int) string {
	t := theme.Active
	days := a.historyDays()
	inner := components.CardInnerWidth(cw)
	base := lipgloss.NewStyle().Background(t.Surface)

	if len(days) == 0 {
		return components.ContentCard("History", base.Foreground(t.TextDim).Render("No records yet."), cw)
	}

	// Card border, title and header take four lines.
	visible := max(h-4, 1)
	offset := 0
	if a.histCursor >= visible {
		offset = a.histCursor - visible + 1
	}
	end := min(offset+visible, len(days))

	header := base.Foreground(t.TextDim).Render(padRight(
		"  "+padRight("Date", 16)+padLeft("Deliv.", 8)+padLeft("Rates", 7)+padLeft("Total", 15), inner))

	var b strings.Builder
	b.WriteString(header)
	for i := offset; i < end; i++ {
		d := days[i]
		line := "  " + padRight(d.Weekday+" "+d.Date.String(), 16) +
			padLeft(fmt.Sprintf("%d", d.Deliveries), 8) +
			padLeft(fmt.Sprintf("%d", d.DailyRates), 7) +
			padLeft(cli.FormatMoney(d.GrandTotal), 15)
		b.WriteString("\n")
		if i == a.histCursor {
			b.WriteString(base.Background(t.Selection).Foreground(t.TextPrimary).Bold(true).
				Render(padRight("›"+line[1:], inner)))
		} else {
			b.WriteString(base.Foreground(t.TextPrimary).Render(padRight(line, inner)))
		}
	}

	title := fmt.Sprintf("History · %d–%d of %d · enter opens the day", offset+1, end, len(days))
	return components.FocusedCard(title, b.String(), cw)
}
