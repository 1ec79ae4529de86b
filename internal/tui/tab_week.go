package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/pipeline"
	"github.com/theirongolddev/motolog/internal/tui/components"
	"github.com/theirongolddev/motolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderWeekTab(cw int) string {
	t := theme.Active
	days := pipeline.WeeklyBreakdown(a.snap, a.day)
	totals := pipeline.SumWeek(days)

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Week total", Value: cli.FormatMoney(totals.GrandTotal), Color: t.Total},
		{Label: "Deliveries", Value: cli.FormatMoney(totals.TotalDeliveries), Note: cli.Plural(totals.Deliveries, "delivery", "deliveries"), Color: t.Delivery},
		{Label: "Daily rates", Value: cli.FormatMoney(totals.TotalDailyRates), Note: cli.Plural(totals.DailyRates, "job", "jobs"), Color: t.DailyRate},
		{Label: "Worked days", Value: fmt.Sprintf("%d of 7", totals.WorkedDays)},
	}, cw)

	values := make([]float64, len(days))
	labels := make([]string, len(days))
	highlight := -1
	for i, d := range days {
		values[i], _ = d.GrandTotal.Float64()
		labels[i] = fmt.Sprintf("%s %02d", d.Weekday, d.Date.Day)
		if d.Date == a.day {
			highlight = i
		}
	}
	inner := components.CardInnerWidth(cw)
	chart := components.BarChart(values, labels, t.Accent, highlight, inner, 8)

	base := lipgloss.NewStyle().Background(t.Surface)
	var table strings.Builder
	for i, d := range days {
		style := base.Foreground(t.TextMuted)
		if d.Worked() {
			style = base.Foreground(t.TextPrimary)
		}
		if i == highlight {
			style = style.Foreground(t.AccentBright).Bold(true)
		}
		line := padRight(labels[i], 10) +
			padLeft(fmt.Sprintf("%d", d.Deliveries), 8) +
			padLeft(fmt.Sprintf("%d", d.DailyRates), 7) +
			padLeft(cli.FormatMoney(d.TotalDeliveries), 15) +
			padLeft(cli.FormatMoney(d.TotalDailyRates), 15) +
			padLeft(cli.FormatMoney(d.GrandTotal), 15)
		table.WriteString(style.Render(padRight(line, inner)))
		if i < len(days)-1 {
			table.WriteString("\n")
		}
	}
	header := base.Foreground(t.TextDim).Render(padRight(
		padRight("Day", 10)+padLeft("Deliv.", 8)+padLeft("Rates", 7)+
			padLeft("Deliveries", 15)+padLeft("Daily rates", 15)+padLeft("Total", 15), inner))

	title := fmt.Sprintf("Week %s – %s", totals.Start, totals.End)
	return metrics + "\n" +
		components.ContentCard(title, chart, cw) + "\n" +
		components.ContentCard("", header+"\n"+table.String(), cw)
}
