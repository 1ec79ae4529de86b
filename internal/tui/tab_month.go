package tui

import (
	"fmt"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/pipeline"
	"github.com/theirongolddev/motolog/internal/tui/components"
	"github.com/theirongolddev/motolog/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

func (a App) renderMonthTab(cw int) string {
	t := theme.Active
	stats := pipeline.MonthlyStatistics(a.snap, a.day)
	prev := pipeline.MonthlyStatistics(a.snap, a.day.FirstOfMonth().AddDays(-1))

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Month total", Value: cli.FormatMoney(stats.TotalValue), Note: "vs " + cli.FormatDelta(stats.TotalValue, prev.TotalValue), Color: t.Total},
		{Label: "Average per day", Value: cli.FormatMoney(stats.AveragePerDay), Note: fmt.Sprintf("over %d days", a.day.Day)},
		{Label: "Activities", Value: cli.FormatNumber(int64(stats.Activities)), Note: fmt.Sprintf("%d deliveries · %d rates", stats.Deliveries, stats.DailyRates)},
		{Label: "Worked days", Value: cli.FormatNumber(int64(stats.WorkedDays)), Note: fmt.Sprintf("of %d elapsed", a.day.Day)},
	}, cw)

	inner := components.CardInnerWidth(cw)
	base := lipgloss.NewStyle().Background(t.Surface)
	muted := base.Foreground(t.TextMuted)

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(max(inner-20, 10)),
	)
	pct := 0.0
	if a.day.Day > 0 {
		pct = float64(stats.WorkedDays) / float64(a.day.Day)
	}
	bar.EmptyColor = string(t.Border)

	split := muted.Render(padRight("Deliveries", 14)) +
		base.Foreground(t.Delivery).Render(padLeft(cli.FormatMoney(stats.DeliveryValue), 16)) + "\n" +
		muted.Render(padRight("Daily rates", 14)) +
		base.Foreground(t.DailyRate).Render(padLeft(cli.FormatMoney(stats.DailyRateValue), 16)) + "\n" +
		muted.Render(padRight("Previous", 14)) +
		base.Foreground(t.TextPrimary).Render(padLeft(cli.FormatMoney(prev.TotalValue), 16)) +
		muted.Render("  "+prev.Month.MonthName())

	// Day-by-day totals up to the selected day.
	first := a.day.FirstOfMonth()
	series := make([]float64, a.day.Day)
	for _, d := range pipeline.AggregateDays(a.snap, first, a.day) {
		series[d.Date.Day-1], _ = d.GrandTotal.Float64()
	}

	body := split + "\n\n" +
		muted.Render(padRight("Worked days", 14)) + bar.ViewAs(pct) + "\n" +
		muted.Render(padRight("Daily totals", 14)) + components.Sparkline(series, t.Accent)

	return metrics + "\n" + components.ContentCard(stats.Month.MonthName(), body, cw)
}
