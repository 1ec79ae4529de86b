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
	"github.com/shopspring/decimal"
)

// dayRow is one selectable record on the Today tab. Daily rates come
// first, then deliveries in insertion order.
type dayRow struct {
	id         int64
	rate       bool
	label      string
	detail     string // schedule for rates
	amount     float64
	running    decimal.Decimal // deliveries only
	adjustment bool
}

func (a App) dayRows() []dayRow {
	rates := a.snap.DailyRatesOn(a.day)
	deliveries := a.snap.DeliveriesOn(a.day)
	rows := make([]dayRow, 0, len(rates)+len(deliveries))
	for _, r := range rates {
		rows = append(rows, dayRow{id: r.ID, rate: true, label: r.Workplace, detail: r.Schedule, amount: r.Rate})
	}
	running := decimal.Zero
	for _, r := range deliveries {
		running = running.Add(r.FeeAmount())
		rows = append(rows, dayRow{
			id:         r.ID,
			label:      r.ClientAddress,
			amount:     r.Fee,
			running:    running,
			adjustment: r.IsAdjustment,
		})
	}
	return rows
}

func (a App) dayEntry() model.DayEntry {
	return pipeline.Day(a.snap, a.day)
}

func (a App) renderTodayTab(cw int) string {
	t := theme.Active
	entry := a.dayEntry()

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Deliveries", Value: cli.FormatMoney(entry.TotalDeliveries), Note: cli.Plural(entry.Deliveries, "delivery", "deliveries"), Color: t.Delivery},
		{Label: "Daily rates", Value: cli.FormatMoney(entry.TotalDailyRates), Note: cli.Plural(entry.DailyRates, "job", "jobs"), Color: t.DailyRate},
		{Label: "Day total", Value: cli.FormatMoney(entry.GrandTotal), Note: entry.Weekday + " " + entry.Date.String(), Color: t.Total},
	}, cw)

	rows := a.dayRows()
	inner := components.CardInnerWidth(cw)
	var body string
	if len(rows) == 0 {
		body = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render("No records for this day. Press a to add a delivery or A for a daily rate.")
	} else {
		body = a.renderDayRows(rows, inner)
	}

	title := "Records"
	if a.day == a.store.Today() {
		title = "Records · today"
	}
	return metrics + "\n" + components.FocusedCard(title, body, cw)
}

func (a App) renderDayRows(rows []dayRow, inner int) string {
	t := theme.Active
	base := lipgloss.NewStyle().Background(t.Surface)
	sel := lipgloss.NewStyle().Background(t.Selection).Foreground(t.TextPrimary).Bold(true)

	const amountW, runningW = 12, 12
	labelW := max(inner-amountW-runningW-6, 10)

	var b strings.Builder
	section := ""
	n := 0
	for i, r := range rows {
		kind := "Deliveries"
		if r.rate {
			kind = "Daily rates"
		}
		if kind != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = kind
			b.WriteString(base.Foreground(t.TextMuted).Bold(true).Render(kind))
			b.WriteString("\n")
		}

		color := t.Delivery
		label := r.label
		running := ""
		if r.rate {
			color = t.DailyRate
			if r.detail != "" {
				label += " (" + r.detail + ")"
			}
		} else {
			n++
			label = fmt.Sprintf("%d. %s", n, label)
			running = cli.FormatMoney(r.running)
		}
		if r.adjustment {
			color = t.Adjustment
		}

		line := "  " + padRight(cli.Truncate(label, labelW), labelW) +
			"  " + padLeft(cli.FormatFloatMoney(r.amount), amountW) +
			"  " + padLeft(running, runningW)

		switch {
		case a.pendingDel != nil && a.pendingDel.id == r.id && a.pendingDel.rate == r.rate:
			b.WriteString(sel.Foreground(t.Negative).Render(padRight(line, inner)))
		case i == a.cursor:
			b.WriteString(sel.Render(padRight("›"+line[1:], inner)))
		default:
			b.WriteString(base.Foreground(color).Render(padRight(line, inner)))
		}
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
