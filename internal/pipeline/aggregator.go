// Package pipeline derives totals and statistics from a record snapshot.
// Every function recomputes from the snapshot it is given; nothing is cached.
package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/motolog/internal/model"
)

// TotalDeliveries sums the fees of the deliveries dated d.
func TotalDeliveries(snap model.Snapshot, d model.Date) decimal.Decimal {
	total := decimal.Zero
	for _, r := range snap.Deliveries {
		if r.Date == d {
			total = total.Add(r.FeeAmount())
		}
	}
	return total
}

// TotalDailyRates sums the rates of the daily-rate jobs dated d.
func TotalDailyRates(snap model.Snapshot, d model.Date) decimal.Decimal {
	total := decimal.Zero
	for _, r := range snap.DailyRates {
		if r.Date == d {
			total = total.Add(r.RateAmount())
		}
	}
	return total
}

// GrandTotal is TotalDeliveries plus TotalDailyRates for d.
func GrandTotal(snap model.Snapshot, d model.Date) decimal.Decimal {
	return TotalDeliveries(snap, d).Add(TotalDailyRates(snap, d))
}

// Day computes the entry for a single date.
func Day(snap model.Snapshot, d model.Date) model.DayEntry {
	entry := model.DayEntry{
		Date:            d,
		Weekday:         d.WeekdayAbbrev(),
		TotalDeliveries: decimal.Zero,
		TotalDailyRates: decimal.Zero,
	}
	for _, r := range snap.Deliveries {
		if r.Date == d {
			entry.Deliveries++
			entry.TotalDeliveries = entry.TotalDeliveries.Add(r.FeeAmount())
		}
	}
	for _, r := range snap.DailyRates {
		if r.Date == d {
			entry.DailyRates++
			entry.TotalDailyRates = entry.TotalDailyRates.Add(r.RateAmount())
		}
	}
	entry.GrandTotal = entry.TotalDeliveries.Add(entry.TotalDailyRates)
	return entry
}

// WeeklyBreakdown returns the seven days, Sunday through Saturday, of the
// week containing ref.
func WeeklyBreakdown(snap model.Snapshot, ref model.Date) []model.DayEntry {
	start := ref.StartOfWeek()
	days := make([]model.DayEntry, 7)
	for i := range days {
		days[i] = Day(snap, start.AddDays(i))
	}
	return days
}

// SumWeek totals the entries of a weekly breakdown.
func SumWeek(days []model.DayEntry) model.WeekTotals {
	totals := model.WeekTotals{
		TotalDeliveries: decimal.Zero,
		TotalDailyRates: decimal.Zero,
		GrandTotal:      decimal.Zero,
	}
	if len(days) == 0 {
		return totals
	}
	totals.Start = days[0].Date
	totals.End = days[len(days)-1].Date
	for _, d := range days {
		totals.Deliveries += d.Deliveries
		totals.DailyRates += d.DailyRates
		totals.TotalDeliveries = totals.TotalDeliveries.Add(d.TotalDeliveries)
		totals.TotalDailyRates = totals.TotalDailyRates.Add(d.TotalDailyRates)
		totals.GrandTotal = totals.GrandTotal.Add(d.GrandTotal)
		if d.Worked() {
			totals.WorkedDays++
		}
	}
	return totals
}

// MonthlyStatistics computes the statistics for ref's month. The average
// divides by ref's day of the month, i.e. the elapsed calendar days.
func MonthlyStatistics(snap model.Snapshot, ref model.Date) model.MonthStats {
	first := ref.FirstOfMonth()
	last := ref.LastOfMonth()
	inMonth := func(d model.Date) bool {
		return !d.Before(first) && !d.After(last)
	}

	stats := model.MonthStats{
		Month:          first,
		Reference:      ref,
		DeliveryValue:  decimal.Zero,
		DailyRateValue: decimal.Zero,
		AveragePerDay:  decimal.Zero,
	}
	worked := make(map[model.Date]struct{})

	for _, r := range snap.Deliveries {
		if !inMonth(r.Date) {
			continue
		}
		stats.Deliveries++
		stats.DeliveryValue = stats.DeliveryValue.Add(r.FeeAmount())
		worked[r.Date] = struct{}{}
	}
	for _, r := range snap.DailyRates {
		if !inMonth(r.Date) {
			continue
		}
		stats.DailyRates++
		stats.DailyRateValue = stats.DailyRateValue.Add(r.RateAmount())
		worked[r.Date] = struct{}{}
	}

	stats.Activities = stats.Deliveries + stats.DailyRates
	stats.TotalValue = stats.DeliveryValue.Add(stats.DailyRateValue)
	stats.WorkedDays = len(worked)
	if !stats.TotalValue.IsZero() && ref.Day > 0 {
		stats.AveragePerDay = stats.TotalValue.Div(decimal.NewFromInt(int64(ref.Day)))
	}
	return stats
}

// AggregateDays returns one entry per worked date within [since, until],
// most recent first. A zero bound leaves that side open.
func AggregateDays(snap model.Snapshot, since, until model.Date) []model.DayEntry {
	var days []model.DayEntry
	for _, d := range snap.DistinctDates() {
		if !since.IsZero() && d.Before(since) {
			continue
		}
		if !until.IsZero() && d.After(until) {
			continue
		}
		days = append(days, Day(snap, d))
	}
	return days
}
