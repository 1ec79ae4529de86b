package pipeline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/motolog/internal/model"
)

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("%s = %s, want %s", label, got.String(), want)
	}
}

func sampleSnapshot(t *testing.T) model.Snapshot {
	t.Helper()
	return model.Snapshot{
		Deliveries: []model.DeliveryRecord{
			{ID: 1, Date: mustDate(t, "2026-10-12"), ClientAddress: "Rua A, 10", Fee: 8.5},
			{ID: 2, Date: mustDate(t, "2026-10-12"), ClientAddress: "Rua B, 22", Fee: 12},
			{ID: 3, Date: mustDate(t, "2026-10-14"), ClientAddress: "Av. Paulista, 900", Fee: 15.75},
			{ID: 4, Date: mustDate(t, "2026-09-30"), ClientAddress: "Rua C, 3", Fee: 9},
		},
		DailyRates: []model.DailyRateRecord{
			{ID: 1, Date: mustDate(t, "2026-10-12"), Workplace: "Pizzaria Bella", Rate: 80, Schedule: "18h-23h"},
			{ID: 2, Date: mustDate(t, "2026-10-17"), Workplace: "Mercado Sol", Rate: 120},
		},
	}
}

func TestDayTotals(t *testing.T) {
	snap := sampleSnapshot(t)
	d := mustDate(t, "2026-10-12")

	assertAmount(t, "TotalDeliveries", TotalDeliveries(snap, d), "20.5")
	assertAmount(t, "TotalDailyRates", TotalDailyRates(snap, d), "80")
	assertAmount(t, "GrandTotal", GrandTotal(snap, d), "100.5")

	empty := mustDate(t, "2026-10-13")
	assertAmount(t, "empty day GrandTotal", GrandTotal(snap, empty), "0")

	entry := Day(snap, d)
	if entry.Deliveries != 2 || entry.DailyRates != 1 {
		t.Fatalf("Day counts = %d/%d, want 2/1", entry.Deliveries, entry.DailyRates)
	}
	if entry.Weekday != "seg." {
		t.Fatalf("Day weekday = %q, want seg.", entry.Weekday)
	}
}

func TestGrandTotalIsSumOfParts(t *testing.T) {
	snap := sampleSnapshot(t)
	for _, d := range snap.DistinctDates() {
		sum := TotalDeliveries(snap, d).Add(TotalDailyRates(snap, d))
		if !GrandTotal(snap, d).Equal(sum) {
			t.Fatalf("GrandTotal(%s) != deliveries + rates", d)
		}
	}
}

func TestSumsDoNotDrift(t *testing.T) {
	d := mustDate(t, "2026-10-01")
	var snap model.Snapshot
	for i := 0; i < 300; i++ {
		snap.Deliveries = append(snap.Deliveries, model.DeliveryRecord{ID: int64(i + 1), Date: d, Fee: 0.1})
	}
	assertAmount(t, "300 x 0.10", TotalDeliveries(snap, d), "30")
}

func TestWeeklyBreakdownAlwaysSundayToSaturday(t *testing.T) {
	snap := sampleSnapshot(t)
	for _, ref := range []string{"2026-10-11", "2026-10-12", "2026-10-14", "2026-10-17"} {
		days := WeeklyBreakdown(snap, mustDate(t, ref))
		if len(days) != 7 {
			t.Fatalf("WeeklyBreakdown(%s) len = %d, want 7", ref, len(days))
		}
		if days[0].Date.String() != "2026-10-11" || days[6].Date.String() != "2026-10-17" {
			t.Fatalf("WeeklyBreakdown(%s) spans %s..%s", ref, days[0].Date, days[6].Date)
		}
		for i, day := range days {
			if day.Date.Weekday() != time.Weekday(i) {
				t.Fatalf("entry %d is a %s", i, day.Date.Weekday())
			}
		}
	}

	days := WeeklyBreakdown(snap, mustDate(t, "2026-10-14"))
	assertAmount(t, "monday", days[1].GrandTotal, "100.5")
	assertAmount(t, "wednesday", days[3].GrandTotal, "15.75")
	assertAmount(t, "saturday", days[6].TotalDailyRates, "120")

	totals := SumWeek(days)
	assertAmount(t, "week total", totals.GrandTotal, "236.25")
	if totals.WorkedDays != 3 || totals.Deliveries != 3 || totals.DailyRates != 2 {
		t.Fatalf("week totals = %+v", totals)
	}
}

func TestMonthlyStatistics(t *testing.T) {
	snap := sampleSnapshot(t)
	stats := MonthlyStatistics(snap, mustDate(t, "2026-10-14"))

	if stats.Deliveries != 3 || stats.DailyRates != 2 || stats.Activities != 5 {
		t.Fatalf("counts = %d/%d/%d", stats.Deliveries, stats.DailyRates, stats.Activities)
	}
	assertAmount(t, "DeliveryValue", stats.DeliveryValue, "36.25")
	assertAmount(t, "DailyRateValue", stats.DailyRateValue, "200")
	assertAmount(t, "TotalValue", stats.TotalValue, "236.25")
	if got := stats.AveragePerDay.StringFixed(2); got != "16.88" {
		t.Fatalf("AveragePerDay = %s, want 16.88 (236.25 / 14)", got)
	}
	if stats.WorkedDays != 3 {
		t.Fatalf("WorkedDays = %d, want 3", stats.WorkedDays)
	}
	if stats.WorkedDays > stats.Activities || stats.WorkedDays > stats.Month.DaysInMonth() {
		t.Fatalf("WorkedDays %d exceeds activities or days in month", stats.WorkedDays)
	}
}

func TestMonthlyStatisticsEmptyMonth(t *testing.T) {
	snap := sampleSnapshot(t)
	stats := MonthlyStatistics(snap, mustDate(t, "2026-11-20"))

	if stats.Activities != 0 || stats.WorkedDays != 0 {
		t.Fatalf("empty month counts = %+v", stats)
	}
	assertAmount(t, "TotalValue", stats.TotalValue, "0")
	assertAmount(t, "AveragePerDay", stats.AveragePerDay, "0")
}

func TestAggregateDaysRange(t *testing.T) {
	snap := sampleSnapshot(t)

	all := AggregateDays(snap, model.Date{}, model.Date{})
	if len(all) != 4 {
		t.Fatalf("AggregateDays unbounded len = %d, want 4", len(all))
	}
	if all[0].Date.String() != "2026-10-17" || all[3].Date.String() != "2026-09-30" {
		t.Fatalf("AggregateDays not most-recent-first: %s .. %s", all[0].Date, all[3].Date)
	}

	oct := AggregateDays(snap, mustDate(t, "2026-10-01"), mustDate(t, "2026-10-14"))
	if len(oct) != 2 {
		t.Fatalf("AggregateDays 1..14 Oct len = %d, want 2", len(oct))
	}
	for _, d := range oct {
		if !d.Worked() {
			t.Fatalf("AggregateDays returned an unworked day %s", d.Date)
		}
	}
}
