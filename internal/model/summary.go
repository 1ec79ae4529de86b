package model

import "github.com/shopspring/decimal"

// DayEntry holds the totals for a single calendar day.
type DayEntry struct {
	Date            Date
	Weekday         string // pt-BR abbreviation, e.g. "seg."
	Deliveries      int
	DailyRates      int
	TotalDeliveries decimal.Decimal
	TotalDailyRates decimal.Decimal
	GrandTotal      decimal.Decimal
}

// Worked reports whether the day has at least one record.
func (e DayEntry) Worked() bool {
	return e.Deliveries > 0 || e.DailyRates > 0
}

// WeekTotals sums the seven entries of a weekly breakdown.
type WeekTotals struct {
	Start           Date
	End             Date
	Deliveries      int
	DailyRates      int
	TotalDeliveries decimal.Decimal
	TotalDailyRates decimal.Decimal
	GrandTotal      decimal.Decimal
	WorkedDays      int
}

// MonthStats holds the statistics for one calendar month up to a reference day.
type MonthStats struct {
	Month          Date // first day of the month
	Reference      Date
	Deliveries     int
	DailyRates     int
	Activities     int
	DeliveryValue  decimal.Decimal
	DailyRateValue decimal.Decimal
	TotalValue     decimal.Decimal
	AveragePerDay  decimal.Decimal // TotalValue over elapsed calendar days, not worked days
	WorkedDays     int
}
