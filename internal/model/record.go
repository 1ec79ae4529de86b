// Package model defines the domain types for motolog: calendar dates,
// delivery and daily-rate records, and the summaries derived from them.
package model

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryRecord is one completed delivery and its fee. Adjustment records
// created by reconciliation are deliveries too, flagged with IsAdjustment.
type DeliveryRecord struct {
	ID            int64     `json:"id"`
	Date          Date      `json:"date"`
	ClientAddress string    `json:"clientAddress"`
	Fee           float64   `json:"fee"`
	CreatedAt     time.Time `json:"createdAt"`
	IsAdjustment  bool      `json:"isAdjustment,omitempty"`
}

// FeeAmount returns the fee as an exact decimal.
func (r DeliveryRecord) FeeAmount() decimal.Decimal {
	return decimal.NewFromFloat(r.Fee)
}

// DailyRateRecord is one flat-rate engagement for a day.
type DailyRateRecord struct {
	ID        int64     `json:"id"`
	Date      Date      `json:"date"`
	Workplace string    `json:"workplace"`
	Rate      float64   `json:"rate"`
	Schedule  string    `json:"schedule"`
	CreatedAt time.Time `json:"createdAt"`
}

// RateAmount returns the rate as an exact decimal.
func (r DailyRateRecord) RateAmount() decimal.Decimal {
	return decimal.NewFromFloat(r.Rate)
}

// Snapshot holds both record collections, each in insertion order.
type Snapshot struct {
	Deliveries []DeliveryRecord
	DailyRates []DailyRateRecord
}

// Len returns the total number of records.
func (s Snapshot) Len() int {
	return len(s.Deliveries) + len(s.DailyRates)
}

// DeliveriesOn returns the deliveries dated d, in insertion order.
func (s Snapshot) DeliveriesOn(d Date) []DeliveryRecord {
	var out []DeliveryRecord
	for _, r := range s.Deliveries {
		if r.Date == d {
			out = append(out, r)
		}
	}
	return out
}

// DailyRatesOn returns the daily rates dated d, in insertion order.
func (s Snapshot) DailyRatesOn(d Date) []DailyRateRecord {
	var out []DailyRateRecord
	for _, r := range s.DailyRates {
		if r.Date == d {
			out = append(out, r)
		}
	}
	return out
}

// DistinctDates returns every date that has at least one record, most
// recent first.
func (s Snapshot) DistinctDates() []Date {
	seen := make(map[Date]struct{})
	for _, r := range s.Deliveries {
		seen[r.Date] = struct{}{}
	}
	for _, r := range s.DailyRates {
		seen[r.Date] = struct{}{}
	}

	dates := make([]Date, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})
	return dates
}
