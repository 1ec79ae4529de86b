package model

import (
	"encoding/json"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestParseDateRoundTrip(t *testing.T) {
	d := mustDate(t, "2026-10-14")
	if d != (Date{Year: 2026, Month: time.October, Day: 14}) {
		t.Fatalf("ParseDate = %+v", d)
	}
	if d.String() != "2026-10-14" {
		t.Fatalf("String() = %q, want 2026-10-14", d.String())
	}

	for _, bad := range []string{"", "2026-13-01", "2026-02-30", "14/10/2026"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("ParseDate(%q) returned nil error", bad)
		}
	}
}

func TestStartOfWeekIsSunday(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2026-10-11", "2026-10-11"}, // Sunday
		{"2026-10-14", "2026-10-11"}, // Wednesday
		{"2026-10-17", "2026-10-11"}, // Saturday
		{"2026-11-01", "2026-11-01"}, // Sunday, month boundary
		{"2027-01-02", "2026-12-27"}, // Saturday, year boundary
	}
	for _, tc := range cases {
		got := mustDate(t, tc.in).StartOfWeek()
		if got.String() != tc.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tc.in, got, tc.want)
		}
		if got.Weekday() != time.Sunday {
			t.Errorf("StartOfWeek(%s) weekday = %s", tc.in, got.Weekday())
		}
	}
}

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		in        string
		last      string
		daysInMon int
	}{
		{"2026-02-10", "2026-02-28", 28},
		{"2028-02-10", "2028-02-29", 29},
		{"2026-12-31", "2026-12-31", 31},
		{"2026-04-01", "2026-04-30", 30},
	}
	for _, tc := range cases {
		d := mustDate(t, tc.in)
		if d.FirstOfMonth().Day != 1 || d.FirstOfMonth().Month != d.Month {
			t.Errorf("FirstOfMonth(%s) = %s", tc.in, d.FirstOfMonth())
		}
		if d.LastOfMonth().String() != tc.last {
			t.Errorf("LastOfMonth(%s) = %s, want %s", tc.in, d.LastOfMonth(), tc.last)
		}
		if d.DaysInMonth() != tc.daysInMon {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tc.in, d.DaysInMonth(), tc.daysInMon)
		}
	}
}

func TestCompareMatchesStringOrder(t *testing.T) {
	dates := []string{"2025-12-31", "2026-01-01", "2026-01-10", "2026-02-01"}
	for i := range dates {
		for j := range dates {
			a, b := mustDate(t, dates[i]), mustDate(t, dates[j])
			want := 0
			if dates[i] < dates[j] {
				want = -1
			} else if dates[i] > dates[j] {
				want = 1
			}
			if got := a.Compare(b); got != want {
				t.Fatalf("Compare(%s, %s) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}
	data, err := json.Marshal(wrapper{Date: NewDate(2026, time.March, 0)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"date":"2026-02-28"}` {
		t.Fatalf("marshal = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"date":"2026-10-14"}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.Date.String() != "2026-10-14" {
		t.Fatalf("unmarshal date = %s", w.Date)
	}
	if err := json.Unmarshal([]byte(`{"date":"2026-10-14T03:00:00Z"}`), &w); err == nil {
		t.Fatal("timestamp accepted as a date")
	}
}

func TestLocaleNames(t *testing.T) {
	d := mustDate(t, "2026-10-14")
	if got := d.LongForm(); got != "quarta-feira, 14 de outubro de 2026" {
		t.Fatalf("LongForm = %q", got)
	}
	if got := d.WeekdayAbbrev(); got != "qua." {
		t.Fatalf("WeekdayAbbrev = %q", got)
	}
	if got := mustDate(t, "2026-03-01").MonthName(); got != "março de 2026" {
		t.Fatalf("MonthName = %q", got)
	}
}

func TestDistinctDatesDescending(t *testing.T) {
	snap := Snapshot{
		Deliveries: []DeliveryRecord{
			{ID: 1, Date: mustDate(t, "2026-10-01")},
			{ID: 2, Date: mustDate(t, "2026-10-03")},
			{ID: 3, Date: mustDate(t, "2026-10-01")},
		},
		DailyRates: []DailyRateRecord{
			{ID: 1, Date: mustDate(t, "2026-10-02")},
			{ID: 2, Date: mustDate(t, "2026-10-03")},
		},
	}
	got := snap.DistinctDates()
	want := []string{"2026-10-03", "2026-10-02", "2026-10-01"}
	if len(got) != len(want) {
		t.Fatalf("DistinctDates len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Fatalf("DistinctDates[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
