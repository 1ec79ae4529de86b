package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/motolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{80, 3}, {100, 4}, {7, 2}, {10, 1}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) = %v, sums to %d", tc.total, tc.n, widths, sum)
		}
		if widths[0]-widths[len(widths)-1] > 1 {
			t.Errorf("LayoutRow(%d, %d) = %v is uneven", tc.total, tc.n, widths)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowPadsShorterCards(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := ContentCard("Short", "Content", 22)
	tall := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)
	shortLines := lipgloss.Height(short)
	tallLines := lipgloss.Height(tall)
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tall, short}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i, line := range lines {
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("line %d of the padding has no styling: %q", i, line)
		}
		if w := lipgloss.Width(line); w != 44 {
			t.Errorf("line %d width = %d, want 44", i, w)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Deliveries", Value: "12"},
		{Label: "Total", Value: "R$ 236.25", Note: "vs R$ 200.00"},
		{Label: "Rates", Value: "1"},
	}, 90)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestTabBarWidths(t *testing.T) {
	bar := RenderTabBar(0, 80, "")
	if w := lipgloss.Width(bar); w != 80 {
		t.Errorf("tab bar width = %d, want 80", w)
	}
	want := 0
	for i, tab := range Tabs {
		want += TabVisualWidth(tab)
		if i < len(Tabs)-1 {
			want++
		}
	}
	if got := lipgloss.Width(RenderTabBar(1, want, "")); got != want {
		t.Errorf("tight tab bar width = %d, want %d", got, want)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('3'); got != 2 {
		t.Errorf("TabIdxByKey('3') = %d, want 2", got)
	}
	if got := TabIdxByKey('x'); got != -1 {
		t.Errorf("TabIdxByKey('x') = %d, want -1", got)
	}
}
