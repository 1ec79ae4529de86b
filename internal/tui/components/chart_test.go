package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSparklineScalesToPeak(t *testing.T) {
	got := strings.TrimSpace(stripANSI(Sparkline([]float64{0, 50, 100}, lipgloss.Color("2"))))
	if got != "▁▄█" {
		t.Errorf("Sparkline = %q, want ▁▄█", got)
	}
	if Sparkline(nil, lipgloss.Color("2")) != "" {
		t.Error("empty sparkline should render nothing")
	}
}

func TestBarChartDimensions(t *testing.T) {
	values := []float64{10, 0, 35, 20, 0, 80, 5}
	labels := []string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."}
	out := BarChart(values, labels, lipgloss.Color("4"), 5, 42, 6)

	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 42 {
			t.Errorf("line %d width = %d, want 42", i, w)
		}
	}
	if !strings.Contains(stripANSI(lines[5]), "sáb.") {
		t.Errorf("label row %q is missing sáb.", stripANSI(lines[5]))
	}
	// The peak reaches the top row; an empty day never does.
	top := []rune(stripANSI(lines[0]))
	if top[5*6] != '█' {
		t.Errorf("peak column top = %q, want █", top[5*6])
	}
	if top[1*6] != ' ' {
		t.Errorf("empty column top = %q, want blank", top[1*6])
	}
}

func TestBarChartFallsBackToSparkline(t *testing.T) {
	out := BarChart([]float64{1, 2, 3}, nil, lipgloss.Color("4"), -1, 4, 6)
	if strings.Contains(out, "\n") {
		t.Errorf("narrow chart should fall back to a single-line sparkline, got %q", out)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
