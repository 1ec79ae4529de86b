package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTableAlignsUnicodeCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Address", "Fee"},
		Rows: [][]string{
			{"Praça da Sé", "R$ 8.50"},
			{"Rua A", "R$ 12.00"},
			SeparatorRow,
			{"Total", "R$ 20.50"},
		},
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("table has %d lines, want 8\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, l := range lines {
		if w := lipgloss.Width(l); w != want {
			t.Fatalf("line %d width %d, want %d\n%s", i, w, want, out)
		}
	}
	if !strings.Contains(out, "│ Rua A       │ ") || !strings.Contains(out, "  R$ 8.50 │") {
		t.Fatalf("cells not aligned\n%s", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if RenderTable(Table{}) != "" {
		t.Fatal("empty table rendered output")
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 50, 100, -10}); got != "▁▄█▁" {
		t.Fatalf("sparkline = %q", got)
	}
	if got := RenderSparkline([]float64{0, 0}); got != "▁▁" {
		t.Fatalf("flat sparkline = %q", got)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	if got := RenderHorizontalBar(50, 100, 10); got != strings.Repeat("█", 5) {
		t.Fatalf("half bar = %q", got)
	}
	if got := RenderHorizontalBar(0, 100, 10); got != "" {
		t.Fatalf("zero bar = %q", got)
	}
	if got := RenderHorizontalBar(1, 100, 10); got != "▏" {
		t.Fatalf("tiny bar = %q", got)
	}
}

func TestRenderProgressBar(t *testing.T) {
	got := RenderProgressBar(3, 12, 4)
	if got != "[█░░░] 3/12" {
		t.Fatalf("progress = %q", got)
	}
}
