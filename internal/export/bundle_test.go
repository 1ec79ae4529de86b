package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/motolog/internal/ledger"
	"github.com/theirongolddev/motolog/internal/model"
	"github.com/theirongolddev/motolog/internal/report"
	"github.com/theirongolddev/motolog/internal/store"
)

var (
	day     = model.NewDate(2026, 10, 14)
	created = time.Date(2026, 10, 14, 21, 5, 0, 0, time.UTC)
)

func sample() model.Snapshot {
	return model.Snapshot{
		Deliveries: []model.DeliveryRecord{
			{ID: 1760475900000, Date: day, ClientAddress: "Rua A, 10", Fee: 8.5, CreatedAt: created},
			{ID: 1760475900001, Date: day, ClientAddress: "Ajuste Manual - -0.50", Fee: -0.5, CreatedAt: created, IsAdjustment: true},
			{ID: 1760389500000, Date: day.AddDays(-1), ClientAddress: "Rua <B> & C", Fee: 12, CreatedAt: created.Add(-24 * time.Hour)},
		},
		DailyRates: []model.DailyRateRecord{
			{ID: 1760475900000, Date: day, Workplace: "Pizzaria Bella", Rate: 80, Schedule: "18h-23h", CreatedAt: created},
		},
	}
}

func sameDeliveries(t *testing.T, got, want []model.DeliveryRecord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("deliveries len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Date != w.Date || g.ClientAddress != w.ClientAddress ||
			g.Fee != w.Fee || g.IsAdjustment != w.IsAdjustment || !g.CreatedAt.Equal(w.CreatedAt) {
			t.Fatalf("delivery %d = %+v, want %+v", i, g, w)
		}
	}
}

func sameDailyRates(t *testing.T, got, want []model.DailyRateRecord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("daily rates len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Date != w.Date || g.Workplace != w.Workplace ||
			g.Rate != w.Rate || g.Schedule != w.Schedule || !g.CreatedAt.Equal(w.CreatedAt) {
			t.Fatalf("daily rate %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(day); got != "entregas-backup-2026-10-14.json" {
		t.Fatalf("FileName = %q", got)
	}
}

func TestWriteLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, New(model.Snapshot{}, created)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"deliveries": []`, `"dailyRates": []`, `"exportedAt": "2026-10-14T21:05:00Z"`} {
		if !strings.Contains(out, want) {
			t.Errorf("bundle missing %s\n%s", want, out)
		}
	}
}

func TestRoundTripThroughStore(t *testing.T) {
	dir := t.TempDir()
	path, size, err := WriteFile(dir, day, New(sample(), created))
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() != size {
		t.Fatalf("stat %s: size %v vs %d (%v)", path, info, size, err)
	}
	if !strings.Contains(mustRead(t, path), "Rua <B> & C") {
		t.Fatal("bundle escaped HTML characters")
	}

	b, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !b.ExportedAt.Equal(created) {
		t.Fatalf("ExportedAt = %v", b.ExportedAt)
	}

	s := ledger.Open(store.NewMemory(), ledger.Options{})
	s.Replace(b.Snapshot())
	got := s.Snapshot()
	sameDeliveries(t, got.Deliveries, sample().Deliveries)
	sameDailyRates(t, got.DailyRates, sample().DailyRates)

	if report.Format(got, day, report.Options{}) != report.Format(sample(), day, report.Options{}) {
		t.Fatal("report differs after round trip")
	}
}

func TestReadLegacyBackup(t *testing.T) {
	legacy := `{
  "entregas": [
    {"id": 1760475900000, "data": "2026-10-14", "clienteEndereco": "Rua A, 10", "valorTaxa": 8.5, "timestamp": "2026-10-14T21:05:00.000Z"},
    {"id": 1760475960000, "data": "2026-10-14", "clienteEndereco": "Ajuste Manual - +1.50", "valorTaxa": 1.5, "timestamp": "2026-10-14T21:06:00.000Z", "isAjuste": true}
  ],
  "diarias": [
    {"id": 1760475900000, "data": "2026-10-14", "localTrabalho": "Pizzaria Bella", "valorDiaria": 80, "horarioTrabalho": "", "timestamp": "2026-10-14T21:05:00.000Z"}
  ],
  "exportadoEm": "2026-10-14T22:00:00.000Z"
}`
	b, err := Read(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("Read legacy: %v", err)
	}
	if len(b.Deliveries) != 2 || len(b.DailyRates) != 1 {
		t.Fatalf("legacy counts = %d/%d", len(b.Deliveries), len(b.DailyRates))
	}
	adj := b.Deliveries[1]
	if !adj.IsAdjustment || adj.Fee != 1.5 || adj.Date != day {
		t.Fatalf("legacy adjustment = %+v", adj)
	}
	if r := b.DailyRates[0]; r.Workplace != "Pizzaria Bella" || r.Rate != 80 || !r.CreatedAt.Equal(created) {
		t.Fatalf("legacy daily rate = %+v", r)
	}
	if b.ExportedAt.Hour() != 22 {
		t.Fatalf("legacy ExportedAt = %v", b.ExportedAt)
	}
}

func TestReadRejectsUnknownDocuments(t *testing.T) {
	for _, doc := range []string{`[]`, `{"foo": 1}`, `not json`} {
		if _, err := Read(strings.NewReader(doc)); !errors.Is(err, ErrUnrecognized) {
			t.Errorf("Read(%s) err = %v, want ErrUnrecognized", doc, err)
		}
	}
	if _, err := Read(strings.NewReader(`{"deliveries": [{"id": 1, "date": "ontem"}]}`)); err == nil {
		t.Error("bundle with invalid date accepted")
	}
}

func TestReadRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"delivery without date", `{"deliveries": [{"id": 2, "clientAddress": "B", "fee": 3}]}`},
		{"blank address", `{"deliveries": [{"id": 2, "date": "2026-10-14", "clientAddress": "  ", "fee": 3}]}`},
		{"duplicate delivery id", `{"deliveries": [
			{"id": 1, "date": "2026-10-14", "clientAddress": "A", "fee": 3},
			{"id": 1, "date": "2026-10-14", "clientAddress": "B", "fee": 4}]}`},
		{"rate without workplace", `{"dailyRates": [{"id": 5, "date": "2026-10-14", "rate": 80}]}`},
		{"duplicate rate id", `{"dailyRates": [
			{"id": 5, "date": "2026-10-14", "workplace": "X", "rate": 80},
			{"id": 5, "date": "2026-10-15", "workplace": "Y", "rate": 90}]}`},
		{"legacy entrega without date", `{"entregas": [{"id": 3, "clienteEndereco": "Rua A", "valorTaxa": 8}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Read(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("Read err = %v, want ErrInvalidRecord", err)
			}
			if b.Snapshot().Len() != 0 {
				t.Fatalf("rejected bundle returned %d records", b.Snapshot().Len())
			}
		})
	}
}

func TestReadAllowsSameIDAcrossCollections(t *testing.T) {
	doc := `{
		"deliveries": [{"id": 7, "date": "2026-10-14", "clientAddress": "Rua A", "fee": 8}],
		"dailyRates": [{"id": 7, "date": "2026-10-14", "workplace": "Pizzaria", "rate": 80}]
	}`
	b, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if b.Snapshot().Len() != 2 {
		t.Fatalf("records = %d, want 2", b.Snapshot().Len())
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
