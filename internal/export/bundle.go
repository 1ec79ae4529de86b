// Package export writes and reads backup bundles of both record
// collections.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/motolog/internal/model"
)

// ErrUnrecognized is returned by Read when the document is neither a bundle
// nor a legacy backup.
var ErrUnrecognized = errors.New("not a motolog backup")

// ErrInvalidRecord is returned by Read when a record lacks a date or a
// label, or repeats an id of its collection.
var ErrInvalidRecord = errors.New("invalid record in backup")

// Bundle is the exported snapshot.
type Bundle struct {
	Deliveries []model.DeliveryRecord  `json:"deliveries"`
	DailyRates []model.DailyRateRecord `json:"dailyRates"`
	ExportedAt time.Time               `json:"exportedAt"`
}

// New bundles snap, stamped at.
func New(snap model.Snapshot, at time.Time) Bundle {
	b := Bundle{
		Deliveries: snap.Deliveries,
		DailyRates: snap.DailyRates,
		ExportedAt: at.UTC(),
	}
	if b.Deliveries == nil {
		b.Deliveries = []model.DeliveryRecord{}
	}
	if b.DailyRates == nil {
		b.DailyRates = []model.DailyRateRecord{}
	}
	return b
}

// Snapshot returns the bundle's records.
func (b Bundle) Snapshot() model.Snapshot {
	return model.Snapshot{Deliveries: b.Deliveries, DailyRates: b.DailyRates}
}

// FileName returns the backup file name for day.
func FileName(day model.Date) string {
	return "entregas-backup-" + day.String() + ".json"
}

// Write encodes b as indented JSON.
func Write(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}
	return nil
}

// WriteFile writes b into dir under FileName(day) and returns the path
// and the number of bytes written.
func WriteFile(dir string, day model.Date, b Bundle) (string, int64, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", 0, fmt.Errorf("creating export dir: %w", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, b); err != nil {
		return "", 0, err
	}
	path := filepath.Join(dir, FileName(day))
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return path, int64(buf.Len()), nil
}

// Read decodes a bundle. It also accepts backups made by the original web
// app, whose keys are in Portuguese.
func Read(r io.Reader) (Bundle, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Bundle{}, fmt.Errorf("reading bundle: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Bundle{}, fmt.Errorf("%w: %w", ErrUnrecognized, err)
	}

	_, hasDeliveries := probe["deliveries"]
	_, hasRates := probe["dailyRates"]
	if hasDeliveries || hasRates {
		var b Bundle
		if err := json.Unmarshal(raw, &b); err != nil {
			return Bundle{}, fmt.Errorf("decoding bundle: %w", err)
		}
		if err := b.validate(); err != nil {
			return Bundle{}, err
		}
		return b, nil
	}

	_, hasEntregas := probe["entregas"]
	_, hasDiarias := probe["diarias"]
	if hasEntregas || hasDiarias {
		b, err := readLegacy(raw)
		if err != nil {
			return Bundle{}, err
		}
		if err := b.validate(); err != nil {
			return Bundle{}, err
		}
		return b, nil
	}
	return Bundle{}, ErrUnrecognized
}

// validate checks every record the way the ledger would have written it.
func (b Bundle) validate() error {
	seen := make(map[int64]struct{}, len(b.Deliveries))
	for i, r := range b.Deliveries {
		if err := checkRecord(seen, r.ID, r.Date, r.ClientAddress); err != nil {
			return fmt.Errorf("delivery %d: %w", i+1, err)
		}
	}
	seen = make(map[int64]struct{}, len(b.DailyRates))
	for i, r := range b.DailyRates {
		if err := checkRecord(seen, r.ID, r.Date, r.Workplace); err != nil {
			return fmt.Errorf("daily rate %d: %w", i+1, err)
		}
	}
	return nil
}

func checkRecord(seen map[int64]struct{}, id int64, d model.Date, label string) error {
	switch {
	case d.IsZero():
		return fmt.Errorf("%w: id %d has no date", ErrInvalidRecord, id)
	case strings.TrimSpace(label) == "":
		return fmt.Errorf("%w: id %d has an empty label", ErrInvalidRecord, id)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: id %d appears twice", ErrInvalidRecord, id)
	}
	seen[id] = struct{}{}
	return nil
}

// ReadFile reads the bundle at path.
func ReadFile(path string) (Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}
