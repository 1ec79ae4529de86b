package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()

	if _, err := b.Get("entregas-motoboy"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty backend: err = %v, want ErrNotFound", err)
	}

	if err := b.Set("entregas-motoboy", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Set("entregas-motoboy", []byte(`[{"id":2}]`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, err := b.Get("entregas-motoboy")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[{"id":2}]` {
		t.Fatalf("Get = %s, want overwritten value", got)
	}

	if _, err := b.Get("diarias-motoboy"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("keys are not independent: err = %v", err)
	}
}

func TestMemoryBackend(t *testing.T) {
	exerciseBackend(t, NewMemory())
}

func TestFileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b := NewFileBackend(dir)
	exerciseBackend(t, b)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "entregas-motoboy.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("data dir contains %v, want only entregas-motoboy.json", names)
	}
}

func TestSQLiteBackend(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), DBFileName)
	b, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	exerciseBackend(t, b)

	at, err := b.UpdatedAt("entregas-motoboy")
	if err != nil || at.IsZero() {
		t.Fatalf("UpdatedAt = %v, %v; want a timestamp", at, err)
	}
	if at, err := b.UpdatedAt("never-written"); err != nil || !at.IsZero() {
		t.Fatalf("UpdatedAt(never-written) = %v, %v; want zero time", at, err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening runs migrations again and must keep the data.
	b, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = b.Close() }()
	got, err := b.Get("entregas-motoboy")
	if err != nil || string(got) != `[{"id":2}]` {
		t.Fatalf("after reopen Get = %s, %v", got, err)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open("postgres", t.TempDir()); err == nil {
		t.Fatal("Open accepted an unknown backend kind")
	}
	b, err := Open(KindJSON, t.TempDir())
	if err != nil {
		t.Fatalf("Open json: %v", err)
	}
	if _, ok := b.(*FileBackend); !ok {
		t.Fatalf("Open json returned %T", b)
	}
}
