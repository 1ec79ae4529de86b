// Package store provides the persistence backends that hold each record
// collection as one whole JSON document under a key.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Backend is a key/value store of whole-collection blobs.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Backend kinds accepted by Open.
const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// DBFileName is the SQLite database file inside the data directory.
const DBFileName = "motolog.db"

// Open returns the backend of the given kind rooted at dataDir.
func Open(kind, dataDir string) (Backend, error) {
	switch kind {
	case KindJSON, "":
		return NewFileBackend(dataDir), nil
	case KindSQLite:
		return OpenSQLite(filepath.Join(dataDir, DBFileName))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
