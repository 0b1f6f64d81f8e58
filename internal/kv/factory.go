package kv

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/config"
)

const (
	// BackendFile selects one-file-per-key storage.
	BackendFile = "file"
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"

	sqliteDBFileName = "pushtray.db"
)

var _ Store = (*FileStore)(nil)
var _ Store = (*SQLiteStore)(nil)

// NewFromConfig creates a storage backend based on configuration.
func NewFromConfig() (Store, error) {
	config.Load()
	backend := config.Get("storage_backend", BackendFile)
	return NewForBackend(backend)
}

// NewForBackend creates a storage backend for the provided backend name.
// Unknown names and sqlite initialization failures fall back to file storage
// with a warning; losing the preferred backend is not worth losing the inbox.
func NewForBackend(backend string) (Store, error) {
	stateDir := config.Get("state_dir", "")
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileStore(stateDir)
	case BackendSQLite:
		dbPath := filepath.Join(stateDir, sqliteDBFileName)
		store, err := NewSQLiteStore(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to file: %v", err))
			return NewFileStore(stateDir)
		}
		return store, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to file", backend))
		return NewFileStore(stateDir)
	}
}
