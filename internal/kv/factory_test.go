package kv

import (
	"context"
	"testing"

	"github.com/cristianoliveira/pushtray/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFactoryEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PUSHTRAY_STATE_DIR", t.TempDir())
	config.Load()
}

func TestNewForBackendFile(t *testing.T) {
	setupFactoryEnv(t)

	store, err := NewForBackend("file")
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*FileStore)
	assert.True(t, ok)
}

func TestNewForBackendEmptyDefaultsToFile(t *testing.T) {
	setupFactoryEnv(t)

	store, err := NewForBackend("")
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*FileStore)
	assert.True(t, ok)
}

func TestNewForBackendSQLite(t *testing.T) {
	setupFactoryEnv(t)

	store, err := NewForBackend("sqlite")
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*SQLiteStore)
	assert.True(t, ok)
}

func TestNewForBackendUnknownFallsBackToFile(t *testing.T) {
	setupFactoryEnv(t)

	store, err := NewForBackend("cassandra")
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*FileStore)
	assert.True(t, ok)
}

func TestNewFromConfigUsesConfiguredBackend(t *testing.T) {
	setupFactoryEnv(t)
	t.Setenv("PUSHTRAY_STORAGE_BACKEND", "sqlite")

	store, err := NewFromConfig()
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*SQLiteStore)
	assert.True(t, ok)

	// A value written through one backend handle is visible to a fresh one.
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	second, err := NewFromConfig()
	require.NoError(t, err)
	defer second.Close()
	got, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}
