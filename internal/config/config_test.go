package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config and state dirs at temp directories so Load does not
// touch the real user config.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("PUSHTRAY_CONFIG_PATH", "")
}

func TestLoadAndGet(t *testing.T) {
	isolate(t)
	Load()

	got := Get("missing", "default")
	require.Equal(t, "default", got)
}

func TestDefaults(t *testing.T) {
	isolate(t)
	Load()

	assert.Equal(t, "file", Get("storage_backend", ""))
	assert.Equal(t, "notifications", Get("storage_key", ""))
	assert.Equal(t, 100, GetInt("max_notifications", 0))
	assert.True(t, GetBool("group_by_date", false))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Equal(t, "warn", Get("hooks_failure_mode", ""))
}

func TestEnvOverrideWins(t *testing.T) {
	isolate(t)
	t.Setenv("PUSHTRAY_MAX_NOTIFICATIONS", "25")
	t.Setenv("PUSHTRAY_STORAGE_BACKEND", "sqlite")
	Load()

	assert.Equal(t, 25, GetInt("max_notifications", 0))
	assert.Equal(t, "sqlite", Get("storage_backend", ""))
}

func TestConfigFileIsLoaded(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "max_notifications = 7\nquiet = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("PUSHTRAY_CONFIG_PATH", path)
	Load()

	assert.Equal(t, 7, GetInt("max_notifications", 0))
	assert.True(t, GetBool("quiet", false))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("PUSHTRAY_MAX_NOTIFICATIONS", "not-a-number")
	t.Setenv("PUSHTRAY_STORAGE_BACKEND", "cassandra")
	t.Setenv("PUSHTRAY_GROUP_BY_DATE", "maybe")
	Load()

	assert.Equal(t, 100, GetInt("max_notifications", 0))
	assert.Equal(t, "file", Get("storage_backend", ""))
	assert.True(t, GetBool("group_by_date", false))
}

func TestBoolNormalization(t *testing.T) {
	isolate(t)
	t.Setenv("PUSHTRAY_QUIET", "yes")
	t.Setenv("PUSHTRAY_DEBUG", "off")
	Load()

	assert.Equal(t, "true", Get("quiet", ""))
	assert.Equal(t, "false", Get("debug", ""))
}

func TestSampleConfigIsCreated(t *testing.T) {
	isolate(t)
	Load()

	sample := filepath.Join(Get("config_dir", ""), "config.toml")
	_, err := os.Stat(sample)
	require.NoError(t, err)
}

func TestGetIntAndGetBoolFallbacks(t *testing.T) {
	isolate(t)
	Load()

	assert.Equal(t, 42, GetInt("not_there", 42))
	assert.True(t, GetBool("not_there", true))
	assert.Equal(t, 9, GetInt("date_format", 9)) // non-numeric value
}
