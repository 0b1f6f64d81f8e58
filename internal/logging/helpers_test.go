package logging

import (
	"testing"

	"github.com/cristianoliveira/pushtray/internal/config"
)

// reloadConfigForTest re-reads the global configuration so env overrides set
// with t.Setenv take effect.
func reloadConfigForTest(t *testing.T) {
	t.Helper()
	config.Load()
}
