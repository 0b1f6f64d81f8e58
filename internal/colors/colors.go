// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	quietEnabled = false
	logger       Logger
	mu           sync.RWMutex

	// Swappable for tests.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("PUSHTRAY_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetQuiet suppresses informational stdout output when enabled.
// Errors and warnings are always printed.
func SetQuiet(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	quietEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetWriters overrides the output writers. Returns a restore function.
func SetWriters(out, err io.Writer) func() {
	mu.Lock()
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, err
	mu.Unlock()
	return func() {
		mu.Lock()
		stdout, stderr = prevOut, prevErr
		mu.Unlock()
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mu.RLock()
	l, w := logger, stderr
	mu.RUnlock()
	if l != nil {
		l.Error(msg)
	}
	fmt.Fprintf(w, "%sError:%s %s%s\n", Red, Reset, msg, Reset)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mu.RLock()
	l, w := logger, stderr
	mu.RUnlock()
	if l != nil {
		l.Warn(msg)
	}
	fmt.Fprintf(w, "%sWarning:%s %s%s\n", Yellow, Reset, msg, Reset)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mu.RLock()
	l, w, quiet := logger, stdout, quietEnabled
	mu.RUnlock()
	if l != nil {
		l.Info(msg, "type", "success")
	}
	if quiet {
		return
	}
	fmt.Fprintf(w, "%s%s%s %s%s\n", Green, checkmark, Reset, msg, Reset)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mu.RLock()
	l, w, quiet := logger, stdout, quietEnabled
	mu.RUnlock()
	if l != nil {
		l.Info(msg)
	}
	if quiet {
		return
	}
	fmt.Fprintf(w, "%s%s%s\n", Blue, msg, Reset)
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	mu.RLock()
	enabled := debugEnabled
	l, w := logger, stderr
	mu.RUnlock()
	if !enabled {
		return
	}
	msg := strings.Join(msgs, " ")
	if l != nil {
		l.Debug(msg)
	}
	fmt.Fprintf(w, "%sDebug:%s %s%s\n", Cyan, Reset, msg, Reset)
}
