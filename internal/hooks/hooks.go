// Package hooks runs user-provided scripts after inbox mutations.
//
// Hooks live in per-event subdirectories of the hooks directory
// (e.g. hooks/post-add/10-notify.sh) and run synchronously in name order
// with NOTIFICATION_* environment variables describing the affected record.
package hooks

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/config"
)

// Hook events fired by the CLI after successful mutations.
const (
	EventPostAdd    = "post-add"
	EventPostRead   = "post-read"
	EventPostRemove = "post-remove"
	EventPostClear  = "post-clear"
)

// Init ensures the hooks directory exists.
func Init() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create hooks directory %s: %w", dir, err)
	}
	return nil
}

// Dir returns the hooks directory path.
func Dir() string {
	if dir := config.Get("hooks_dir", ""); dir != "" {
		return dir
	}
	if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
		return filepath.Join(configDir, "pushtray", "hooks")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pushtray", "hooks")
}

// failureMode returns the configured failure mode (abort, warn, ignore).
func failureMode() string {
	return config.Get("hooks_failure_mode", "warn")
}

// Run executes all hook scripts for an event with the provided KEY=VALUE
// environment variables. Hooks that are disabled by configuration, or whose
// event directory does not exist, are silent no-ops. The returned error is
// non-nil only in abort mode.
func Run(event string, envVars ...string) error {
	if !config.GetBool("hooks_enabled", true) {
		return nil
	}
	eventDir := filepath.Join(Dir(), event)
	files, err := os.ReadDir(eventDir)
	if err != nil {
		// Directory doesn't exist -> no hooks
		return nil
	}

	envMap := make(map[string]string)
	envMap["HOOK_EVENT"] = event
	envMap["HOOK_TIMESTAMP"] = time.Now().Format(time.RFC3339)
	for _, v := range envVars {
		parts := strings.SplitN(v, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}

	type scriptInfo struct {
		path string
		name string
	}
	scripts := []scriptInfo{}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		scriptPath := filepath.Join(eventDir, f.Name())
		info, err := os.Stat(scriptPath)
		if err != nil || info.Mode()&0111 == 0 {
			// Not executable
			continue
		}
		scripts = append(scripts, scriptInfo{path: scriptPath, name: f.Name()})
	}
	sort.Slice(scripts, func(i, j int) bool { return scripts[i].name < scripts[j].name })

	mode := failureMode()
	for _, script := range scripts {
		if err := runScript(script.path, script.name, envMap, mode); err != nil {
			return err
		}
	}
	return nil
}

// runScript executes a single hook script synchronously.
func runScript(scriptPath, scriptName string, envMap map[string]string, mode string) error {
	start := time.Now()
	cmd := exec.Command(scriptPath)
	cmd.Env = os.Environ()
	for k, v := range envMap {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	output, err := cmd.CombinedOutput()
	duration := time.Since(start)
	if len(output) > 0 {
		os.Stderr.Write(output)
	}
	if err != nil {
		switch mode {
		case "abort":
			return fmt.Errorf("hook %s failed: %v, output: %s", scriptName, err, output)
		case "warn":
			colors.Warning(fmt.Sprintf("hook %s failed: %v", scriptName, err))
		case "ignore":
			// do nothing
		}
		return nil
	}
	colors.Debug(fmt.Sprintf("hook %s completed in %.2fs", scriptName, duration.Seconds()))
	return nil
}
