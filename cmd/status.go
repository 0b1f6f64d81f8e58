/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pushtray/internal/config"
	"github.com/cristianoliveira/pushtray/internal/formatter"
)

const statusCommandLong = `Show a notification status summary with template-based formatting.

USAGE:
    pushtray status [OPTIONS]

OPTIONS:
    --format=<format>    Output format: preset name or custom template (default: compact)
    --preset=<name>      Use a named preset explicitly (errors on unknown names)

PRESETS (4):
    compact      [{{unread-count}}] {{latest-title}}
    detailed     {{unread-count}} unread, {{read-count}} read | Latest: {{latest-title}}
    count-only   {{unread-count}}
    json         {"unread":{{unread-count}},"total":{{total-count}},"title":"{{latest-title}}"}

VARIABLES (7):
    {{unread-count}}   Number of unread notifications
    {{total-count}}    Number of stored notifications
    {{read-count}}     Number of read notifications
    {{has-unread}}     true/false if anything is unread
    {{latest-id}}      ID of the most recent notification
    {{latest-title}}   Title of the most recent notification
    {{latest-body}}    Body of the most recent notification

EXAMPLES:
    pushtray status                    # compact: [2] Order shipped
    pushtray status --format=detailed
    pushtray status --format='{{unread-count}} new messages'

The PUSHTRAY_STATUS_FORMAT environment variable and the status_format
config key supply the format when the flag is not given.`

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(open inboxOpener) *cobra.Command {
	if open == nil {
		panic("NewStatusCmd: opener dependency cannot be nil")
	}

	var formatFlag string
	var presetFlag string

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show notification status summary",
		Long:  statusCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := determineStatusFormat(cmd, formatFlag)
			if presetFlag != "" {
				preset, err := formatter.NewPresetRegistry().Get(presetFlag)
				if err != nil {
					return fmt.Errorf("status: %w", err)
				}
				format = preset.Template
			}

			box, cleanup, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}
			defer cleanup()

			ctx := formatter.ContextFromNotifications(box.Notifications())
			return printStatus(ctx, format, cmd.OutOrStdout())
		},
	}

	statusCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: preset name or custom template")
	statusCmd.Flags().StringVar(&presetFlag, "preset", "", "Use a named preset explicitly")
	return statusCmd
}

// determineStatusFormat determines the output format, preferring flag over
// env over config.
func determineStatusFormat(cmd *cobra.Command, formatFlag string) string {
	format := formatFlag
	if !cmd.Flag("format").Changed {
		if envFormat := os.Getenv("PUSHTRAY_STATUS_FORMAT"); envFormat != "" {
			format = envFormat
		} else {
			format = config.Get("status_format", "compact")
		}
	}
	if format == "" {
		format = "compact"
	}
	return format
}

// printStatus resolves the format as a preset name or custom template and
// writes the rendered line.
func printStatus(ctx formatter.VariableContext, format string, w io.Writer) error {
	template := format
	registry := formatter.NewPresetRegistry()
	if preset, err := registry.Get(format); err == nil {
		template = preset.Template
	}

	engine := formatter.NewTemplateEngine()
	result, err := engine.Substitute(template, ctx)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	_, err = fmt.Fprintln(w, result)
	return err
}

// statusCmd represents the status command
var statusCmd = NewStatusCmd(defaultOpener)

func init() {
	RootCmd.AddCommand(statusCmd)
}
