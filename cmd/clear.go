/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/hooks"
)

// NewClearCmd creates the clear command with explicit dependencies.
func NewClearCmd(open inboxOpener) *cobra.Command {
	if open == nil {
		panic("NewClearCmd: opener dependency cannot be nil")
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all notifications",
		Long: `Clear all notifications and erase the persisted inbox.

USAGE:
    pushtray clear

OPTIONS:
    -h, --help           Show this help`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, cleanup, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			defer cleanup()

			count := box.Len()
			if err := box.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			if err := runHooks(hooks.EventPostClear, fmt.Sprintf("NOTIFICATION_COUNT=%d", count)); err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			colors.Success(fmt.Sprintf("Cleared %d notification(s)", count))
			return nil
		},
	}

	return clearCmd
}

// clearCmd represents the clear command
var clearCmd = NewClearCmd(defaultOpener)

func init() {
	RootCmd.AddCommand(clearCmd)
}
