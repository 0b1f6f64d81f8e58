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

// NewMarkReadCmd creates the mark-read command with explicit dependencies.
func NewMarkReadCmd(open inboxOpener) *cobra.Command {
	if open == nil {
		panic("NewMarkReadCmd: opener dependency cannot be nil")
	}

	markReadCmd := &cobra.Command{
		Use:   "mark-read <id>",
		Short: "Mark a notification as read",
		Long: `Mark a notification as read by ID.

USAGE:
    pushtray mark-read <id>

OPTIONS:
    -h, --help           Show this help

Unknown IDs and already-read notifications are no-ops.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			box, cleanup, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("mark-read: %w", err)
			}
			defer cleanup()

			changed, err := box.MarkRead(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("mark-read: %w", err)
			}
			if !changed {
				colors.Info(fmt.Sprintf("Notification %s is unknown or already read, nothing to do", id))
				return nil
			}
			if n, ok := box.Get(id); ok {
				if err := runHooks(hooks.EventPostRead, notificationEnv(n)...); err != nil {
					return fmt.Errorf("mark-read: %w", err)
				}
			}
			colors.Success(fmt.Sprintf("Notification %s marked as read", id))
			return nil
		},
	}

	return markReadCmd
}

// markReadCmd represents the mark-read command
var markReadCmd = NewMarkReadCmd(defaultOpener)

func init() {
	RootCmd.AddCommand(markReadCmd)
}
