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

// NewMarkAllReadCmd creates the mark-all-read command with explicit dependencies.
func NewMarkAllReadCmd(open inboxOpener) *cobra.Command {
	if open == nil {
		panic("NewMarkAllReadCmd: opener dependency cannot be nil")
	}

	markAllReadCmd := &cobra.Command{
		Use:   "mark-all-read",
		Short: "Mark every notification as read",
		Long: `Mark every unread notification as read in one write.

USAGE:
    pushtray mark-all-read

OPTIONS:
    -h, --help           Show this help

When everything is already read this is a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, cleanup, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("mark-all-read: %w", err)
			}
			defer cleanup()

			unread := box.UnreadCount()
			changed, err := box.MarkAllRead(cmd.Context())
			if err != nil {
				return fmt.Errorf("mark-all-read: %w", err)
			}
			if !changed {
				colors.Info("No unread notifications, nothing to do")
				return nil
			}
			if err := runHooks(hooks.EventPostRead, fmt.Sprintf("NOTIFICATION_COUNT=%d", unread)); err != nil {
				return fmt.Errorf("mark-all-read: %w", err)
			}
			colors.Success(fmt.Sprintf("%d notification(s) marked as read", unread))
			return nil
		},
	}

	return markAllReadCmd
}

// markAllReadCmd represents the mark-all-read command
var markAllReadCmd = NewMarkAllReadCmd(defaultOpener)

func init() {
	RootCmd.AddCommand(markAllReadCmd)
}
