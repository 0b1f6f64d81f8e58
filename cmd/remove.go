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

// NewRemoveCmd creates the remove command with explicit dependencies.
func NewRemoveCmd(open inboxOpener) *cobra.Command {
	if open == nil {
		panic("NewRemoveCmd: opener dependency cannot be nil")
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a notification from the inbox",
		Long: `Remove a notification from the inbox by ID.

USAGE:
    pushtray remove <id>

OPTIONS:
    -h, --help           Show this help

Unknown IDs are no-ops.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			box, cleanup, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("remove: %w", err)
			}
			defer cleanup()

			// Capture the record before removal for hook environment vars.
			removed, found := box.Get(id)

			changed, err := box.Remove(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("remove: %w", err)
			}
			if !changed {
				colors.Info(fmt.Sprintf("Notification %s not found, nothing to do", id))
				return nil
			}
			if found {
				if err := runHooks(hooks.EventPostRemove, notificationEnv(removed)...); err != nil {
					return fmt.Errorf("remove: %w", err)
				}
			}
			colors.Success(fmt.Sprintf("Notification %s removed", id))
			return nil
		},
	}

	return removeCmd
}

// removeCmd represents the remove command
var removeCmd = NewRemoveCmd(defaultOpener)

func init() {
	RootCmd.AddCommand(removeCmd)
}
