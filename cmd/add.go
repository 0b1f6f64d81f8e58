/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/hooks"
	"github.com/cristianoliveira/pushtray/internal/inbox"
)

const addCommandLong = `Add a notification to the inbox.

USAGE:
    pushtray add [OPTIONS] <title> [body]

OPTIONS:
    --id <id>               Notification ID (generated when omitted)
    --data <key=value>      Attach a data payload entry (repeatable)
    --image-url <url>       Image URL
    --click-action <action> Click action
    --channel-id <id>       Android channel ID
    --tag <tag>             Notification tag
    --color <color>         Notification color
    -h, --help              Show this help

Adding a notification whose ID is already in the inbox is a no-op.`

// newIDFunc generates IDs for notifications added without one. Can be
// changed for testing.
var newIDFunc = uuid.NewString

// nowFunc returns the received timestamp for added notifications. Can be
// changed for testing.
var nowFunc = time.Now

// NewAddCmd creates the add command with explicit dependencies.
func NewAddCmd(open inboxOpener) *cobra.Command {
	if open == nil {
		panic("NewAddCmd: opener dependency cannot be nil")
	}

	var addID string
	var addData []string
	var addImageURL string
	var addClickAction string
	var addChannelID string
	var addTag string
	var addColor string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a notification to the inbox",
		Long:  addCommandLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseDataPairs(addData)
			if err != nil {
				return err
			}

			id := addID
			if id == "" {
				id = newIDFunc()
			}
			n := inbox.Notification{
				ID:          id,
				Title:       args[0],
				Body:        strings.Join(args[1:], " "),
				ReceivedAt:  nowFunc(),
				Data:        data,
				ImageURL:    addImageURL,
				ClickAction: addClickAction,
				ChannelID:   addChannelID,
				Tag:         addTag,
				Color:       addColor,
			}

			box, cleanup, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			defer cleanup()

			added, err := box.Add(cmd.Context(), n)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			if !added {
				colors.Info(fmt.Sprintf("Notification %s already exists, nothing to do", id))
				return nil
			}
			if err := runHooks(hooks.EventPostAdd, notificationEnv(n)...); err != nil {
				return fmt.Errorf("add: %w", err)
			}
			colors.Success(fmt.Sprintf("Notification added (ID: %s)", id))
			return nil
		},
	}

	addCmd.Flags().StringVar(&addID, "id", "", "Notification ID (generated when omitted)")
	addCmd.Flags().StringArrayVar(&addData, "data", nil, "Attach a data payload entry (repeatable, key=value)")
	addCmd.Flags().StringVar(&addImageURL, "image-url", "", "Image URL")
	addCmd.Flags().StringVar(&addClickAction, "click-action", "", "Click action")
	addCmd.Flags().StringVar(&addChannelID, "channel-id", "", "Android channel ID")
	addCmd.Flags().StringVar(&addTag, "tag", "", "Notification tag")
	addCmd.Flags().StringVar(&addColor, "color", "", "Notification color")

	return addCmd
}

// parseDataPairs parses repeated key=value flags into a payload map.
func parseDataPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	data := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid data entry: %s (expected key=value)", pair)
		}
		data[parts[0]] = parts[1]
	}
	return data, nil
}

// addCmd represents the add command
var addCmd = NewAddCmd(defaultOpener)

func init() {
	RootCmd.AddCommand(addCmd)
}
