/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/fcm"
	"github.com/cristianoliveira/pushtray/internal/hooks"
	"github.com/cristianoliveira/pushtray/internal/logging"
)

const ingestCommandLong = `Ingest a delivered push message into the inbox.

USAGE:
    pushtray ingest [OPTIONS]

OPTIONS:
    --source <source>  Delivery channel: foreground, tap, launch (default: foreground)
    --file <path>      Read the message JSON from a file instead of stdin
    -h, --help         Show this help

The message is a JSON document with messageId, an optional notification
object (title, body, image, click_action, android_channel_id, tag, color)
and an optional data map. Messages without a messageId get a generated ID.
A message whose ID is already in the inbox is ignored.`

// ingestInput is the reader used when no --file is given. Can be changed
// for testing.
var ingestInput io.Reader = os.Stdin

// NewIngestCmd creates the ingest command with explicit dependencies.
func NewIngestCmd(open inboxOpener) *cobra.Command {
	if open == nil {
		panic("NewIngestCmd: opener dependency cannot be nil")
	}

	var ingestSource string
	var ingestFile string

	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a delivered push message",
		Long:  ingestCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := fcm.ParseSource(ingestSource)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}

			msg, err := readMessage(ingestFile)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}

			box, cleanup, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			defer cleanup()

			binding := fcm.NewBinding(box, logging.GetGlobal())
			n, added, err := binding.Handle(cmd.Context(), msg, source)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			if !added {
				colors.Info(fmt.Sprintf("Message %s already in the inbox, nothing to do", n.ID))
				return nil
			}
			if err := runHooks(hooks.EventPostAdd, notificationEnv(n)...); err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			colors.Success(fmt.Sprintf("Message stored (ID: %s)", n.ID))
			return nil
		},
	}

	ingestCmd.Flags().StringVar(&ingestSource, "source", string(fcm.SourceForeground), "Delivery channel: foreground, tap, launch")
	ingestCmd.Flags().StringVar(&ingestFile, "file", "", "Read the message JSON from a file instead of stdin")

	return ingestCmd
}

// readMessage decodes the message JSON from a file, or from stdin when the
// path is empty or "-".
func readMessage(path string) (fcm.Message, error) {
	var reader io.Reader = ingestInput
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fcm.Message{}, fmt.Errorf("read message: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var msg fcm.Message
	if err := json.NewDecoder(reader).Decode(&msg); err != nil {
		return fcm.Message{}, fmt.Errorf("decode message: %w", err)
	}
	return msg, nil
}

// ingestCmd represents the ingest command
var ingestCmd = NewIngestCmd(defaultOpener)

func init() {
	RootCmd.AddCommand(ingestCmd)
}
