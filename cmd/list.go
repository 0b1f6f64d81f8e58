/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pushtray/internal/config"
	"github.com/cristianoliveira/pushtray/internal/format"
	"github.com/cristianoliveira/pushtray/internal/inbox"
)

const listCommandLong = `List notifications with filters and formats.

USAGE:
    pushtray list [OPTIONS]

OPTIONS:
    --unread             Show only unread notifications
    --read               Show only read notifications
    --search <pattern>   Search titles and bodies (substring match)
    --since <time>       Show notifications received at or after this time
    --until <time>       Show notifications received at or before this time
    --limit <n>          Show at most N notifications
    --plain              Plain table output without date grouping
    --json               JSON output
    -h, --help           Show this help

ORDERING:
    Notifications are listed newest first. The default view groups them
    under Today / Yesterday / date headers.

Time values accept RFC3339 (2026-03-15T12:00:00Z) or a plain date
(2026-03-15).`

// listOutputWriter is the writer used by the list command. Can be changed
// for testing.
var listOutputWriter io.Writer = os.Stdout

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(open inboxOpener) *cobra.Command {
	if open == nil {
		panic("NewListCmd: opener dependency cannot be nil")
	}

	var listUnread bool
	var listRead bool
	var listSearch string
	var listSince string
	var listUntil string
	var listLimit int
	var listPlain bool
	var listJSON bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications with filters and formats",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildListFilter(listUnread, listRead, listSearch, listSince, listUntil)
			if err != nil {
				return err
			}

			box, cleanup, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			defer cleanup()

			notifs := inbox.Apply(box.Notifications(), filter)
			if listLimit > 0 && len(notifs) > listLimit {
				notifs = notifs[:listLimit]
			}

			w := listOutputWriter
			if len(notifs) == 0 {
				_, err := fmt.Fprintln(w, "No notifications found")
				return err
			}

			switch {
			case listJSON:
				return printListJSON(notifs, w)
			case listPlain || !config.GetBool("group_by_date", true):
				return printListTable(notifs, w)
			default:
				return printListGrouped(notifs, w)
			}
		},
	}

	listCmd.Flags().BoolVar(&listUnread, "unread", false, "Show only unread notifications")
	listCmd.Flags().BoolVar(&listRead, "read", false, "Show only read notifications")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Search titles and bodies (substring match)")
	listCmd.Flags().StringVar(&listSince, "since", "", "Show notifications received at or after this time")
	listCmd.Flags().StringVar(&listUntil, "until", "", "Show notifications received at or before this time")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Show at most N notifications")
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Plain table output without date grouping")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "JSON output")

	return listCmd
}

// buildListFilter validates the flags and assembles the notification filter.
func buildListFilter(unread, read bool, search, since, until string) (inbox.Filter, error) {
	if unread && read {
		return inbox.Filter{}, fmt.Errorf("list: --unread and --read are mutually exclusive")
	}
	filter := inbox.Filter{Search: search}
	if unread {
		filter.Read = inbox.ReadFilterUnread
	}
	if read {
		filter.Read = inbox.ReadFilterRead
	}

	var err error
	if since != "" {
		filter.Since, err = parseTimeFlag(since)
		if err != nil {
			return inbox.Filter{}, fmt.Errorf("list: invalid --since value: %w", err)
		}
	}
	if until != "" {
		filter.Until, err = parseTimeFlag(until)
		if err != nil {
			return inbox.Filter{}, fmt.Errorf("list: invalid --until value: %w", err)
		}
	}
	return filter, nil
}

// parseTimeFlag accepts RFC3339 timestamps or plain local dates.
func parseTimeFlag(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

// printListGrouped prints notifications under Today/Yesterday/date headers.
func printListGrouped(notifs []inbox.Notification, w io.Writer) error {
	sections := inbox.GroupByDay(notifs, time.Now())
	return format.NewGroupFormatter().FormatSections(sections, w)
}

// printListTable prints notifications as a plain table.
func printListTable(notifs []inbox.Notification, w io.Writer) error {
	tableConfig := format.DefaultTableConfig()
	tableConfig.DateFormat = config.Get("date_format", tableConfig.DateFormat)
	layout := config.Get("table_format", format.LayoutDefault)
	return format.NewTableFormatter(layout, tableConfig).FormatNotifications(notifs, w)
}

// printListJSON prints notifications as a JSON array in the persisted wire
// form.
func printListJSON(notifs []inbox.Notification, w io.Writer) error {
	data, err := inbox.EncodeJSON(notifs)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	_, err = fmt.Fprintln(w, buf.String())
	return err
}

// listCmd represents the list command
var listCmd = NewListCmd(defaultOpener)

func init() {
	RootCmd.AddCommand(listCmd)
}
