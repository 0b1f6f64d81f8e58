/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/config"
	"github.com/cristianoliveira/pushtray/internal/inbox"
)

var (
	followUnread   bool
	followInterval float64
)

// NewFollowCmd creates the follow command with explicit dependencies.
func NewFollowCmd(open inboxOpener) *cobra.Command {
	if open == nil {
		panic("NewFollowCmd: opener dependency cannot be nil")
	}

	cmd := &cobra.Command{
		Use:   "follow",
		Short: "Monitor notifications in real-time",
		Long: `Monitor notifications in real-time.

USAGE:
    pushtray follow [OPTIONS]

OPTIONS:
    --unread           Show only unread notifications
    --interval <secs>  Poll interval (default: 1)
    -h, --help         Show this help`,
		RunE: func(c *cobra.Command, args []string) error {
			opts := FollowOptions{
				Opener:     open,
				UnreadOnly: followUnread,
				Interval:   time.Duration(followInterval * float64(time.Second)),
			}
			ctx := context.Background()
			return Follow(ctx, opts)
		},
	}

	cmd.Flags().BoolVar(&followUnread, "unread", false, "Show only unread notifications")
	cmd.Flags().Float64Var(&followInterval, "interval", 1.0, "Poll interval in seconds (default: 1)")

	return cmd
}

// FollowOptions holds all parameters for following notifications.
type FollowOptions struct {
	Opener     inboxOpener      // opens the inbox for each poll
	UnreadOnly bool             // only surface unread notifications
	Interval   time.Duration    // polling interval (default 1 second)
	Output     io.Writer        // where to write notifications (default os.Stdout)
	TickChan   <-chan time.Time // optional tick channel for testing (if nil, a ticker is created)
}

// printFollowNotification prints a single notification to the writer with
// formatting.
func printFollowNotification(n inbox.Notification, w io.Writer) {
	timeStr := n.ReceivedAt.Local().Format(config.Get("date_format", "2006-01-02 15:04:05"))
	msg := fmt.Sprintf("[%s] %s", timeStr, n.Title)
	if n.Body != "" {
		msg = fmt.Sprintf("%s - %s", msg, n.Body)
	}
	if n.Read {
		_, _ = fmt.Fprintln(w, msg)
	} else {
		_, _ = fmt.Fprintf(w, "%s%s%s\n", colors.Yellow, msg, colors.Reset)
	}
}

// Follow starts monitoring notifications according to the provided options.
// It runs until interrupted (Ctrl+C) or the context is cancelled.
//
// The inbox is reopened on every tick: other processes write the persisted
// key, and a store snapshot only reflects what it loaded at Initialize.
func Follow(ctx context.Context, opts FollowOptions) error {
	if opts.Opener == nil {
		return fmt.Errorf("follow: opener cannot be nil")
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	colors.Info("Monitoring notifications (Ctrl+C to stop)...")
	_, _ = fmt.Fprintln(opts.Output)

	// Map from notification ID to whether we've seen it
	seen := make(map[string]bool)

	// Determine tick channel
	var tickChan <-chan time.Time
	var ticker *time.Ticker
	if opts.TickChan != nil {
		tickChan = opts.TickChan
	} else {
		ticker = time.NewTicker(opts.Interval)
		tickChan = ticker.C
		defer ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigChan:
			_, _ = fmt.Fprintf(opts.Output, "\nReceived signal %v, stopping...\n", sig)
			return nil
		case <-tickChan:
			notifs, err := snapshotNotifications(ctx, opts.Opener)
			if err != nil {
				colors.Warning(fmt.Sprintf("follow: failed to load notifications: %v", err))
				continue
			}
			// Oldest first, so new arrivals print in delivery order.
			for i := len(notifs) - 1; i >= 0; i-- {
				n := notifs[i]
				if seen[n.ID] {
					continue
				}
				seen[n.ID] = true
				if opts.UnreadOnly && n.Read {
					continue
				}
				printFollowNotification(n, opts.Output)
			}
		}
	}
}

// snapshotNotifications opens the inbox, takes a snapshot, and closes it.
func snapshotNotifications(ctx context.Context, open inboxOpener) ([]inbox.Notification, error) {
	box, cleanup, err := open(ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return box.Notifications(), nil
}

// followCmd represents the follow command
var followCmd = NewFollowCmd(defaultOpener)

func init() {
	RootCmd.AddCommand(followCmd)
}
