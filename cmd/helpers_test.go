package cmd

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/inbox"
)

// fakeInbox implements inboxService for command tests. The mutex keeps it
// safe for tests that poll from another goroutine.
type fakeInbox struct {
	mu     sync.Mutex
	notifs []inbox.Notification

	added     []inbox.Notification
	addResult bool
	addErr    error

	markReadIDs    []string
	markReadResult bool
	markReadErr    error

	markAllResult bool
	markAllErr    error

	removedIDs   []string
	removeResult bool
	removeErr    error

	cleared  bool
	clearErr error
}

func (f *fakeInbox) Add(ctx context.Context, n inbox.Notification) (bool, error) {
	f.added = append(f.added, n)
	return f.addResult, f.addErr
}

func (f *fakeInbox) MarkRead(ctx context.Context, id string) (bool, error) {
	f.markReadIDs = append(f.markReadIDs, id)
	return f.markReadResult, f.markReadErr
}

func (f *fakeInbox) MarkAllRead(ctx context.Context) (bool, error) {
	return f.markAllResult, f.markAllErr
}

func (f *fakeInbox) Remove(ctx context.Context, id string) (bool, error) {
	f.removedIDs = append(f.removedIDs, id)
	return f.removeResult, f.removeErr
}

func (f *fakeInbox) Clear(ctx context.Context) error {
	f.cleared = true
	return f.clearErr
}

func (f *fakeInbox) Notifications() []inbox.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := make([]inbox.Notification, len(f.notifs))
	copy(records, f.notifs)
	return records
}

func (f *fakeInbox) Get(id string) (inbox.Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.notifs {
		if n.ID == id {
			return n, true
		}
	}
	return inbox.Notification{}, false
}

func (f *fakeInbox) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.notifs {
		if !n.Read {
			count++
		}
	}
	return count
}

func (f *fakeInbox) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notifs)
}

// prepend inserts a notification at the head of the fake's list.
func (f *fakeInbox) prepend(n inbox.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifs = append([]inbox.Notification{n}, f.notifs...)
}

// openerFor returns an opener handing out the given fake.
func openerFor(box *fakeInbox) inboxOpener {
	return func(ctx context.Context) (inboxService, func(), error) {
		return box, func() {}, nil
	}
}

// writeTestFile writes content to a path with default permissions.
func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// executeCmd runs a command with the given args, capturing both the cobra
// output and the colors output streams.
func executeCmd(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	// Point hook discovery at an empty directory so commands fire no scripts.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	buf := new(bytes.Buffer)
	restore := colors.SetWriters(buf, buf)
	defer restore()
	c.SetOut(buf)
	c.SetErr(buf)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}
