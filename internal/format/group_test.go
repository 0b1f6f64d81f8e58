package format

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/pushtray/internal/inbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSections(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	notifs := []inbox.Notification{
		{ID: "n3", Title: "Third", Body: "newest", ReceivedAt: now.Add(-time.Hour)},
		{ID: "n2", Title: "Second", ReceivedAt: now.Add(-2 * time.Hour), Read: true},
		{ID: "n1", Title: "First", ReceivedAt: now.AddDate(0, 0, -1), Read: true},
	}
	sections := inbox.GroupByDay(notifs, now)

	var buf bytes.Buffer
	err := NewGroupFormatter().FormatSections(sections, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Today (2/1)")
	assert.Contains(t, out, "Yesterday (1)")
	assert.Contains(t, out, "Third - newest")
	assert.Contains(t, out, "First")

	// Today's section comes before yesterday's.
	assert.Less(t, strings.Index(out, "Today"), strings.Index(out, "Yesterday"))
}

func TestFormatSectionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := NewGroupFormatter().FormatSections(nil, &buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestRenderNotificationRowMarkers(t *testing.T) {
	received := time.Date(2026, 3, 15, 9, 5, 0, 0, time.Local)

	unread := renderNotificationRow(inbox.Notification{Title: "New", ReceivedAt: received})
	assert.Contains(t, unread, unreadMarker)
	assert.Contains(t, unread, "09:05")

	read := renderNotificationRow(inbox.Notification{Title: "Old", ReceivedAt: received, Read: true})
	assert.NotContains(t, read, unreadMarker)
}

func TestRenderNotificationRowTruncatesBody(t *testing.T) {
	row := renderNotificationRow(inbox.Notification{
		Title:      "T",
		Body:       strings.Repeat("b", 200),
		ReceivedAt: time.Now(),
	})
	assert.Contains(t, row, "...")
	assert.Less(t, len(row), 120)
}

func TestFormatSectionCount(t *testing.T) {
	assert.Equal(t, "3", formatSectionCount(3, 0))
	assert.Equal(t, "3/2", formatSectionCount(3, 2))
}

func TestAnsiColorNumber(t *testing.T) {
	assert.Equal(t, "34", ansiColorNumber("\033[0;34m"))
	assert.Equal(t, "33", ansiColorNumber("\033[1;33m"))
	assert.Equal(t, "", ansiColorNumber("nope"))
}
