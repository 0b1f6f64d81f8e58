package inbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDayEmpty(t *testing.T) {
	sections := GroupByDay(nil, time.Now())
	assert.Empty(t, sections)
}

func TestGroupByDayLabelsAndOrder(t *testing.T) {
	now := time.Date(2026, 8, 25, 15, 0, 0, 0, time.Local)
	today := now.Add(-2 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -7)

	notifs := []Notification{
		{ID: "a", ReceivedAt: today},
		{ID: "b", ReceivedAt: today.Add(-time.Hour)},
		{ID: "c", ReceivedAt: yesterday, Read: true},
		{ID: "d", ReceivedAt: lastWeek},
	}

	sections := GroupByDay(notifs, now)

	require.Len(t, sections, 3)
	assert.Equal(t, "Today", sections[0].Label)
	assert.Equal(t, "Yesterday", sections[1].Label)
	assert.Equal(t, "August 18, 2026", sections[2].Label)

	require.Len(t, sections[0].Notifications, 2)
	assert.Equal(t, "a", sections[0].Notifications[0].ID)
	assert.Equal(t, "b", sections[0].Notifications[1].ID)
	assert.Equal(t, 2, sections[0].UnreadCount)
	assert.Equal(t, 0, sections[1].UnreadCount)
	assert.Equal(t, 1, sections[2].UnreadCount)
}

func TestGroupByDaySectionsNewestFirst(t *testing.T) {
	now := time.Date(2026, 8, 25, 15, 0, 0, 0, time.Local)
	// Input deliberately not in day order.
	notifs := []Notification{
		{ID: "old", ReceivedAt: now.AddDate(0, 0, -3)},
		{ID: "new", ReceivedAt: now},
		{ID: "mid", ReceivedAt: now.AddDate(0, 0, -1)},
	}

	sections := GroupByDay(notifs, now)

	require.Len(t, sections, 3)
	assert.True(t, sections[0].Day.After(sections[1].Day))
	assert.True(t, sections[1].Day.After(sections[2].Day))
}

func TestGroupByDayBoundary(t *testing.T) {
	now := time.Date(2026, 8, 25, 0, 30, 0, 0, time.Local)
	justBeforeMidnight := time.Date(2026, 8, 24, 23, 59, 0, 0, time.Local)

	sections := GroupByDay([]Notification{{ID: "a", ReceivedAt: justBeforeMidnight}}, now)

	require.Len(t, sections, 1)
	assert.Equal(t, "Yesterday", sections[0].Label)
}
