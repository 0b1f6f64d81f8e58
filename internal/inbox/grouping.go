package inbox

import (
	"time"
)

// DaySection is one calendar-day bucket of notifications, the unit the list
// view renders under a date header.
type DaySection struct {
	// Day is midnight of the section's calendar day, in local time.
	Day time.Time
	// Label is "Today", "Yesterday", or a formatted date.
	Label         string
	Notifications []Notification
	UnreadCount   int
}

// GroupByDay buckets notifications by local calendar day. Input order is
// preserved within each section; sections come out newest day first, which
// matches the store's newest-first ordering.
func GroupByDay(notifs []Notification, now time.Time) []DaySection {
	if len(notifs) == 0 {
		return []DaySection{}
	}

	sectionsMap := make(map[time.Time]int)
	sections := make([]DaySection, 0)

	for _, n := range notifs {
		day := startOfDay(n.ReceivedAt.Local())
		idx, ok := sectionsMap[day]
		if !ok {
			idx = len(sections)
			sectionsMap[day] = idx
			sections = append(sections, DaySection{
				Day:   day,
				Label: dayLabel(day, now),
			})
		}
		sections[idx].Notifications = append(sections[idx].Notifications, n)
		if !n.Read {
			sections[idx].UnreadCount++
		}
	}

	sortSectionsNewestFirst(sections)
	return sections
}

func sortSectionsNewestFirst(sections []DaySection) {
	// Insertion sort; the section count is tiny.
	for i := 1; i < len(sections); i++ {
		for j := i; j > 0 && sections[j].Day.After(sections[j-1].Day); j-- {
			sections[j], sections[j-1] = sections[j-1], sections[j]
		}
	}
}

// dayLabel returns the display label for a calendar day.
func dayLabel(day, now time.Time) string {
	today := startOfDay(now.Local())
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return day.Format("January 2, 2006")
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
