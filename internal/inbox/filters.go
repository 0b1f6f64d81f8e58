package inbox

import "time"

// Read filter constants.
const (
	ReadFilterRead   = "read"
	ReadFilterUnread = "unread"
)

// Filter holds filter criteria for notifications.
type Filter struct {
	// Read is "read", "unread", or "" (no filter).
	Read string
	// Search is a case-insensitive substring matched against title and body.
	Search string
	// Since and Until bound the received time. Zero values mean unbounded.
	Since time.Time
	Until time.Time
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Read == "" && f.Search == "" && f.Since.IsZero() && f.Until.IsZero()
}

// Apply returns the notifications matching the filter, preserving order.
func Apply(notifs []Notification, filter Filter) []Notification {
	if f := filter; f.IsZero() {
		return notifs
	}
	matched := make([]Notification, 0, len(notifs))
	for _, n := range notifs {
		if n.MatchesFilter(filter) {
			matched = append(matched, n)
		}
	}
	return matched
}
