// Package inbox maintains the local push notification inbox.
//
// It holds an ordered, capacity-bounded list of notification records in
// memory, mirrors the list to a single persisted blob in a kv.Store, and
// notifies subscribers on every mutation. Records are immutable; read-state
// changes rebuild the record rather than mutating it in place.
package inbox

import (
	"fmt"
	"strings"
	"time"
)

// Notification represents a single received push notification.
type Notification struct {
	// ID is the stable identity of the notification. Two records with the
	// same ID are the same notification regardless of other fields.
	ID    string
	Title string
	Body  string
	// ReceivedAt is the local insertion time, not the push-origin send time.
	ReceivedAt time.Time
	Read       bool
	// Data is the flat auxiliary payload carried by the push message.
	// The inbox treats it as opaque.
	Data map[string]string

	// Optional display hints from the upstream message.
	ImageURL    string
	ClickAction string
	ChannelID   string
	Tag         string
	Color       string
}

// IsRead reports whether the notification has been read.
func (n Notification) IsRead() bool {
	return n.Read
}

// MarkRead returns a copy of the notification with the read flag set.
func (n Notification) MarkRead() Notification {
	n.Read = true
	return n
}

// Equal reports whether two notifications are the same notification.
// Identity is defined solely by ID.
func (n Notification) Equal(other Notification) bool {
	return n.ID == other.ID
}

// Validate validates the notification and returns an error if invalid.
func (n Notification) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return fmt.Errorf("notification ID cannot be empty")
	}
	if n.ReceivedAt.IsZero() {
		return fmt.Errorf("notification received time cannot be zero")
	}
	return nil
}

// MatchesFilter checks if the notification matches the given filter criteria.
func (n Notification) MatchesFilter(filter Filter) bool {
	if filter.Read != "" {
		if filter.Read == ReadFilterRead && !n.Read {
			return false
		}
		if filter.Read == ReadFilterUnread && n.Read {
			return false
		}
	}
	if filter.Search != "" {
		query := strings.ToLower(filter.Search)
		title := strings.ToLower(n.Title)
		body := strings.ToLower(n.Body)
		if !strings.Contains(title, query) && !strings.Contains(body, query) {
			return false
		}
	}
	if !filter.Since.IsZero() && n.ReceivedAt.Before(filter.Since) {
		return false
	}
	if !filter.Until.IsZero() && n.ReceivedAt.After(filter.Until) {
		return false
	}
	return true
}
