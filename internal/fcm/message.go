// Package fcm translates delivered Firebase Cloud Messaging payloads into
// inbox records. Delivery itself, permission negotiation and native rendering
// belong to the platform SDK; this package only consumes what the SDK hands
// over.
package fcm

import (
	"fmt"
	"strings"
)

// Notification is the display block of an FCM message.
type Notification struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	ImageURL    string `json:"image,omitempty"`
	ClickAction string `json:"click_action,omitempty"`
	ChannelID   string `json:"android_channel_id,omitempty"`
	Tag         string `json:"tag,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Message is the consumed subset of a delivered FCM message.
type Message struct {
	MessageID    string            `json:"messageId"`
	Notification *Notification     `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

// Source identifies which delivery channel produced a message.
type Source string

const (
	// SourceForeground is a message delivered while the app was foregrounded.
	SourceForeground Source = "foreground"
	// SourceTap is a message delivered in the background and opened by tap.
	SourceTap Source = "tap"
	// SourceLaunch is a message present at cold start.
	SourceLaunch Source = "launch"
)

// IsValid checks if the source is one of the three delivery channels.
func (s Source) IsValid() bool {
	switch s {
	case SourceForeground, SourceTap, SourceLaunch:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// ParseSource parses a string into a Source.
func ParseSource(value string) (Source, error) {
	s := Source(strings.ToLower(strings.TrimSpace(value)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid message source: %s (must be foreground, tap, launch)", value)
	}
	return s, nil
}
