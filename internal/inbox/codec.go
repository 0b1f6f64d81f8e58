package inbox

import (
	"encoding/json"
	"fmt"
	"time"
)

// storedRecord is the wire form of a notification in the persisted blob:
// one JSON array of flat objects under a single key. There is no schema
// versioning; field changes are breaking.
type storedRecord struct {
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Timestamp   string            `json:"timestamp"`
	MessageID   string            `json:"messageId"`
	IsRead      bool              `json:"isRead"`
	Data        map[string]string `json:"data"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	ClickAction string            `json:"clickAction,omitempty"`
	ChannelID   string            `json:"channelId,omitempty"`
	Tag         string            `json:"tag,omitempty"`
	Color       string            `json:"color,omitempty"`
}

// encodeRecords serializes notifications to the persisted JSON array form.
func encodeRecords(notifs []Notification) ([]byte, error) {
	records := make([]storedRecord, 0, len(notifs))
	for _, n := range notifs {
		records = append(records, storedRecord{
			Title:       n.Title,
			Body:        n.Body,
			Timestamp:   n.ReceivedAt.UTC().Format(time.RFC3339Nano),
			MessageID:   n.ID,
			IsRead:      n.Read,
			Data:        n.Data,
			ImageURL:    n.ImageURL,
			ClickAction: n.ClickAction,
			ChannelID:   n.ChannelID,
			Tag:         n.Tag,
			Color:       n.Color,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("inbox: encode records: %w", err)
	}
	return data, nil
}

// EncodeJSON serializes notifications to the same JSON array form the store
// persists. Used for machine-readable CLI output.
func EncodeJSON(notifs []Notification) ([]byte, error) {
	return encodeRecords(notifs)
}

// decodeRecords parses the persisted JSON array form back into notifications.
// Any malformed record fails the whole decode; the store treats that as a
// corrupt blob and resets to empty.
func decodeRecords(data []byte) ([]Notification, error) {
	var records []storedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("inbox: decode records: %w", err)
	}
	notifs := make([]Notification, 0, len(records))
	for i, r := range records {
		receivedAt, err := time.Parse(time.RFC3339Nano, r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("inbox: decode record %d: invalid timestamp %q: %w", i, r.Timestamp, err)
		}
		if r.MessageID == "" {
			return nil, fmt.Errorf("inbox: decode record %d: missing messageId", i)
		}
		notifs = append(notifs, Notification{
			ID:          r.MessageID,
			Title:       r.Title,
			Body:        r.Body,
			ReceivedAt:  receivedAt,
			Read:        r.IsRead,
			Data:        r.Data,
			ImageURL:    r.ImageURL,
			ClickAction: r.ClickAction,
			ChannelID:   r.ChannelID,
			Tag:         r.Tag,
			Color:       r.Color,
		})
	}
	return notifs, nil
}
