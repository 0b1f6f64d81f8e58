package fcm

import (
	"context"
	"time"

	"github.com/cristianoliveira/pushtray/internal/inbox"
	"github.com/cristianoliveira/pushtray/internal/logging"
	"github.com/google/uuid"
)

// inboxStore is the store surface the binding needs.
type inboxStore interface {
	Add(ctx context.Context, n inbox.Notification) (bool, error)
}

// Binding feeds translated FCM messages into an inbox store.
type Binding struct {
	store  inboxStore
	logger logging.Logger

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

// NewBinding creates a binding for the given store.
func NewBinding(store inboxStore, logger logging.Logger) *Binding {
	if store == nil {
		panic("fcm.NewBinding: store dependency cannot be nil")
	}
	if logger == nil {
		logger = logging.GetGlobal()
	}
	return &Binding{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Handle translates a delivered message into an inbox record and stores it.
// Messages without an upstream ID get a generated one. The received time is
// the local insertion time, not the push-origin send time. Returns the
// translated record and whether it was actually added (false for duplicates).
func (b *Binding) Handle(ctx context.Context, msg Message, source Source) (inbox.Notification, bool, error) {
	id := msg.MessageID
	if id == "" {
		id = b.newID()
		b.logger.Debug("message has no ID, generated one", "id", id, "source", source)
	}

	n := inbox.Notification{
		ID:         id,
		ReceivedAt: b.now(),
		Data:       copyData(msg.Data),
	}
	if msg.Notification != nil {
		n.Title = msg.Notification.Title
		n.Body = msg.Notification.Body
		n.ImageURL = msg.Notification.ImageURL
		n.ClickAction = msg.Notification.ClickAction
		n.ChannelID = msg.Notification.ChannelID
		n.Tag = msg.Notification.Tag
		n.Color = msg.Notification.Color
	}

	added, err := b.store.Add(ctx, n)
	if err != nil {
		b.logger.Warn("failed to store message", "id", id, "source", source, "error", err)
		return n, added, err
	}
	if !added {
		b.logger.Debug("duplicate message ignored", "id", id, "source", source)
		return n, false, nil
	}
	b.logger.Info("message stored", "id", id, "source", source)
	return n, true, nil
}

// copyData clones the payload so later mutations by the caller cannot leak
// into stored records.
func copyData(data map[string]string) map[string]string {
	if data == nil {
		return nil
	}
	copied := make(map[string]string, len(data))
	for k, v := range data {
		copied[k] = v
	}
	return copied
}
