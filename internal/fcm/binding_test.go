package fcm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cristianoliveira/pushtray/internal/inbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	added  []inbox.Notification
	addOK  bool
	addErr error
}

func (f *fakeStore) Add(ctx context.Context, n inbox.Notification) (bool, error) {
	f.added = append(f.added, n)
	return f.addOK, f.addErr
}

func newTestBinding(store *fakeStore) *Binding {
	b := NewBinding(store, nil)
	b.now = func() time.Time { return time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC) }
	b.newID = func() string { return "generated-id" }
	return b
}

func TestHandleTranslatesAllFields(t *testing.T) {
	store := &fakeStore{addOK: true}
	b := newTestBinding(store)

	msg := Message{
		MessageID: "msg-1",
		Notification: &Notification{
			Title:       "New message",
			Body:        "Hello",
			ImageURL:    "https://example.com/i.png",
			ClickAction: "OPEN_CHAT",
			ChannelID:   "chat",
			Tag:         "chat-7",
			Color:       "#123456",
		},
		Data: map[string]string{"chatId": "7"},
	}

	n, added, err := b.Handle(context.Background(), msg, SourceForeground)
	require.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, "msg-1", n.ID)
	assert.Equal(t, "New message", n.Title)
	assert.Equal(t, "Hello", n.Body)
	assert.Equal(t, "https://example.com/i.png", n.ImageURL)
	assert.Equal(t, "OPEN_CHAT", n.ClickAction)
	assert.Equal(t, "chat", n.ChannelID)
	assert.Equal(t, "chat-7", n.Tag)
	assert.Equal(t, "#123456", n.Color)
	assert.Equal(t, map[string]string{"chatId": "7"}, n.Data)
	assert.Equal(t, time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC), n.ReceivedAt)
	assert.False(t, n.Read)
}

func TestHandleGeneratesIDWhenMissing(t *testing.T) {
	store := &fakeStore{addOK: true}
	b := newTestBinding(store)

	n, added, err := b.Handle(context.Background(), Message{}, SourceLaunch)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "generated-id", n.ID)
}

func TestHandleCopiesDataDefensively(t *testing.T) {
	store := &fakeStore{addOK: true}
	b := newTestBinding(store)

	data := map[string]string{"k": "v"}
	_, _, err := b.Handle(context.Background(), Message{MessageID: "m", Data: data}, SourceTap)
	require.NoError(t, err)

	data["k"] = "mutated"
	require.Len(t, store.added, 1)
	assert.Equal(t, "v", store.added[0].Data["k"])
}

func TestHandleDuplicateReportsNotAdded(t *testing.T) {
	store := &fakeStore{addOK: false}
	b := newTestBinding(store)

	_, added, err := b.Handle(context.Background(), Message{MessageID: "m"}, SourceForeground)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestHandlePropagatesStoreError(t *testing.T) {
	store := &fakeStore{addOK: true, addErr: errors.New("persist failed")}
	b := newTestBinding(store)

	_, added, err := b.Handle(context.Background(), Message{MessageID: "m"}, SourceForeground)
	assert.Error(t, err)
	assert.True(t, added, "save failures do not roll back the insertion")
}

func TestNewBindingPanicsOnNilStore(t *testing.T) {
	assert.Panics(t, func() { NewBinding(nil, nil) })
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		in      string
		want    Source
		wantErr bool
	}{
		{"foreground", SourceForeground, false},
		{"TAP", SourceTap, false},
		{" launch ", SourceLaunch, false},
		{"background", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSource(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
