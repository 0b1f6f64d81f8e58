package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/pushtray/internal/inbox"
)

func TestMarkAllReadSuccess(t *testing.T) {
	box := &fakeInbox{
		notifs: []inbox.Notification{
			{ID: "m1"},
			{ID: "m2"},
			{ID: "m3", Read: true},
		},
		markAllResult: true,
	}
	cmd := NewMarkAllReadCmd(openerFor(box))

	out, err := executeCmd(t, cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "2 notification(s) marked as read")
}

func TestMarkAllReadNoopWhenAllRead(t *testing.T) {
	box := &fakeInbox{
		notifs:        []inbox.Notification{{ID: "m1", Read: true}},
		markAllResult: false,
	}
	cmd := NewMarkAllReadCmd(openerFor(box))

	out, err := executeCmd(t, cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to do")
}

func TestMarkAllReadStoreError(t *testing.T) {
	box := &fakeInbox{markAllResult: true, markAllErr: errors.New("disk full")}
	cmd := NewMarkAllReadCmd(openerFor(box))

	_, err := executeCmd(t, cmd)
	require.Error(t, err)
}

func TestNewMarkAllReadCmdNilOpenerPanics(t *testing.T) {
	assert.Panics(t, func() { NewMarkAllReadCmd(nil) })
}
