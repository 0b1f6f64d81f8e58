package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMessageJSON = `{
  "messageId": "msg-42",
  "notification": {
    "title": "Order shipped",
    "body": "On its way",
    "android_channel_id": "orders"
  },
  "data": {"orderId": "42"}
}`

func setIngestInput(t *testing.T, input string) {
	t.Helper()
	original := ingestInput
	t.Cleanup(func() { ingestInput = original })
	ingestInput = strings.NewReader(input)
}

func TestIngestFromStdin(t *testing.T) {
	setIngestInput(t, sampleMessageJSON)

	box := &fakeInbox{addResult: true}
	cmd := NewIngestCmd(openerFor(box))

	out, err := executeCmd(t, cmd)
	require.NoError(t, err)

	require.Len(t, box.added, 1)
	assert.Equal(t, "msg-42", box.added[0].ID)
	assert.Equal(t, "Order shipped", box.added[0].Title)
	assert.Equal(t, "orders", box.added[0].ChannelID)
	assert.Equal(t, map[string]string{"orderId": "42"}, box.added[0].Data)
	assert.Contains(t, out, "Message stored (ID: msg-42)")
}

func TestIngestFromFile(t *testing.T) {
	path := t.TempDir() + "/message.json"
	require.NoError(t, writeTestFile(path, sampleMessageJSON))

	box := &fakeInbox{addResult: true}
	cmd := NewIngestCmd(openerFor(box))

	_, err := executeCmd(t, cmd, "--file", path)
	require.NoError(t, err)
	require.Len(t, box.added, 1)
	assert.Equal(t, "msg-42", box.added[0].ID)
}

func TestIngestDuplicateIsNoop(t *testing.T) {
	setIngestInput(t, sampleMessageJSON)

	box := &fakeInbox{addResult: false}
	cmd := NewIngestCmd(openerFor(box))

	out, err := executeCmd(t, cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to do")
}

func TestIngestInvalidSource(t *testing.T) {
	box := &fakeInbox{addResult: true}
	cmd := NewIngestCmd(openerFor(box))

	_, err := executeCmd(t, cmd, "--source", "push")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid message source")
}

func TestIngestMalformedJSON(t *testing.T) {
	setIngestInput(t, "{not json")

	box := &fakeInbox{addResult: true}
	cmd := NewIngestCmd(openerFor(box))

	_, err := executeCmd(t, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode message")
	assert.Empty(t, box.added)
}

func TestIngestMissingFile(t *testing.T) {
	box := &fakeInbox{addResult: true}
	cmd := NewIngestCmd(openerFor(box))

	_, err := executeCmd(t, cmd, "--file", t.TempDir()+"/missing.json")
	require.Error(t, err)
}

func TestNewIngestCmdNilOpenerPanics(t *testing.T) {
	assert.Panics(t, func() { NewIngestCmd(nil) })
}
