package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSuccess(t *testing.T) {
	box := &fakeInbox{addResult: true}
	cmd := NewAddCmd(openerFor(box))

	out, err := executeCmd(t, cmd, "--id", "m1", "Order shipped", "On", "its", "way")
	require.NoError(t, err)

	require.Len(t, box.added, 1)
	assert.Equal(t, "m1", box.added[0].ID)
	assert.Equal(t, "Order shipped", box.added[0].Title)
	assert.Equal(t, "On its way", box.added[0].Body)
	assert.Contains(t, out, "Notification added (ID: m1)")
}

func TestAddGeneratesID(t *testing.T) {
	originalNewID := newIDFunc
	defer func() { newIDFunc = originalNewID }()
	newIDFunc = func() string { return "generated-id" }

	box := &fakeInbox{addResult: true}
	cmd := NewAddCmd(openerFor(box))

	_, err := executeCmd(t, cmd, "Hello")
	require.NoError(t, err)

	require.Len(t, box.added, 1)
	assert.Equal(t, "generated-id", box.added[0].ID)
}

func TestAddDuplicateIsNoop(t *testing.T) {
	box := &fakeInbox{addResult: false}
	cmd := NewAddCmd(openerFor(box))

	out, err := executeCmd(t, cmd, "--id", "m1", "Again")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to do")
}

func TestAddDataFlags(t *testing.T) {
	originalNow := nowFunc
	defer func() { nowFunc = originalNow }()
	received := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return received }

	box := &fakeInbox{addResult: true}
	cmd := NewAddCmd(openerFor(box))

	_, err := executeCmd(t, cmd,
		"--id", "m1",
		"--data", "orderId=42",
		"--data", "screen=orders",
		"--tag", "promo",
		"Title")
	require.NoError(t, err)

	require.Len(t, box.added, 1)
	assert.Equal(t, map[string]string{"orderId": "42", "screen": "orders"}, box.added[0].Data)
	assert.Equal(t, "promo", box.added[0].Tag)
	assert.Equal(t, received, box.added[0].ReceivedAt)
}

func TestAddInvalidDataEntry(t *testing.T) {
	box := &fakeInbox{addResult: true}
	cmd := NewAddCmd(openerFor(box))

	_, err := executeCmd(t, cmd, "--data", "no-equals", "Title")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid data entry")
	assert.Empty(t, box.added)
}

func TestAddStoreError(t *testing.T) {
	box := &fakeInbox{addResult: true, addErr: errors.New("disk full")}
	cmd := NewAddCmd(openerFor(box))

	_, err := executeCmd(t, cmd, "--id", "m1", "Title")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestAddRequiresTitle(t *testing.T) {
	cmd := NewAddCmd(openerFor(&fakeInbox{}))

	_, err := executeCmd(t, cmd)
	require.Error(t, err)
}

func TestNewAddCmdNilOpenerPanics(t *testing.T) {
	assert.Panics(t, func() { NewAddCmd(nil) })
}

func TestParseDataPairs(t *testing.T) {
	data, err := parseDataPairs([]string{"a=1", "b=x=y"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "x=y"}, data)

	data, err = parseDataPairs(nil)
	require.NoError(t, err)
	assert.Nil(t, data)

	_, err = parseDataPairs([]string{"=value"})
	assert.Error(t, err)
}
