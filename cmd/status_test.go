package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/pushtray/internal/inbox"
)

func statusFixture() *fakeInbox {
	return &fakeInbox{notifs: []inbox.Notification{
		{ID: "m2", Title: "Order shipped", Body: "On its way"},
		{ID: "m1", Title: "Welcome", Read: true},
	}}
}

// executeStatus runs the status command and returns only the cobra output,
// which is where the rendered status line goes.
func executeStatus(t *testing.T, box *fakeInbox, args ...string) (string, error) {
	t.Helper()
	cmd := NewStatusCmd(openerFor(box))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestStatusDefaultCompact(t *testing.T) {
	out, err := executeStatus(t, statusFixture())
	require.NoError(t, err)
	assert.Equal(t, "[1] Order shipped\n", out)
}

func TestStatusDetailedPreset(t *testing.T) {
	out, err := executeStatus(t, statusFixture(), "--format=detailed")
	require.NoError(t, err)
	assert.Equal(t, "1 unread, 1 read | Latest: Order shipped\n", out)
}

func TestStatusCountOnly(t *testing.T) {
	out, err := executeStatus(t, statusFixture(), "--format=count-only")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestStatusCustomTemplate(t *testing.T) {
	out, err := executeStatus(t, statusFixture(), "--format={{unread-count}}/{{total-count}} unread")
	require.NoError(t, err)
	assert.Equal(t, "1/2 unread\n", out)
}

func TestStatusUnknownVariable(t *testing.T) {
	_, err := executeStatus(t, statusFixture(), "--format={{bogus}}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variable")
}

func TestStatusPresetFlag(t *testing.T) {
	out, err := executeStatus(t, statusFixture(), "--preset=count-only")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestStatusUnknownPreset(t *testing.T) {
	_, err := executeStatus(t, statusFixture(), "--preset=fancy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preset not found")
}

func TestStatusFormatFromEnv(t *testing.T) {
	t.Setenv("PUSHTRAY_STATUS_FORMAT", "count-only")

	out, err := executeStatus(t, statusFixture())
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestStatusEmptyInbox(t *testing.T) {
	out, err := executeStatus(t, &fakeInbox{}, "--format=detailed")
	require.NoError(t, err)
	assert.Equal(t, "0 unread, 0 read | Latest: \n", out)
}

func TestNewStatusCmdNilOpenerPanics(t *testing.T) {
	assert.Panics(t, func() { NewStatusCmd(nil) })
}
