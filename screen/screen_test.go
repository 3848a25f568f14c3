package screen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nimbus/errors"
)

func newFileScreen(t *testing.T) (*Screen, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	s, err := New(f)
	require.NoError(t, err)
	return s, path
}

func TestScreen_NotATerminal(t *testing.T) {
	s, _ := newFileScreen(t)

	assert.False(t, s.IsTerminal())

	_, _, err := s.Size()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTerminal))
	assert.NoError(t, s.Close())
}

func TestScreen_ControlSequences(t *testing.T) {
	s, path := newFileScreen(t)

	s.HideCursor()
	s.Clear()
	s.Home()
	_, err := s.Write([]byte("frame"))
	require.NoError(t, err)
	s.ClearBelow()
	s.ShowCursor()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "\x1b[?25l")
	assert.Contains(t, out, "\x1b[2J")
	assert.Contains(t, out, "\x1b[1;1H")
	assert.Contains(t, out, "frame\x1b[0J")
	assert.Contains(t, out, "\x1b[?25h")
}

var _ Terminal = (*Screen)(nil)
