package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DebugGate(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		expectLog bool
	}{
		{"debug enabled", true, true},
		{"debug disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, "[test]", tt.debug)
			l.Debug("tick %d", 3)

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] ")
				assert.Contains(t, buf.String(), "DEBUG: tick 3")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", false)

	l.Info("started")
	l.Warn("telemetry %s", "late")
	l.Error("failed")

	out := buf.String()
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "WARN: telemetry late")
	assert.Contains(t, out, "ERROR: failed")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nimbus.log")

	l, closeFn, err := OpenFile(path, false)
	require.NoError(t, err)
	l.Warn("skipped tick")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[nimbus] ")
	assert.Contains(t, string(data), "WARN: skipped tick")
}

func TestNoop(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()
	l.Warn("memory %d", 1)
	l.Debug("phase")

	require.Len(t, l.Messages, 2)
	assert.Equal(t, LogMessage{Level: "warn", Message: "memory 1"}, l.Messages[0])
	assert.True(t, l.HasLevel("debug"))
	assert.False(t, l.HasLevel("error"))
}
