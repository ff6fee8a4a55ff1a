package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  charmlog.Level
	}{
		{"debug", charmlog.DebugLevel},
		{"INFO", charmlog.InfoLevel},
		{" warn ", charmlog.WarnLevel},
		{"error", charmlog.ErrorLevel},
		{"", charmlog.InfoLevel},
		{"verbose", charmlog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: "warn", Output: &buf})

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: "debug", Output: &buf, JSON: true})

	l.With("component", "resolver").Debug("dropped entry", "entry", "BAD")

	line := strings.TrimSpace(buf.String())
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "dropped entry", record["msg"])
	assert.Equal(t, "resolver", record["component"])
	assert.Equal(t, "BAD", record["entry"])
}

func TestInitReplacesDefault(t *testing.T) {
	previous := GetDefault()
	t.Cleanup(func() { defaultLogger.Store(previous.(*loggerImpl)) })

	var buf bytes.Buffer
	Init(&Config{Level: "info", Output: &buf})
	Info("from default")

	assert.Contains(t, buf.String(), "from default")
}

func TestStandardLog(t *testing.T) {
	var buf bytes.Buffer
	std := StandardLog(NewLogger(&Config{Level: "info", Output: &buf}))
	std.Print("request served")
	assert.Contains(t, buf.String(), "request served")

	assert.NotNil(t, StandardLog(nopLogger{}))
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)  {}
func (nopLogger) Info(string, ...any)   {}
func (nopLogger) Warn(string, ...any)   {}
func (nopLogger) Error(string, ...any)  {}
func (n nopLogger) With(...any) Logger { return n }
