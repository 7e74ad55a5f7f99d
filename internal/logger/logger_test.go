package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, int(slog.LevelWarn))

	l.Info("Reflection service: created reflection for week", "user_id", "u1")
	assert.Empty(t, buf.String())

	l.Warn("gRPC request failed", "status", "NotFound")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=NotFound")
}
