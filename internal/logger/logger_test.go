package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerboseToggle(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(false)
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %d", 2)
	Info("info line")
	Warn("warn line")
	Section("Ingest")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] shown 2")
	assert.Contains(t, out, "[INFO] info line")
	assert.Contains(t, out, "[WARN] warn line")
	assert.Contains(t, out, "=== Ingest ===")
	assert.NotContains(t, out, "hidden")
}
