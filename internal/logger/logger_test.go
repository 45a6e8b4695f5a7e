package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugWritesAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)
	l.Debug("ingredient %q line=%d", "flour", 3)

	out := buf.String()
	assert.Contains(t, out, "[cooklang] ")
	assert.Contains(t, out, `ingredient "flour" line=3`)
}

func TestDebugIsSilentWhenOff(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelOff, &buf)
	l.Debug("ingredient %q line=%d", "flour", 3)
	assert.Zero(t, buf.Len())
}
