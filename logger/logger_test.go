package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)
	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)
	l.Errorf("shown %d", 3)

	assert := assert.New(t)
	assert.NotContains(buf.String(), "hidden")
	assert.Contains(buf.String(), "WARN: shown 2")
	assert.Contains(buf.String(), "ERROR: shown 3")
}

func TestLevelFromString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(LevelDebug, LevelFromString("debug"))
	assert.Equal(LevelWarn, LevelFromString("warning"))
	assert.Equal(LevelInfo, LevelFromString("nonsense"))
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Infof("nothing") })
}
