package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func restoreLogger(t *testing.T) {
	old := slogger
	t.Cleanup(func() { slogger = old })
}

func TestInitLoggerWritesFile(t *testing.T) {
	restoreLogger(t)
	dir := t.TempDir()

	atom := InitLogger(LogConfig{Dir: dir, Level: "info", FileSize: 1, FileMaxBackups: 1})
	assert.Equal(t, zapcore.InfoLevel, atom.Level())

	slogger.Debugf("hidden %d", 1)
	slogger.Infof("visible %d", 2)
	slogger.Sync()

	content, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "INFO")
	assert.Contains(t, string(content), "visible 2")
	assert.NotContains(t, string(content), "hidden 1")
}

func TestInitLoggerUnknownLevel(t *testing.T) {
	restoreLogger(t)

	atom := InitLogger(LogConfig{Level: "loud"})
	assert.Equal(t, zapcore.WarnLevel, atom.Level())

	atom.SetLevel(zapcore.DebugLevel)
	assert.True(t, slogger.Desugar().Core().Enabled(zapcore.DebugLevel))
}
