package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromFlagsDefaults(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse(nil))

	config, err := configFromFlags(flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestConfigFromFlagsOverrideFile(t *testing.T) {
	assert := assert.New(t)

	filename := writeConfig(t, `{"destination": "10.0.0.7:9999", "log_level": "error", "log_file_size": 20}`)

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"-f", filename, "--port", "7777", "--log-level", "debug"}))

	config, err := configFromFlags(flags)
	require.NoError(t, err)

	assert.Equal(Destination{Host: "10.0.0.7", Port: 7777}, config.Destination)
	assert.Equal("debug", config.Log.Level)
	assert.Equal(20, config.Log.FileSize)
	assert.Equal(3, config.Log.FileMaxBackups)
}

func TestConfigFromFlagsMissingFile(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--config", "/nonexistent/config.json"}))

	_, err := configFromFlags(flags)
	assert.Error(t, err)
}
