package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PAON_CHANNELS", "PAON_STRICT", "PAON_MAX_MESSAGE_BYTES")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"default"}, cfg.Channels)
	assert.False(t, cfg.Strict)
	assert.Equal(t, 4096, cfg.MaxMessageBytes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PAON_CHANNELS", "login,logout")
	t.Setenv("PAON_STRICT", "true")
	t.Setenv("PAON_MAX_MESSAGE_BYTES", "64")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"login", "logout"}, cfg.Channels)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 64, cfg.MaxMessageBytes)
}
