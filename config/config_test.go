package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.CommandTimeout)
	assert.Equal(t, 1000, cfg.Charts.CacheSize)
	assert.Equal(t, time.Second, cfg.Charts.PushInterval)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
Addr = :8080
CommandTimeout = 2s

[charts]
CacheSize = 50
PushInterval = 250ms

[log]
Level = debug
`))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.CommandTimeout)
	assert.Equal(t, 50, cfg.Charts.CacheSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Charts.PushInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvSecretOverride(t *testing.T) {
	t.Setenv("MSEUI_AUTH_SECRET", "from-env")

	cfg, err := Load(writeConfig(t, `
[server]
AuthSecret = from-file
`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Server.AuthSecret)
}

func TestValidation(t *testing.T) {
	_, err := Load(writeConfig(t, `
[charts]
CacheSize = -1
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CacheSize")

	_, err = Load("does-not-exist.ini")
	assert.Error(t, err)
}
