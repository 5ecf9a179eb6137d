package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "HTTP_ADDR", "HOME_MODE", "LOG_LEVEL",
		"SHUTDOWN_TIMEOUT", "READ_HEADER_TIMEOUT", "READ_TIMEOUT",
		"WRITE_TIMEOUT", "IDLE_TIMEOUT", "REQUEST_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, HomeTemplate, cfg.HomeMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.IsProd())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", "127.0.0.1:8081")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HOME_MODE", "plain")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_DIR", "")
	t.Setenv("WRITE_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Addr)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, HomePlain, cfg.HomeMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.LogDir)
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string][2]string{
		"env":      {"APP_ENV", "qa"},
		"mode":     {"HOME_MODE", "fancy"},
		"level":    {"LOG_LEVEL", "trace"},
		"duration": {"READ_TIMEOUT", "soon"},
		"negative": {"IDLE_TIMEOUT", "-1s"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
