package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 1000, cfg.SessionMaxCount)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.False(t, cfg.SessionCookieSecure)
	assert.Empty(t, cfg.CataloguePath)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SESSION_MAX_COUNT", "25")
	t.Setenv("SESSION_IDLE_TIMEOUT", "5m")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("CATALOGUE_PATH", "/etc/stormwater/catalogue.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 25, cfg.SessionMaxCount)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdleTimeout)
	assert.True(t, cfg.SessionCookieSecure)
	assert.Equal(t, "/etc/stormwater/catalogue.yaml", cfg.CataloguePath)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidSessionSettings(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SESSION_MAX_COUNT", "0"},
		{"SESSION_MAX_COUNT", "lots"},
		{"SESSION_IDLE_TIMEOUT", "-1s"},
		{"SESSION_IDLE_TIMEOUT", "soon"},
		{"SESSION_COOKIE_SECURE", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}
