package main

import (
	"testing"
	"time"

	"ewintr.nl/playlistgrab/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, name := range []string{"PLAYLISTGRAB_LOG_LEVEL", "PLAYLISTGRAB_LOG_FILE", "PLAYLISTGRAB_RETRIES", "PLAYLISTGRAB_RETRY_DELAY", "PLAYLISTGRAB_RETRY_MAX_DELAY", "PLAYLISTGRAB_API_ENDPOINT"} {
		t.Setenv(name, "")
	}
	t.Setenv("PLAYLISTGRAB_LOG_LEVEL", "warn")
	t.Setenv("PLAYLISTGRAB_RETRIES", "0")
	t.Setenv("PLAYLISTGRAB_RETRY_DELAY", "1s")
	t.Setenv("PLAYLISTGRAB_RETRY_MAX_DELAY", "30s")

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, export.RetryConfig{MaxRetries: 0, InitialDelay: time.Second, MaxDelay: 30 * time.Second, BackoffMultiplier: 2}, cfg.Retry)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.APIEndpoint)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PLAYLISTGRAB_LOG_LEVEL", "debug")
	t.Setenv("PLAYLISTGRAB_LOG_FILE", "/tmp/playlistgrab.log")
	t.Setenv("PLAYLISTGRAB_RETRIES", "3")
	t.Setenv("PLAYLISTGRAB_RETRY_DELAY", "250ms")
	t.Setenv("PLAYLISTGRAB_RETRY_MAX_DELAY", "5s")
	t.Setenv("PLAYLISTGRAB_API_ENDPOINT", "http://localhost:8080/")

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/playlistgrab.log", cfg.LogFile)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Retry.InitialDelay)
	assert.Equal(t, 5*time.Second, cfg.Retry.MaxDelay)
	assert.Equal(t, "http://localhost:8080/", cfg.APIEndpoint)
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		param string
		value string
	}{
		{name: "level", param: "PLAYLISTGRAB_LOG_LEVEL", value: "loud"},
		{name: "retries not a number", param: "PLAYLISTGRAB_RETRIES", value: "many"},
		{name: "negative retries", param: "PLAYLISTGRAB_RETRIES", value: "-1"},
		{name: "delay", param: "PLAYLISTGRAB_RETRY_DELAY", value: "soon"},
		{name: "max delay", param: "PLAYLISTGRAB_RETRY_MAX_DELAY", value: "later"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PLAYLISTGRAB_LOG_LEVEL", "info")
			t.Setenv("PLAYLISTGRAB_RETRIES", "0")
			t.Setenv("PLAYLISTGRAB_RETRY_DELAY", "1s")
			t.Setenv("PLAYLISTGRAB_RETRY_MAX_DELAY", "30s")
			t.Setenv(tc.param, tc.value)

			_, err := loadConfig()

			assert.Error(t, err)
		})
	}
}
