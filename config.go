package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"ewintr.nl/playlistgrab/export"
	"golang.org/x/exp/slog"
)

type config struct {
	LogLevel    slog.Level
	LogFile     string
	APIEndpoint string
	Retry       export.RetryConfig
}

func loadConfig() (config, error) {
	cfg := config{
		LogFile:     getParam("PLAYLISTGRAB_LOG_FILE", ""),
		APIEndpoint: getParam("PLAYLISTGRAB_API_ENDPOINT", ""),
		Retry:       export.RetryConfig{BackoffMultiplier: 2},
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getParam("PLAYLISTGRAB_LOG_LEVEL", "warn"))); err != nil {
		return config{}, fmt.Errorf("invalid PLAYLISTGRAB_LOG_LEVEL: %w", err)
	}

	retries, err := strconv.Atoi(getParam("PLAYLISTGRAB_RETRIES", "0"))
	if err != nil || retries < 0 {
		return config{}, fmt.Errorf("invalid PLAYLISTGRAB_RETRIES: %q", getParam("PLAYLISTGRAB_RETRIES", "0"))
	}
	cfg.Retry.MaxRetries = retries

	if cfg.Retry.InitialDelay, err = time.ParseDuration(getParam("PLAYLISTGRAB_RETRY_DELAY", "1s")); err != nil {
		return config{}, fmt.Errorf("invalid PLAYLISTGRAB_RETRY_DELAY: %w", err)
	}
	if cfg.Retry.MaxDelay, err = time.ParseDuration(getParam("PLAYLISTGRAB_RETRY_MAX_DELAY", "30s")); err != nil {
		return config{}, fmt.Errorf("invalid PLAYLISTGRAB_RETRY_MAX_DELAY: %w", err)
	}

	return cfg, nil
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
