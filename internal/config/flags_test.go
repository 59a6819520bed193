package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlagsFrom_AllFlags(t *testing.T) {
	cfg := parseFlagsFrom([]string{
		"-r", "https://api.example.com",
		"-k", "api-key",
		"-t", "access-token",
		"-d", "/data/flightbag.db",
		"-c", "/etc/flightbag.json",
		"-request-timeout", "30s",
		"-probe-interval", "1m",
	})

	assert.Equal(t, "https://api.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, "api-key", cfg.Remote.APIKey)
	assert.Equal(t, "access-token", cfg.Remote.AccessToken)
	assert.Equal(t, "/data/flightbag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/flightbag.json", cfg.JSONFilePath)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Sync.ProbeInterval)
}

func TestParseFlagsFrom_ConfigAlias(t *testing.T) {
	cfg := parseFlagsFrom([]string{"-config", "/etc/flightbag.json"})

	assert.Equal(t, "/etc/flightbag.json", cfg.JSONFilePath)
}

func TestParseFlagsFrom_NoFlags(t *testing.T) {
	cfg := parseFlagsFrom(nil)

	assert.Empty(t, cfg.Remote.BaseURL)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Remote.RequestTimeout)
	assert.Zero(t, cfg.Sync.ProbeInterval)
}
