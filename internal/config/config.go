// Package config assembles the client configuration by merging defaults, an
// optional JSON file, environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the top-level configuration for the flightbag client.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// Remote holds the remote backend endpoint and credentials.
	Remote Remote `envPrefix:"REMOTE_" json:"remote"`

	// Storage holds local database settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Sync holds sync engine and connectivity monitor settings.
	Sync Sync `envPrefix:"SYNC_" json:"sync"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Remote configures access to the remote backend.
type Remote struct {
	// BaseURL is the root of the remote REST API.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// APIKey is the project api key attached to every request.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY" json:"api_key"`

	// AccessToken is the bearer token issued by the identity provider. The
	// current user id is derived from its subject claim.
	// Env: REMOTE_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN" json:"access_token"`

	// RequestTimeout bounds every outbound remote call (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"-"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB contains the local database connection settings.
type DB struct {
	// DSN is the SQLite file path ( ":memory:" for an ephemeral store).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// Sync contains sync engine settings.
type Sync struct {
	// ProbeInterval is how often connectivity to the remote is probed.
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL" json:"-"`
}

func defaultConfig() *ClientConfig {
	return &ClientConfig{
		Remote: Remote{
			BaseURL:        "http://localhost:54321",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{DB: DB{DSN: "flightbag.db"}},
		Sync:    Sync{ProbeInterval: 30 * time.Second},
	}
}

// GetClientConfig builds and validates the merged client configuration.
func GetClientConfig() (*ClientConfig, error) {
	return buildClientConfig(parseFlags())
}

func buildClientConfig(flagCfg *ClientConfig) (*ClientConfig, error) {
	cfg := defaultConfig()

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	jsonPath := flagCfg.JSONFilePath
	if jsonPath == "" {
		jsonPath = envCfg.JSONFilePath
	}
	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			return nil, err
		}
		if err = mergo.Merge(cfg, jsonCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging json configs: %w", err)
		}
	}

	if err := mergo.Merge(cfg, envCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging env configs: %w", err)
	}
	if err := mergo.Merge(cfg, flagCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging flag configs: %w", err)
	}

	return cfg, cfg.validate()
}

func (c *ClientConfig) validate() error {
	if c.Remote.BaseURL == "" {
		return errors.New("config: remote base url is required")
	}
	if c.Storage.DB.DSN == "" {
		return errors.New("config: local database DSN is required")
	}
	if c.Remote.RequestTimeout <= 0 {
		return errors.New("config: request timeout must be positive")
	}
	if c.Sync.ProbeInterval <= 0 {
		return errors.New("config: probe interval must be positive")
	}
	return nil
}
