// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config holds the immutable process-wide configuration for the
// Runn MCP server: upstream credentials, the API base URL, and the
// pagination and timeout bounds.
//
// Configuration is assembled once at startup from three layers, later
// layers winning: built-in defaults, an optional YAML file, and
// environment variables. The resulting Config value is never mutated
// after Load returns; it is threaded explicitly into the components that
// need it rather than read from ambient globals.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied before any file or environment overlay.
const (
	DefaultBaseURL     = "https://api.runn.io"
	DefaultMaxPages    = 200
	DefaultHTTPTimeout = 30 * time.Second
)

// Environment variable names recognized by Load.
const (
	EnvAPIKey        = "RUNN_API_KEY"
	EnvBaseURL       = "RUNN_BASE_URL"
	EnvMaxPages      = "RUNN_MAX_PAGES"
	EnvHTTPTimeout   = "RUNN_HTTP_TIMEOUT"
	EnvStrictRecords = "RUNN_STRICT_RECORDS"
)

// ErrMissingAPIKey is returned by Validate when no Runn API key was
// configured through any layer.
var ErrMissingAPIKey = errors.New("config: " + EnvAPIKey + " not set")

// Config is the process-wide configuration. Immutable after Load.
type Config struct {
	// APIKey is the Runn bearer token, usually a LIVE_... key.
	APIKey string

	// BaseURL is the upstream API root, without a trailing slash.
	BaseURL string

	// MaxPages bounds every pagination loop. A misbehaving upstream that
	// keeps returning cursors fails the operation instead of looping
	// forever.
	MaxPages int

	// HTTPTimeout bounds each individual upstream request. It is not a
	// whole-invocation deadline; a 40-page listing may take 40 times this.
	HTTPTimeout time.Duration

	// StrictRecords makes filtering and aggregation fail on malformed
	// records instead of silently skipping them.
	StrictRecords bool
}

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	APIKey        string `yaml:"api_key"`
	BaseURL       string `yaml:"base_url"`
	MaxPages      int    `yaml:"max_pages"`
	HTTPTimeout   string `yaml:"http_timeout"`
	StrictRecords *bool  `yaml:"strict_records"`
}

// Load assembles the configuration. path may be empty, in which case only
// defaults and environment variables apply. Load does not require an API
// key to be present; commands that talk to the upstream call Validate.
func Load(path string) (*Config, error) {
	cfg := &Config{
		BaseURL:     DefaultBaseURL,
		MaxPages:    DefaultMaxPages,
		HTTPTimeout: DefaultHTTPTimeout,
	}

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.MaxPages <= 0 {
		return nil, fmt.Errorf("config: max pages must be positive, got %d", cfg.MaxPages)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("config: http timeout must be positive, got %s", cfg.HTTPTimeout)
	}
	cfg.BaseURL = trimSlash(cfg.BaseURL)
	return cfg, nil
}

// Validate checks that the configuration is sufficient to call the
// upstream API.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if fc.APIKey != "" {
		c.APIKey = fc.APIKey
	}
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.MaxPages != 0 {
		c.MaxPages = fc.MaxPages
	}
	if fc.HTTPTimeout != "" {
		d, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("config: http_timeout in %s: %w", path, err)
		}
		c.HTTPTimeout = d
	}
	if fc.StrictRecords != nil {
		c.StrictRecords = *fc.StrictRecords
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvMaxPages); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvMaxPages, err)
		}
		c.MaxPages = n
	}
	if v := os.Getenv(EnvHTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvHTTPTimeout, err)
		}
		c.HTTPTimeout = d
	}
	if v := os.Getenv(EnvStrictRecords); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvStrictRecords, err)
		}
		c.StrictRecords = b
	}
	return nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
