// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Default values used when neither config file nor environment provide one.
const (
	DefaultBaseURL     = "http://localhost:3003"
	DefaultEnvironment = "development"
	DefaultTimeoutSecs = 30
)

// Config represents the CLI configuration. Values come from a JSON config
// file, then SOURCER_* environment variables, then defaults.
type Config struct {
	// Backend
	BaseURL     string `json:"base_url,omitempty"`     // Backend base URL
	Environment string `json:"environment,omitempty"`  // development, test, staging or production
	TimeoutSecs int    `json:"timeout_secs,omitempty"` // HTTP timeout in seconds

	// Local state
	TokenPath   string `json:"token_path,omitempty"`   // Bearer-token file
	SessionPath string `json:"session_path,omitempty"` // Working-list session file

	// Advert pipeline
	PipelineKey string `json:"pipeline_key,omitempty"` // CRM pipeline for advert boxes
	BoxStageKey string `json:"box_stage_key,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// Load reads configuration from an optional JSON file, overlays environment
// variables, and fills remaining gaps with defaults. An empty path skips the
// file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overlays SOURCER_* environment variables onto the config.
// Environment wins over the file so deployments can override checked-in
// config.
func (c *Config) applyEnv() {
	if v := os.Getenv("SOURCER_API_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SOURCER_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("SOURCER_TOKEN_PATH"); v != "" {
		c.TokenPath = v
	}
	if v := os.Getenv("SOURCER_SESSION_PATH"); v != "" {
		c.SessionPath = v
	}
	if v := os.Getenv("SOURCER_PIPELINE_KEY"); v != "" {
		c.PipelineKey = v
	}
	if v := os.Getenv("SOURCER_BOX_STAGE_KEY"); v != "" {
		c.BoxStageKey = v
	}
	if v := os.Getenv("SOURCER_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.TimeoutSecs = secs
		}
	}
}

func (c *Config) applyDefaults() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	if c.TimeoutSecs == 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.TokenPath == "" || c.SessionPath == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to resolve user config directory: %w", err)
		}
		if c.TokenPath == "" {
			c.TokenPath = filepath.Join(base, "sourcer", "token")
		}
		if c.SessionPath == "" {
			c.SessionPath = filepath.Join(base, "sourcer", "session.json")
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "test", "staging", "production":
	default:
		return fmt.Errorf("config error: unknown environment %q", c.Environment)
	}
	if c.TimeoutSecs < 0 {
		return fmt.Errorf("config error: 'timeout_secs' must be non-negative")
	}
	return nil
}
