// Package config provides configuration loading and validation for the
// matching service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents service configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Concurrency int    `json:"concurrency,omitempty"`  // Parallel scoring bound for ranking

	// Vocabulary overrides the skill extraction vocabulary.
	Vocabulary []string `json:"vocabulary,omitempty"`
	// FallbackSkills overrides the gap analyzer's empty-extraction
	// fallback set; an empty list disables the fallback.
	FallbackSkills []string `json:"fallback_skills,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Port: 8080}
}

// Load loads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config. Environment
// values win over file values so deployments can override without editing
// files.
func (c *Config) ApplyEnv() error {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.DatabaseURL = url
	}
	if port := os.Getenv("PORT"); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT value %q: %w", port, err)
		}
		c.Port = parsed
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	return nil
}
