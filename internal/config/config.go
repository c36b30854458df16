// Package config loads runtime settings from the environment, with an
// optional YAML file overlay for values not set in the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds everything main needs to wire the application together.
type Config struct {
	// Port is the TCP port the HTTP server binds to.
	Port string `yaml:"port"`

	// DatabaseURL is the Postgres DSN.
	DatabaseURL string `yaml:"database_url"`

	// SessionKey signs the session cookie payload. Must be non-empty; rotate it
	// to invalidate every outstanding session.
	SessionKey string `yaml:"session_key"`
}

var ErrMissingSessionKey = errors.New("config: SESSION_KEY is required")

// Load builds a Config from the environment, overlaying values from the YAML
// file named by CONFIG_FILE for any field the environment leaves empty.
//
// Environment variables:
//   - PORT: HTTP listen port (default "5050")
//   - DATABASE_URL: Postgres DSN
//   - SESSION_KEY: cookie signing secret
//   - CONFIG_FILE: optional path to a YAML overlay file
func Load() (Config, error) {
	cfg := Config{
		Port:        strings.TrimSpace(os.Getenv("PORT")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SessionKey:  os.Getenv("SESSION_KEY"),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if cfg.Port == "" {
		cfg.Port = "5050"
	}

	return cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Environment wins; the file only fills gaps.
	if cfg.Port == "" {
		cfg.Port = file.Port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = file.DatabaseURL
	}
	if cfg.SessionKey == "" {
		cfg.SessionKey = file.SessionKey
	}
	return nil
}

// Validate checks that required settings are present.
func (c Config) Validate() error {
	if c.SessionKey == "" {
		return ErrMissingSessionKey
	}
	return nil
}
