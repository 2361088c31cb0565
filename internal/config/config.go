package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "catalog.yml"

type Config struct {
	DatabaseURL string `yaml:"database_url"`
	KVTable     string `yaml:"kv_table"`
	StorageKey  string `yaml:"storage_key"`
	PageSize    int    `yaml:"page_size"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the configuration written by `catalog init`
func Default() *Config {
	return &Config{
		DatabaseURL: "sqlite://catalog.db",
		KVTable:     "_catalog_kv",
		StorageKey:  "products",
		PageSize:    8,
		LogLevel:    "warn",
	}
}

func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set defaults
	defaults := Default()
	if cfg.KVTable == "" {
		cfg.KVTable = defaults.KVTable
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = defaults.StorageKey
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = defaults.PageSize
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	// Resolve a relative SQLite path against the config file location
	if path, ok := strings.CutPrefix(cfg.DatabaseURL, "sqlite://"); ok && path != ":memory:" && path != "" && !filepath.IsAbs(path) {
		cfg.DatabaseURL = "sqlite://" + filepath.Join(filepath.Dir(configPath), path)
	}

	return &cfg, nil
}

// Write stores the config as YAML at configPath
func (c *Config) Write(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}
