package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the settings from a YAML file.
func LoadFile(path string) (*Config, error) {
	cfg, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Load reads the settings file at path. An empty path means the default
// location, where a missing file falls back to Default.
func Load(path string) (*Config, error) {
	return loadWithFallback(path, LoadFile, Default)
}

// LoadKeysFile reads only the keys section of a settings file. Provider and
// ssh settings are neither defaulted nor validated.
func LoadKeysFile(path string) (*KeysConfig, error) {
	cfg, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	keys := cfg.Keys
	keys.ApplyDefaults()

	if err := keys.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &keys, nil
}

// LoadKeys is Load for the keys section alone.
func LoadKeys(path string) (*KeysConfig, error) {
	return loadWithFallback(path, LoadKeysFile, DefaultKeys)
}

func loadWithFallback[T any](path string, load func(string) (*T, error), fallback func() *T) (*T, error) {
	if path != "" {
		return load(path)
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		return fallback(), nil
	}

	cfg, err := load(defaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fallback(), nil
	}
	return cfg, err
}

func parseFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return &cfg, nil
}
