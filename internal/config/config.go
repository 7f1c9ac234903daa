package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type StorageType string

const (
	StorageMemory StorageType = "memory"
	StorageSQLite StorageType = "sqlite"
)

// HashConfig selects the hash parameters used for fingerprints.
// Seed accepts any integer; it is truncated to 32 bits when used.
type HashConfig struct {
	Seed              int64 `yaml:"seed"`
	RemoveWhitespaces bool  `yaml:"remove_whitespaces"`
}

type StorageConfig struct {
	Type       StorageType `yaml:"type"`
	SQLitePath string      `yaml:"sqlite_path"`
}

type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

type Config struct {
	Hash    HashConfig    `yaml:"hash"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// Default returns the configuration used when no file is given:
// seed 0, no whitespace removal, in-memory storage, text logs at info.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Type: StorageMemory},
		Log:     LogConfig{Format: "text", Level: "info"},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML configuration data on top of Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Storage.Type != StorageMemory && cfg.Storage.Type != StorageSQLite {
		cfg.Storage.Type = StorageMemory
	}
	if cfg.Storage.Type == StorageSQLite && cfg.Storage.SQLitePath == "" {
		return nil, fmt.Errorf("sqlite storage requires sqlite_path")
	}

	return cfg, nil
}
