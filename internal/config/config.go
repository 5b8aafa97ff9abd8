// Package config loads pwgen settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"pwgen/internal/generator"
)

const (
	// PathEnv overrides the config file location (for testing).
	PathEnv = "PWGEN_CONFIG"
	// DefaultPath is the config file location relative to the user's home.
	DefaultPath = ".pwgen/config.yaml"

	LengthEnv      = "PWGEN_LENGTH"
	ModeEnv        = "PWGEN_MODE"
	HistorySizeEnv = "PWGEN_HISTORY_SIZE"
	// EndpointEnv is the standard OTLP endpoint variable.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

	DefaultLength    = 12
	DefaultMaxLength = 32
)

// Config holds the user-tunable settings.
type Config struct {
	Length       int            `yaml:"length"`
	Mode         generator.Mode `yaml:"mode"`
	HistorySize  int            `yaml:"history_size"`
	MaxLength    int            `yaml:"max_length"`
	OTLPEndpoint string         `yaml:"otlp_endpoint"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Length:      DefaultLength,
		Mode:        generator.Full,
		HistorySize: generator.DefaultCapacity,
		MaxLength:   DefaultMaxLength,
	}
}

// Path returns the config file location: $PWGEN_CONFIG if set, otherwise
// ~/.pwgen/config.yaml.
func Path() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultPath), nil
}

// Load reads the config file at Path, then applies environment overrides.
// A missing file yields the defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := LoadFile(p)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads settings from path over the defaults. Keys absent from the
// file keep their default values.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up via lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(LengthEnv); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", LengthEnv, err)
		}
		c.Length = n
	}
	if v, ok := lookup(ModeEnv); ok && v != "" {
		c.Mode = generator.Mode(v)
	}
	if v, ok := lookup(HistorySizeEnv); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", HistorySizeEnv, err)
		}
		c.HistorySize = n
	}
	if v, ok := lookup(EndpointEnv); ok {
		c.OTLPEndpoint = v
	}
	return nil
}

// Validate normalizes Mode and reports the first invalid setting.
func (c *Config) Validate() error {
	m, err := generator.ParseMode(string(c.Mode))
	if err != nil {
		return fmt.Errorf("config mode: %w", err)
	}
	c.Mode = m
	if c.MaxLength < generator.MinLength {
		return fmt.Errorf("config max_length %d: %w", c.MaxLength, generator.ErrInvalidLength)
	}
	if c.Length < generator.MinLength || c.Length > c.MaxLength {
		return fmt.Errorf("config length %d outside [%d, %d]: %w",
			c.Length, generator.MinLength, c.MaxLength, generator.ErrInvalidLength)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("config history_size %d: must be at least 1", c.HistorySize)
	}
	return nil
}
