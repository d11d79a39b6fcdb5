// Package config holds the configuration of the ringo command-line tool.
package config

import (
	"fmt"
	"os"
	"slices"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Backends lists the coefficient backends selectable by name.
var Backends = []string{"bigint", "rat", "float", "float64", "complex", "int64", "uint128", "fr"}

// Config represents the configuration of the ringo tool.
type Config struct {
	// Backend is the coefficient type polynomials are parsed into.
	Backend string `yaml:"backend"`

	// LogLevel is a logrus level name, e.g. "info" or "debug".
	LogLevel string `yaml:"log_level"`

	// Seed seeds random sampling. Zero means a fresh seed from crypto/rand.
	Seed uint64 `yaml:"seed"`

	// MaxSearchAttempts bounds the number of candidates tried by find-irreducible.
	MaxSearchAttempts int `yaml:"max_search_attempts"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend:           "bigint",
		LogLevel:          "info",
		Seed:              0,
		MaxSearchAttempts: 1000,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(Backends, c.Backend) {
		return fmt.Errorf("backend must be one of %v, got %q", Backends, c.Backend)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if c.MaxSearchAttempts <= 0 {
		return fmt.Errorf("max search attempts must be positive, got %d", c.MaxSearchAttempts)
	}

	return nil
}

// Level returns the logrus level of the configuration.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Parse parses a YAML document on top of the default configuration and validates it.
// Missing keys keep their default values.
func Parse(data []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
