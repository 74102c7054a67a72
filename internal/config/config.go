// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all agenda configuration.
type Config struct {
	Seed    Seed    `yaml:"seed"`
	Log     Log     `yaml:"log"`
	Display Display `yaml:"display"`
}

// Seed holds where the initial profiles come from.
type Seed struct {
	Dir string `yaml:"dir"` // profiles.yaml here overrides the embedded seed
}

// Log holds logger settings.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	File  string `yaml:"file"`  // Empty disables logging.
}

// Display holds output settings.
type Display struct {
	Plain bool `yaml:"plain"` // Print listings instead of opening the dashboard.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Seed: Seed{
			Dir: ".agenda",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load merges the implicit layers, which may be missing, and then the
// explicit file, which must exist. An empty explicit path is skipped.
func Load(explicit string, implicit ...string) (*Config, error) {
	paths := slices.Clone(implicit)
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", explicit, err)
		}
		paths = append(paths, explicit)
	}
	return LoadLayered(paths...)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Seed.Dir == "" {
		return errors.New("config: seed.dir cannot be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: AGENDA_SEED_DIR, AGENDA_LOG_LEVEL, AGENDA_LOG_FILE, AGENDA_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("AGENDA_SEED_DIR"); v != "" {
		c.Seed.Dir = v
	}
	if v := os.Getenv("AGENDA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("AGENDA_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("AGENDA_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid AGENDA_PLAIN %q: %w", v, err)
		}
		c.Display.Plain = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Seed    *rawSeed    `yaml:"seed"`
	Log     *rawLog     `yaml:"log"`
	Display *rawDisplay `yaml:"display"`
}

type rawSeed struct {
	Dir *string `yaml:"dir"`
}

type rawLog struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

type rawDisplay struct {
	Plain *bool `yaml:"plain"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Seed != nil && layer.Seed.Dir != nil {
		c.Seed.Dir = *layer.Seed.Dir
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
	}
	if layer.Display != nil && layer.Display.Plain != nil {
		c.Display.Plain = *layer.Display.Plain
	}
}
