// Package config loads the pathtrace application configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "pathtrace.yaml"

// ErrInvalidConfig wraps every validation or parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the top-level application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ServerConfig configures `pathtrace serve`.
type ServerConfig struct {
	Addr  string `yaml:"addr" validate:"required"`
	Graph string `yaml:"graph"` // optional graph document, hot-reloaded
}

// OutputConfig configures `pathtrace run`.
type OutputConfig struct {
	Color  string `yaml:"color" validate:"oneof=auto always never"`
	Format string `yaml:"format" validate:"oneof=table json"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{Addr: ":8080"},
		Output: OutputConfig{Color: "auto", Format: "table"},
	}
}

// Validate checks struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Parse decodes YAML over the defaults, so omitted keys keep their default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path. A missing file is not an error when optional is true:
// the defaults are returned instead.
func Load(path string, optional bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}

	return Parse(data)
}
