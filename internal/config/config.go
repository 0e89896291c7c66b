// Package config holds configuration of the tgff console utility.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config holds the complete utility configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	Input  InputConfig  `toml:"input"`
}

type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=text json"`
}

type OutputConfig struct {
	Format string `toml:"format" validate:"oneof=json yaml summary"`
	Indent int    `toml:"indent" validate:"min=0,max=8"`
}

type InputConfig struct {
	// MaxSize limits input file size in bytes, larger files are rejected before parsing.
	MaxSize int64 `toml:"max_size" validate:"min=1"`
}

// Default returns configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "json",
			Indent: 2,
		},
		Input: InputConfig{
			MaxSize: 64 << 20,
		},
	}
}

// Load reads TOML file over the default configuration.
// Empty path returns the default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %s", undecoded[0])
	}

	return cfg.Validate()
}

var validate = validator.New()

// Validate checks that all values are in range.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
