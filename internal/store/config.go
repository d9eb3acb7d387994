package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputDir       = "."
	DefaultOutputFormat    = "markdown"
	DefaultTimestampFormat = "2006-01-02 15:04:05"
)

type Config struct {
	Output struct {
		Dir             string `yaml:"dir"`
		Format          string `yaml:"format"`
		TimestampFormat string `yaml:"timestamp_format"`
	} `yaml:"output"`
}

// Default returns a config with every default applied.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Output.TimestampFormat == "" {
		c.Output.TimestampFormat = DefaultTimestampFormat
	}
}

func (c *Config) Validate() error {
	if c.Output.Format != "markdown" && c.Output.Format != "json" {
		return fmt.Errorf("invalid output.format '%s': must be 'markdown' or 'json'", c.Output.Format)
	}
	if c.Output.Dir == "" {
		return errors.New("output.dir cannot be empty")
	}
	return nil
}

// LoadConfig reads the YAML config at path. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
