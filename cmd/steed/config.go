package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	traceText = "text"
	traceYAML = "yaml"
	traceNone = "none"
)

// Config holds the driver settings, read from a YAML file and overridden by
// command line flags.
type Config struct {
	Source   string `yaml:"source"`
	Trace    string `yaml:"trace"`
	MaxDepth int    `yaml:"max_depth"`
	Debug    bool   `yaml:"debug"`
}

func defaultConfig() *Config {
	return &Config{
		Trace:    traceText,
		MaxDepth: 1000,
	}
}

// LoadConfig parses a YAML config file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(conf); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	switch c.Trace {
	case traceText, traceYAML, traceNone:
	default:
		return fmt.Errorf("config: unknown trace format %q", c.Trace)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must not be negative")
	}
	return nil
}
