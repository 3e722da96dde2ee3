// Package config loads viewer settings from jx.yml. The file is searched
// upward from the working directory, then in the user config directory; a
// missing file means defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sqwxl/jx/errors"
)

// Config holds the user-tunable viewer settings.
type Config struct {
	// Theme selects the color palette ("kanagawa" or "terminal").
	Theme string `yaml:"theme"`
	// Indent is the number of spaces per nesting level.
	Indent int `yaml:"indent"`
	// Wrap enables value wrapping at startup.
	Wrap bool `yaml:"wrap"`
	// Numbers enables line numbering at startup.
	Numbers bool `yaml:"numbers"`
	// Keys rebinds commands, keyed by snake_case command name, e.g.
	// "next_result: [m]".
	Keys map[string][]string `yaml:"keys"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:  "kanagawa",
		Indent: 2,
	}
}

// Load reads the config file at path, or the discovered default when path
// is empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigInvalid(path, err)
	}
	return LoadFromBytes(path, data)
}

// LoadFromBytes parses config data, filling unset fields with defaults.
func LoadFromBytes(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigInvalid(path, err)
	}
	if cfg.Indent <= 0 {
		cfg.Indent = 2
	}
	if cfg.Theme == "" {
		cfg.Theme = "kanagawa"
	}
	return cfg, nil
}

const configName = "jx.yml"

// findConfigFile walks up from the working directory, then falls back to
// the user config directory.
func findConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err == nil {
		for {
			candidate := filepath.Join(dir, configName)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	confDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.New(errors.ErrCodeConfigNotFound, "no config file found")
	}
	candidate := filepath.Join(confDir, "jx", configName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", errors.New(errors.ErrCodeConfigNotFound, "no config file found")
}
