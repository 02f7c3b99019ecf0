// Package config reads the optional settings file for the xmfa
// program, normally ~/.config/xmfa/config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultWidth is the line width for fasta output if nobody says otherwise.
const DefaultWidth = 60

// Config mirrors the yaml file. Pointers distinguish "not set" from
// zero values.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // "text" or "json"
	Strict    *bool  `yaml:"strict"`
	LineWidth *int   `yaml:"line_width"`
}

// DefaultPath is where we look if no file is given. It is empty if
// there is no sensible user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "xmfa", "config.yaml")
}

// LoadDefault reads the file at DefaultPath. Most people have none,
// so a missing file gives a zero Config and no error.
func LoadDefault() (Config, error) {
	path := DefaultPath()
	if path == "" {
		return Config{}, nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// Load reads the config file at path. The file must exist and parse.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if cfg.LineWidth != nil && *cfg.LineWidth < 1 {
		return Config{}, fmt.Errorf("config file %s: line_width must be positive, got %d", path, *cfg.LineWidth)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return Config{}, fmt.Errorf("config file %s: log_format %q is not text or json", path, cfg.LogFormat)
	}
	return cfg, nil
}

// Width returns the configured line width or the default.
func (c Config) Width() int {
	if c.LineWidth == nil {
		return DefaultWidth
	}
	return *c.LineWidth
}

// IsStrict says if strict reading was asked for.
func (c Config) IsStrict() bool { return c.Strict != nil && *c.Strict }
