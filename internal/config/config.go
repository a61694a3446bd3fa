// Package config loads the tabprint CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabprint"
)

// AppName is the application name used for the config directory.
const AppName = "tabprint"

// Config holds CLI configuration. Empty fields leave the defaults alone.
type Config struct {
	Input  string      `yaml:"input,omitempty" toml:"input"`   // csv, tsv, json, yaml
	Output string      `yaml:"output,omitempty" toml:"output"` // any tabprint format
	Style  StyleConfig `yaml:"style,omitempty" toml:"style"`
}

// StyleConfig is the textual form of a tabprint.Style.
type StyleConfig struct {
	Column  string `yaml:"column,omitempty" toml:"column"`
	Rule    string `yaml:"rule,omitempty" toml:"rule"`
	Cross   string `yaml:"cross,omitempty" toml:"cross"`
	Newline string `yaml:"newline,omitempty" toml:"newline"` // lf, crlf, native
	Measure string `yaml:"measure,omitempty" toml:"measure"` // bytes, runes, cells
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultPath returns the default config file path
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path. A missing file yields an empty config.
// Files ending in .toml are parsed as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Apply returns base with every non-empty setting of s applied.
func (s StyleConfig) Apply(base tabprint.Style) (tabprint.Style, error) {
	chars := []struct {
		value string
		dst   *rune
	}{
		{s.Column, &base.Column},
		{s.Rule, &base.Rule},
		{s.Cross, &base.Cross},
	}
	for _, c := range chars {
		if c.value == "" {
			continue
		}
		r, err := tabprint.ParseChar(c.value)
		if err != nil {
			return base, err
		}
		*c.dst = r
	}
	if s.Newline != "" {
		nl, err := tabprint.ParseNewline(s.Newline)
		if err != nil {
			return base, err
		}
		base.Newline = nl
	}
	if s.Measure != "" {
		m, err := tabprint.ParseMeasure(s.Measure)
		if err != nil {
			return base, err
		}
		base.Measure = m
	}
	return base, nil
}

// Merge returns s with the non-empty fields of override applied on top.
func (s StyleConfig) Merge(override StyleConfig) StyleConfig {
	pick := func(a, b string) string {
		if b != "" {
			return b
		}
		return a
	}
	return StyleConfig{
		Column:  pick(s.Column, override.Column),
		Rule:    pick(s.Rule, override.Rule),
		Cross:   pick(s.Cross, override.Cross),
		Newline: pick(s.Newline, override.Newline),
		Measure: pick(s.Measure, override.Measure),
	}
}
