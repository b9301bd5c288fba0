// Package config loads the wetreport CLI configuration file.
//
// The configuration is a small YAML document:
//
//	results:
//	  - "**/wetresult*.xml"
//	reports:
//	  - "**/wetreport*.html"
//	allow_empty: false
//	database: .wetreport/history.db
//
// Absent fields fall back to defaults; an explicitly empty results list is
// rejected.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied for absent fields.
const (
	DefaultResultPattern = "**/wetresult*.xml"
	DefaultDatabase      = ".wetreport/history.db"
)

// Config holds the CLI settings.
type Config struct {
	// Results are the glob patterns selecting result files to parse.
	Results []string `yaml:"results"`

	// Reports are optional glob patterns selecting report files to
	// record alongside the parsed results.
	Reports []string `yaml:"reports,omitempty"`

	// AllowEmpty permits a run that matches no result files.
	AllowEmpty bool `yaml:"allow_empty"`

	// Database is the path of the history database.
	Database string `yaml:"database,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Results:  []string{DefaultResultPattern},
		Database: DefaultDatabase,
	}
}

// Load reads and validates a configuration file. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Results == nil {
		c.Results = []string{DefaultResultPattern}
	}
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
}

func (c *Config) validate() error {
	if len(c.Results) == 0 {
		return errors.New("results must list at least one pattern")
	}
	for _, p := range c.Results {
		if p == "" {
			return errors.New("results must not contain empty patterns")
		}
	}
	return nil
}
