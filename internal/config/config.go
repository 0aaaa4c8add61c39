// Package config loads tracker configuration from an HCL file, falling back
// to defaults when the file does not exist.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete tracker configuration.
type Config struct {
	Tracker TrackerSettings `hcl:"tracker,block"`
}

// TrackerSettings contains tracker-level configuration.
type TrackerSettings struct {
	DBPath      string `hcl:"db_path,optional"`
	HeroID      string `hcl:"hero_id,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	TagMinHands int    `hcl:"tag_min_hands,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Tracker: TrackerSettings{
			DBPath:      "handtrack.db",
			HeroID:      "EJd9KHwjJa",
			LogLevel:    "info",
			TagMinHands: 10,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a malformed one is an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	def := Default()
	if cfg.Tracker.DBPath == "" {
		cfg.Tracker.DBPath = def.Tracker.DBPath
	}
	if cfg.Tracker.HeroID == "" {
		cfg.Tracker.HeroID = def.Tracker.HeroID
	}
	if cfg.Tracker.LogLevel == "" {
		cfg.Tracker.LogLevel = def.Tracker.LogLevel
	}
	if cfg.Tracker.TagMinHands == 0 {
		cfg.Tracker.TagMinHands = def.Tracker.TagMinHands
	}

	return &cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Tracker.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.Tracker.TagMinHands < 0 {
		return fmt.Errorf("tag_min_hands must not be negative")
	}
	switch c.Tracker.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.Tracker.LogLevel)
	}
	return nil
}
