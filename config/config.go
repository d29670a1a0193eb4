// Package config loads the tracker configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete tracker configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	CTY      CTYConfig      `yaml:"cty"`
	Recorder RecorderConfig `yaml:"recorder"`
	UI       UIConfig       `yaml:"ui"`
	Export   ExportConfig   `yaml:"export"`
}

// LogConfig locates the ADIF log to analyze.
type LogConfig struct {
	Path        string `yaml:"path"`
	DefaultBand string `yaml:"default_band"`
}

// CTYConfig locates the optional CTY prefix database used to derive DXCC
// entities for records that lack a DXCC tag.
type CTYConfig struct {
	Path string `yaml:"path"`
}

// RecorderConfig controls the optional run-history database. The recorder is
// write-only telemetry; aggregation never reads it.
type RecorderConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// UIConfig contains display settings.
type UIConfig struct {
	EnableMouse bool `yaml:"enable_mouse"`
	ShowCodes   bool `yaml:"show_codes"`
}

// ExportConfig contains defaults for the export commands.
type ExportConfig struct {
	TextPath string `yaml:"text_path"`
	HTMLPath string `yaml:"html_path"`
	JSONPath string `yaml:"json_path"`
}

// Load loads configuration from a YAML file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Recorder: RecorderConfig{DBPath: "data/history.db"},
		UI:       UIConfig{ShowCodes: true},
	}
}

// Print displays the configuration.
func (c *Config) Print() {
	fmt.Printf("Log: %s\n", c.Log.Path)
	if c.Log.DefaultBand != "" {
		fmt.Printf("Default band: %s\n", c.Log.DefaultBand)
	}
	if c.CTY.Path != "" {
		fmt.Printf("CTY database: %s\n", c.CTY.Path)
	}
	if c.Recorder.Enabled {
		fmt.Printf("Recorder: %s\n", c.Recorder.DBPath)
	}
}
