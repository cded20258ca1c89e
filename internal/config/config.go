// Package config loads tsdoctor configuration from the inspected project.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project configuration file, looked up
// in the project root.
const ConfigFileName = ".tsdoctor.yaml"

// Config represents tsdoctor configuration options.
type Config struct {
	// SourceDir is the directory scanned for type-safety smells,
	// relative to the project root.
	SourceDir string `yaml:"source_dir"`

	// TscCommand is the argument vector used to invoke the TypeScript
	// compiler (mode flags are appended per check).
	TscCommand []string `yaml:"tsc_command"`

	// NodeCommand is the argument vector used to query the runtime version.
	NodeCommand []string `yaml:"node_command"`

	// GrepCommand is the argument vector used for source tree searches.
	GrepCommand []string `yaml:"grep_command"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		SourceDir:   "src",
		TscCommand:  []string{"npx", "tsc"},
		NodeCommand: []string{"node"},
		GrepCommand: []string{"grep"},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Empty values fall back to defaults so a partial file stays usable.
	defaults := DefaultConfig()
	if cfg.SourceDir == "" {
		cfg.SourceDir = defaults.SourceDir
	}
	if len(cfg.TscCommand) == 0 {
		cfg.TscCommand = defaults.TscCommand
	}
	if len(cfg.NodeCommand) == 0 {
		cfg.NodeCommand = defaults.NodeCommand
	}
	if len(cfg.GrepCommand) == 0 {
		cfg.GrepCommand = defaults.GrepCommand
	}

	return cfg, nil
}
