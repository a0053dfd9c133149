// Package config loads the ctidy configuration file.
// The config governs ambient behavior only: output format, severity
// threshold, skipped directories, and engine toggles. The style rules
// themselves are fixed and cannot be configured.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR} or ${VAR:-default} patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Config represents the complete ctidy configuration
type Config struct {
	Version int     `yaml:"version"`
	Engines Engines `yaml:"engines"`

	// Global settings
	Format            string   `yaml:"format,omitempty"`
	SeverityThreshold string   `yaml:"severity_threshold,omitempty"`
	SkipDirs          []string `yaml:"skip_dirs,omitempty"`
}

// Engines configuration for each engine
type Engines struct {
	Fmt   EngineConfig `yaml:"fmt"`
	Style EngineConfig `yaml:"style"`
}

// EngineConfig represents configuration for a single engine
type EngineConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load loads the configuration from the specified path
func Load(path string) (*Config, error) {
	if path == "" {
		path = ".ctidy.yaml"
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	// Expand environment variables in the config
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars expands environment variables in the config content
// Supports ${VAR} and ${VAR:-default} syntax
func expandEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		// Extract the variable expression (without ${ and })
		expr := match[2 : len(match)-1]

		// Check for default value syntax: VAR:-default
		if idx := strings.Index(expr, ":-"); idx != -1 {
			varName := expr[:idx]
			defaultVal := expr[idx+2:]

			if val := os.Getenv(varName); val != "" {
				return val
			}
			return defaultVal
		}

		// Simple variable: ${VAR}
		return os.Getenv(expr)
	})
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Version == 0 {
		c.Version = 1
	}

	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}

	// Validate output format
	if c.Format != "" {
		validFormats := map[string]bool{
			"text":         true,
			"json":         true,
			"json-compact": true,
			"sarif":        true,
		}
		if !validFormats[c.Format] {
			return fmt.Errorf("invalid format: %s (must be text, json, json-compact, or sarif)", c.Format)
		}
	}

	// Validate severity threshold
	if c.SeverityThreshold != "" {
		validSeverities := map[string]bool{
			"error":   true,
			"warning": true,
			"info":    true,
		}
		if !validSeverities[c.SeverityThreshold] {
			return fmt.Errorf("invalid severity_threshold: %s (must be error, warning, or info)", c.SeverityThreshold)
		}
	}

	for _, dir := range c.SkipDirs {
		if dir == "" {
			return fmt.Errorf("skip_dirs entry cannot be empty")
		}
	}

	return nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Engines: Engines{
			Fmt:   EngineConfig{Enabled: true},
			Style: EngineConfig{Enabled: true},
		},
		Format:            "text",
		SeverityThreshold: "warning",
	}
}
