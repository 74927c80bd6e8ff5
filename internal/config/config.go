// Package config provides configuration management for the curricula
// CLI using Viper for flexible loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files (.curricula.yml),
// environment variable overrides with the CURRICULA_ prefix, and
// validation of paths and output formats.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Content Content `yaml:"content" mapstructure:"content"`
	Output  Output  `yaml:"output" mapstructure:"output"`
	Log     Log     `yaml:"log" mapstructure:"log"`
	Preview Preview `yaml:"preview" mapstructure:"preview"`
}

// Content selects where phase modules come from. With no Dir set, the
// corpus embedded in the binary is used.
type Content struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

type Output struct {
	Format string `yaml:"format" mapstructure:"format"`
}

type Log struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Preview configures the content-authoring preview mode.
type Preview struct {
	DebounceMillis int `yaml:"debounce_millis" mapstructure:"debounce_millis"`
}

// Load materializes configuration from viper state and applies
// defaults and validation.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Workaround for viper string handling when keys are set without
	// being present in the unmarshal source.
	if viper.IsSet("content.dir") && config.Content.Dir == "" {
		config.Content.Dir = viper.GetString("content.dir")
	}

	if config.Output.Format == "" {
		config.Output.Format = "table"
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
	if config.Preview.DebounceMillis <= 0 {
		config.Preview.DebounceMillis = 300
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values for security and
// correctness.
func validateConfig(config *Config) error {
	if config.Content.Dir != "" {
		if err := validatePath(config.Content.Dir); err != nil {
			return fmt.Errorf("content dir: %w", err)
		}
	}

	validFormats := map[string]bool{"table": true, "json": true, "yaml": true}
	if !validFormats[config.Output.Format] {
		return fmt.Errorf("output format %q must be one of: table, json, yaml", config.Output.Format)
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[config.Log.Format] {
		return fmt.Errorf("log format %q must be one of: text, json", config.Log.Format)
	}

	return nil
}

// validatePath validates a file path for security.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
