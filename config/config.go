// Package config loads the optional .lsq.yml configuration file.
//
// Configuration only carries defaults that flags can override, so a
// missing file is not an error. Files are searched in the working
// directory first, then the user's home directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file name searched for in the working and
// home directories.
const ConfigFileName = ".lsq.yml"

// Config represents the tool configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Format string `yaml:"format"` // "table", "json", "csv" or "parquet"
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: "table"},
		Log:    LogConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a file. Keys the file leaves out
// keep their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FindConfig returns the path of the nearest config file, checking the
// working directory and then the home directory. An empty path means
// no config file exists.
func FindConfig() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}

	return ""
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "table", "json", "csv", "parquet":
	default:
		return fmt.Errorf("unknown output format: %s", c.Output.Format)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %s: %w", c.Log.Level, err)
	}

	return nil
}
