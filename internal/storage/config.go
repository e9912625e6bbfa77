package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jacksmith/inv/internal/stock"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".invconfig.yaml"
	// envFile holds optional INV_* overrides next to the config file.
	envFile = ".env"

	// Default configuration values
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Environment variables that override config file values.
const (
	EnvDataFile     = "INV_FILE"
	EnvLowThreshold = "INV_LOW_THRESHOLD"
	EnvLogLevel     = "INV_LOG_LEVEL"
	EnvLogFormat    = "INV_LOG_FORMAT"
)

// Config represents user configuration from .invconfig.yaml.
// This file is user-managed and never written by inv.
type Config struct {
	// DataFile is the inventory document path, relative to the working directory.
	DataFile string `yaml:"data_file"`

	// LowThreshold is the default threshold for `inv low`.
	LowThreshold int `yaml:"low_threshold"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is console or json.
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile:     DefaultDataFile,
		LowThreshold: stock.DefaultLowThreshold,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}

// LoadConfig loads dir/.invconfig.yaml if it exists, otherwise defaults.
// Partial config files are merged with defaults. INV_* variables from the
// process environment, or from dir/.env when unset there, take precedence.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := ConfigPath(dir)
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	}

	dotenv, err := readDotenv(filepath.Join(dir, envFile))
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDataFile); ok && v != "" {
		c.DataFile = v
	}
	if v, ok := lookup(EnvLowThreshold); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be an integer", EnvLowThreshold, v)
		}
		c.LowThreshold = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}
	return env, nil
}
