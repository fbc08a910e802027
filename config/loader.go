package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultTickRate    = 250 * time.Millisecond
	DefaultLogLevel    = "info"
	DefaultBufferLines = 200
)

// Default returns a Config with sensible default values.
func Default() Config {
	return Config{
		TickRate: Duration(DefaultTickRate),
		Mouse:    true,
		Log: LogConfig{
			Level:       DefaultLogLevel,
			BufferLines: DefaultBufferLines,
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads and parses a YAML config file. An empty path means the
// default location. A missing file is not an error: defaults apply, as
// does any field the file leaves out.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all config values are valid.
func Validate(cfg *Config) error {
	if cfg.TickRate <= 0 {
		return ValidationError{Field: "tick_rate", Message: "must be positive"}
	}
	if cfg.Log.BufferLines < 0 {
		return ValidationError{Field: "log.buffer_lines", Message: "must not be negative"}
	}
	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return ValidationError{Field: "log.level", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// LogFile returns the configured log path or the default location.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return DefaultLogPath()
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
