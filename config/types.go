package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML can carry values like "250ms".
type Duration time.Duration

// UnmarshalYAML parses Go duration syntax from a YAML scalar.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// LogConfig controls the file log and the overlay ring.
type LogConfig struct {
	Level       string `yaml:"level"`
	File        string `yaml:"file"`
	BufferLines int    `yaml:"buffer_lines"`
}

// Config represents the config.yaml file.
type Config struct {
	TickRate Duration  `yaml:"tick_rate"`
	Mouse    bool      `yaml:"mouse"`
	Paste    bool      `yaml:"paste"`
	Log      LogConfig `yaml:"log"`
}
