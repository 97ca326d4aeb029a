package config

import (
	"fmt"

	"github.com/deepnoodle-ai/feynman/log"
)

// DefaultLogLevel keeps a default run silent on stderr.
const DefaultLogLevel = "warn"

// Config holds the ambient settings of the feynman command. Nothing here
// reaches the solved constants.
type Config struct {
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	NoColor  bool   `json:"no_color,omitempty" yaml:"no_color,omitempty"`
}

// Default returns the configuration used when no file or flag is given.
func Default() *Config {
	return &Config{LogLevel: DefaultLogLevel}
}

// Validate checks that the log level names a known level.
func (c *Config) Validate() error {
	if c.LogLevel == "" {
		return nil
	}
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	return log.LevelFromString(c.LogLevel)
}
