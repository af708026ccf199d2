package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig defines settings for the diagnostic log written to stderr.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `json:"level"`
	// Format selects "json" or "console" output. Empty follows APP_ENV.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level and format names.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown log level %s", c.Level)
	}
	switch c.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %s", c.Format)
	}
	return nil
}
