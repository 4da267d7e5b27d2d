package config

import (
	"fmt"
)

// LogConfig defines the application log settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error or disabled.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LogConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level name.
func (c LogConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error", "disabled":
		return nil
	}
	return fmt.Errorf("unknown level %s", c.Level)
}
