package assign

import "fmt"

const (
	// DefaultPeriods is the number of days of a territory battle phase.
	DefaultPeriods = 3
	// DefaultMaxPerPeriod caps the slots one participant fills per day.
	DefaultMaxPerPeriod = 10
)

// Config defines assignment settings.
type Config struct {
	// Periods is the number of scheduling periods, numbered from 1.
	Periods int `json:"periods"`
	// MaxPerPeriod is the capacity of a participant within one period.
	MaxPerPeriod int `json:"max_per_period"`
	// RequireOwnership rejects participants that do not own the capability
	// even when the minimum level is 0.
	RequireOwnership bool `json:"require_ownership"`
}

// SetDefaults applies defaults to unset fields.
func (c *Config) SetDefaults() {
	if c.Periods == 0 {
		c.Periods = DefaultPeriods
	}
	if c.MaxPerPeriod == 0 {
		c.MaxPerPeriod = DefaultMaxPerPeriod
	}
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	if c.Periods <= 0 {
		return fmt.Errorf("%w: periods must be positive, got %d", ErrInvalidConfig, c.Periods)
	}
	if c.MaxPerPeriod <= 0 {
		return fmt.Errorf("%w: max_per_period must be positive, got %d", ErrInvalidConfig, c.MaxPerPeriod)
	}
	return nil
}
