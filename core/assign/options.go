package assign

import (
	"time"

	"github.com/kilianp07/rote/core/logger"
)

// Option configures an Assigner.
type Option func(*Assigner)

// WithLogger sets the logger used for progress and drop messages.
func WithLogger(l logger.Logger) Option {
	return func(a *Assigner) {
		if l != nil {
			a.log = l
		}
	}
}

// WithClock overrides the time source stamped on plans.
func WithClock(now func() time.Time) Option {
	return func(a *Assigner) {
		if now != nil {
			a.now = now
		}
	}
}

// WithRunID overrides the run identifier generator.
func WithRunID(gen func() string) Option {
	return func(a *Assigner) {
		if gen != nil {
			a.runID = gen
		}
	}
}
