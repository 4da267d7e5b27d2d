package metrics

import "github.com/kilianp07/rote/core/factory"

// Config defines settings for plan sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
