package config

import (
	"fmt"

	"github.com/kilianp07/rote/pkg/export"
)

// OutputConfig defines where the plan is written.
type OutputConfig struct {
	// Path receives the assignments. "-" writes to stdout.
	Path string `json:"path"`
	// UnfilledPath receives unfilled requirements as CSV. Empty disables it.
	UnfilledPath string `json:"unfilled_path"`
	// Format is csv, json or yaml.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "rote_assignments.csv"
	}
	if c.Format == "" {
		c.Format = export.FormatCSV
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	switch c.Format {
	case export.FormatCSV, export.FormatJSON, export.FormatYAML:
	default:
		return fmt.Errorf("unknown format %s", c.Format)
	}
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}
