package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/rote/core/assign"
	"github.com/kilianp07/rote/core/metrics"
	"github.com/kilianp07/rote/infra/history"
	"github.com/kilianp07/rote/infra/mqtt"
	"github.com/kilianp07/rote/infra/tables"
)

// EnvPrefix marks environment variables that override file settings.
// Nested keys are separated by a double underscore, e.g. ROTE_ASSIGN__PERIODS.
const EnvPrefix = "ROTE_"

type Config struct {
	Assign  assign.Config  `json:"assign"`
	Tables  tables.Paths   `json:"tables"`
	Output  OutputConfig   `json:"output"`
	History history.Config `json:"history"`
	Metrics metrics.Config `json:"metrics"`
	Notify  mqtt.Config    `json:"notify"`
	Log     LogConfig      `json:"log"`
	Sentry  SentryConfig   `json:"sentry"`
}

// Load reads the configuration file at path, applies environment overrides,
// defaults and validation. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Assign.SetDefaults()
	c.Tables.SetDefaults()
	c.Output.SetDefaults()
	c.History.SetDefaults()
	c.Notify.SetDefaults()
	c.Log.SetDefaults()
}

// Validate checks every section and reports the first failure.
func (c Config) Validate() error {
	validators := []struct {
		section string
		check   func() error
	}{
		{"assign", c.Assign.Validate},
		{"tables", c.Tables.Validate},
		{"output", c.Output.Validate},
		{"history", c.History.Validate},
		{"notify", c.Notify.Validate},
		{"log", c.Log.Validate},
		{"sentry", c.Sentry.Validate},
	}
	for _, v := range validators {
		if err := v.check(); err != nil {
			return fmt.Errorf("%s: %w", v.section, err)
		}
	}
	return nil
}
