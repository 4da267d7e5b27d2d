package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/rote/core/assign"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `assign:
  periods: 4
  max_per_period: 8
  require_ownership: true
tables:
  participants: "in/players.csv"
  characters: "in/chars.csv"
  requirements: "in/ops.csv"
output:
  path: "out/plan.json"
  unfilled_path: "out/unfilled.csv"
  format: "json"
history:
  backend: "sqlite"
metrics:
  sinks:
    - type: "prometheus"
      conf:
        textfile: "rote.prom"
notify:
  enabled: true
  broker: "tcp://localhost:1883"
  topic: "guild/plans"
  qos: 1
log:
  level: "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"periods", cfg.Assign.Periods, 4},
		{"max_per_period", cfg.Assign.MaxPerPeriod, 8},
		{"require_ownership", cfg.Assign.RequireOwnership, true},
		{"participants", cfg.Tables.Participants, "in/players.csv"},
		{"ships default", cfg.Tables.Ships, ""},
		{"output", cfg.Output.Path, "out/plan.json"},
		{"unfilled", cfg.Output.UnfilledPath, "out/unfilled.csv"},
		{"format", cfg.Output.Format, "json"},
		{"history backend", cfg.History.Backend, "sqlite"},
		{"history path", cfg.History.Path, "rote_history.db"},
		{"sink", cfg.Metrics.Sinks[0].Type, "prometheus"},
		{"sink conf", cfg.Metrics.Sinks[0].Conf["textfile"], "rote.prom"},
		{"broker", cfg.Notify.Broker, "tcp://localhost:1883"},
		{"topic", cfg.Notify.Topic, "guild/plans"},
		{"qos", cfg.Notify.QoS, byte(1)},
		{"level", cfg.Log.Level, "debug"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"assign": {"periods": 2}, "output": {"format": "yaml"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Assign.Periods)
	assert.Equal(t, assign.DefaultMaxPerPeriod, cfg.Assign.MaxPerPeriod)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, assign.DefaultPeriods, cfg.Assign.Periods)
	assert.Equal(t, assign.DefaultMaxPerPeriod, cfg.Assign.MaxPerPeriod)
	assert.False(t, cfg.Assign.RequireOwnership)
	assert.Equal(t, "player_data.csv", cfg.Tables.Participants)
	assert.Equal(t, "character_relic_data.csv", cfg.Tables.Characters)
	assert.Equal(t, "ROTE_OPERATIONS.csv", cfg.Tables.Requirements)
	assert.Equal(t, "rote_assignments.csv", cfg.Output.Path)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "jsonl", cfg.History.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Notify.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ROTE_ASSIGN__MAX_PER_PERIOD", "5")
	t.Setenv("ROTE_OUTPUT__PATH", "-")
	t.Setenv("ROTE_LOG__LEVEL", "warn")
	path := writeFile(t, "config.yaml", "assign:\n  max_per_period: 9\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Assign.MaxPerPeriod)
	assert.Equal(t, "-", cfg.Output.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("ROTE_ASSIGN__PERIODS", "5")
	t.Setenv("ROTE_HISTORY__BACKEND", "none")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Assign.Periods)
	assert.Equal(t, "none", cfg.History.Backend)
	assert.Equal(t, 10, cfg.Assign.MaxPerPeriod)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"format", "config.toml", "x = 1"},
		{"output format", "config.yaml", "output:\n  format: xml\n"},
		{"history backend", "config.yaml", "history:\n  backend: redis\n"},
		{"log level", "config.yaml", "log:\n  level: loud\n"},
		{"notify broker", "config.yaml", "notify:\n  enabled: true\n"},
		{"negative periods", "config.yaml", "assign:\n  periods: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.data))
			assert.Error(t, err)
		})
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
