package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/rote/config"
	coremon "github.com/kilianp07/rote/core/monitoring"
)

func TestNewSentryMonitorDisabled(t *testing.T) {
	mon, err := NewSentryMonitor(config.SentryConfig{})
	require.NoError(t, err)
	assert.IsType(t, coremon.NopMonitor{}, mon)
}

func TestNewSentryMonitorInvalidDSN(t *testing.T) {
	_, err := NewSentryMonitor(config.SentryConfig{DSN: "ftp://nope"})
	assert.Error(t, err)
}

func TestSentryMonitorCapture(t *testing.T) {
	mon, err := NewSentryMonitor(config.SentryConfig{DSN: "http://public@127.0.0.1:1/1", Environment: "test"})
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		mon.CaptureException(nil, nil)
		mon.CaptureException(errors.New("boom"), nil)
		mon.CaptureException(errors.New("boom"), map[string]string{"stage": "notify"})
		mon.Flush(10 * time.Millisecond)
	})
}
