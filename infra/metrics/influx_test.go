package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/rote/core/metrics"
	"github.com/kilianp07/rote/core/model"
)

func samplePlan(now time.Time) model.Plan {
	return model.Plan{
		RunID:     "run-1",
		CreatedAt: now,
		Summary: model.Summary{
			Requirements: 4,
			Assigned:     2,
			Unfilled:     2,
			FillRate:     0.5,
			Periods: []model.PeriodSummary{
				{Period: 1, Assignments: 2, Participants: 1, LoadMean: 1, LoadStdDev: 1},
				{Period: 2},
			},
		},
	}
}

func TestInfluxSink_RecordPlan(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, strings.TrimSpace(string(data)))
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(InfluxConfig{URL: srv.URL, Token: "token", Org: "org", Bucket: "bucket"})
	defer func() { assert.NoError(t, sink.Close()) }()
	now := time.Unix(1700000000, 0)
	require.NoError(t, sink.RecordPlan(context.Background(), samplePlan(now)))

	p := write.NewPointWithMeasurement("rote_period").
		AddTag("period", "1").
		AddTag("run_id", "run-1").
		AddField("assignments", 2).
		AddField("participants", 1).
		AddField("load_mean", 1.0).
		AddField("load_stddev", 1.0).
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))

	mu.Lock()
	defer mu.Unlock()
	var lines []string
	for _, b := range bodies {
		lines = append(lines, strings.Split(b, "\n")...)
	}
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "rote_plan,run_id=run-1 "))
	assert.Contains(t, lines[0], "fill_rate=0.5")
	assert.Equal(t, expected, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "rote_period,period=2,run_id=run-1 "))
}

func TestInfluxSink_WriteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	sink := NewInfluxSink(InfluxConfig{URL: srv.URL, Token: "token", Org: "org", Bucket: "bucket"})
	defer func() { _ = sink.Close() }()
	assert.Error(t, sink.RecordPlan(context.Background(), samplePlan(time.Now())))
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(InfluxConfig{
		URL:    srv.URL + "/api/v2/write",
		Token:  "tok",
		Org:    "org",
		Bucket: "bucket",
	})
	_, isNop := sink.(coremetrics.NopSink)
	assert.True(t, isNop, "expected NopSink on failing health check")
	assert.True(t, called, "health endpoint not called")
}
