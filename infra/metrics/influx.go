package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/rote/core/metrics"
	"github.com/kilianp07/rote/core/model"
	"github.com/kilianp07/rote/infra/logger"
)

// InfluxConfig configures the InfluxDB sink.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// InfluxSink writes plan summaries to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg InfluxConfig) coremetrics.PlanSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlan writes one rote_plan point and one rote_period point per period.
// Tags are added in key order so lines are in canonical line protocol.
func (s *InfluxSink) RecordPlan(ctx context.Context, plan model.Plan) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	sum := plan.Summary
	points := make([]*write.Point, 0, len(sum.Periods)+1)
	points = append(points, write.NewPointWithMeasurement("rote_plan").
		AddTag("run_id", plan.RunID).
		AddField("requirements", sum.Requirements).
		AddField("assigned", sum.Assigned).
		AddField("unfilled", sum.Unfilled).
		AddField("fill_rate", round3(sum.FillRate)).
		SetTime(plan.CreatedAt))
	for _, p := range sum.Periods {
		points = append(points, write.NewPointWithMeasurement("rote_period").
			AddTag("period", strconv.Itoa(p.Period)).
			AddTag("run_id", plan.RunID).
			AddField("assignments", p.Assignments).
			AddField("participants", p.Participants).
			AddField("load_mean", round3(p.LoadMean)).
			AddField("load_stddev", round3(p.LoadStdDev)).
			SetTime(plan.CreatedAt))
	}
	if err := s.writeAPI.WritePoint(ctx, points...); err != nil {
		s.log.Errorf("influx write: %v", err)
		return err
	}
	return nil
}

// Close releases the HTTP client.
func (s *InfluxSink) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
