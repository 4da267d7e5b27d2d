package metrics

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/rote/core/model"
)

// PromConfig configures the Prometheus sink.
type PromConfig struct {
	// Textfile, when set, receives the gathered metrics after every plan in
	// the node_exporter textfile collector format.
	Textfile string `json:"textfile"`
}

// PromSink exposes plan outcomes as Prometheus gauges. A plan run is a
// short-lived process, so the values are written to a textfile rather than
// scraped.
type PromSink struct {
	requirements *prometheus.GaugeVec
	fillRate     prometheus.Gauge
	lastRun      prometheus.Gauge
	periodAsn    *prometheus.GaugeVec
	periodMean   *prometheus.GaugeVec
	periodStdDev *prometheus.GaugeVec
	gatherer     prometheus.Gatherer
	textfile     string
}

// NewPromSink registers plan metrics on the default Prometheus registerer.
func NewPromSink(cfg PromConfig) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// NewPromSinkWithRegistry registers metrics on the provided registerer and
// writes the textfile from gatherer. Nil arguments default to the global
// Prometheus registry.
func NewPromSinkWithRegistry(cfg PromConfig, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &PromSink{gatherer: gatherer, textfile: cfg.Textfile}
	var err error
	if s.requirements, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rote_plan_requirements",
		Help: "Requirements of the last plan by outcome",
	}, []string{"outcome"})); err != nil {
		return nil, err
	}
	if s.fillRate, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rote_plan_fill_rate",
		Help: "Share of requirements assigned in the last plan",
	})); err != nil {
		return nil, err
	}
	if s.lastRun, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rote_plan_last_run_timestamp_seconds",
		Help: "Creation time of the last plan",
	})); err != nil {
		return nil, err
	}
	if s.periodAsn, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rote_plan_period_assignments",
		Help: "Assignments of the last plan by period",
	}, []string{"period"})); err != nil {
		return nil, err
	}
	if s.periodMean, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rote_plan_period_load_mean",
		Help: "Mean slots filled per roster member by period",
	}, []string{"period"})); err != nil {
		return nil, err
	}
	if s.periodStdDev, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rote_plan_period_load_stddev",
		Help: "Standard deviation of slots filled per roster member by period",
	}, []string{"period"})); err != nil {
		return nil, err
	}
	return s, nil
}

// RecordPlan updates the gauges and writes the textfile if configured.
func (s *PromSink) RecordPlan(_ context.Context, plan model.Plan) error {
	sum := plan.Summary
	s.requirements.WithLabelValues("assigned").Set(float64(sum.Assigned))
	s.requirements.WithLabelValues("unfilled").Set(float64(sum.Unfilled))
	s.fillRate.Set(sum.FillRate)
	s.lastRun.Set(float64(plan.CreatedAt.Unix()))
	for _, p := range sum.Periods {
		label := strconv.Itoa(p.Period)
		s.periodAsn.WithLabelValues(label).Set(float64(p.Assignments))
		s.periodMean.WithLabelValues(label).Set(p.LoadMean)
		s.periodStdDev.WithLabelValues(label).Set(p.LoadStdDev)
	}
	if s.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(s.textfile, s.gatherer)
}
