package assign

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requirementsProcessed prometheus.Counter
	assignmentsTotal      *prometheus.CounterVec
	unfilledTotal         *prometheus.CounterVec
	assignDuration        prometheus.Histogram
)

// newCollectors creates new metric collectors.
func newCollectors() (prometheus.Counter, *prometheus.CounterVec, *prometheus.CounterVec, prometheus.Histogram) {
	req := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rote_requirements_processed_total",
		Help: "Number of requirements considered by the assigner",
	})
	asn := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rote_assignments_total",
			Help: "Number of requirements placed, by period",
		},
		[]string{"period"},
	)
	unf := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rote_unfilled_total",
			Help: "Number of requirements left unfilled, by reason",
		},
		[]string{"reason"},
	)
	dur := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rote_assign_duration_seconds",
		Help:    "Wall time of one assignment run",
		Buckets: prometheus.DefBuckets,
	})
	return req, asn, unf, dur
}

func init() {
	requirementsProcessed, assignmentsTotal, unfilledTotal, assignDuration = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers assigner metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(requirementsProcessed, assignmentsTotal, unfilledTotal, assignDuration)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	requirementsProcessed, assignmentsTotal, unfilledTotal, assignDuration = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
