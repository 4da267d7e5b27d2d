package assign

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kilianp07/rote/core/model"
)

func TestMetricsRegistration(t *testing.T) {
	ResetMetrics(nil)
	t.Cleanup(func() { ResetMetrics(nil) })
	reg := prometheus.NewRegistry()
	MustRegisterMetrics(reg)

	in := Input{
		Participants: []model.Participant{{Code: "A"}},
		Characters:   []model.Ownership{{Code: "A", Capability: "X", Level: 5}},
		Requirements: reqs(
			model.Requirement{Capability: "X", MinLevel: 1},
			model.Requirement{Capability: "Z", MinLevel: 1},
		),
	}
	if _, err := newTestAssigner(t, Config{}).Assign(context.Background(), in); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if got := testutil.ToFloat64(requirementsProcessed); got != 2 {
		t.Errorf("expected 2 processed got %v", got)
	}
	if got := testutil.ToFloat64(assignmentsTotal.WithLabelValues("1")); got != 1 {
		t.Errorf("expected 1 assignment in period 1 got %v", got)
	}
	if got := testutil.ToFloat64(unfilledTotal.WithLabelValues(string(model.ReasonNoOwner))); got != 1 {
		t.Errorf("expected 1 no_owner got %v", got)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, n := range []string{
		"rote_requirements_processed_total",
		"rote_assignments_total",
		"rote_unfilled_total",
		"rote_assign_duration_seconds",
	} {
		if !names[n] {
			t.Errorf("metric %s not registered", n)
		}
	}
}
