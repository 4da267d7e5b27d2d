package metrics

import (
	"context"
	"errors"

	"github.com/kilianp07/rote/core/model"
)

// PlanSink records finished plans for observability purposes.
type PlanSink interface {
	RecordPlan(ctx context.Context, plan model.Plan) error
}

// NopSink implements PlanSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(context.Context, model.Plan) error { return nil }

// MultiSink fans plans out to multiple sinks.
type MultiSink struct {
	Sinks []PlanSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...PlanSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlan forwards the plan to every sink and joins their errors, so one
// failing backend does not hide the plan from the others.
func (m *MultiSink) RecordPlan(ctx context.Context, plan model.Plan) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordPlan(ctx, plan); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink that holds resources.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		if c, ok := s.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
