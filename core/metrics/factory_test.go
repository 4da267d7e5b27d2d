package metrics_test

import (
	"testing"

	"github.com/kilianp07/rote/core/factory"
	"github.com/kilianp07/rote/core/metrics"
)

type countingSink struct{ metrics.NopSink }

func init() {
	if err := metrics.RegisterPlanSink("test_counting", func(map[string]any) (metrics.PlanSink, error) {
		return &countingSink{}, nil
	}); err != nil {
		panic(err)
	}
}

/*
Test: NewPlanSink selects the right shape
  - no config -> NopSink
  - one config -> the sink itself
  - two configs -> MultiSink with two sub-sinks
*/
func TestNewPlanSink(t *testing.T) {
	s, err := metrics.NewPlanSink(nil)
	if err != nil {
		t.Fatalf("create nop default: %v", err)
	}
	if _, ok := s.(metrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}

	one := []factory.ModuleConfig{{Type: "test_counting"}}
	s, err = metrics.NewPlanSink(one)
	if err != nil {
		t.Fatalf("create single: %v", err)
	}
	if _, ok := s.(*countingSink); !ok {
		t.Fatalf("expected countingSink, got %T", s)
	}

	two := []factory.ModuleConfig{{Type: "test_counting"}, {Type: "test_counting"}}
	s, err = metrics.NewPlanSink(two)
	if err != nil {
		t.Fatalf("create multi: %v", err)
	}
	ms, ok := s.(*metrics.MultiSink)
	if !ok {
		t.Fatalf("expected MultiSink, got %T", s)
	}
	if len(ms.Sinks) != 2 {
		t.Fatalf("expected 2 sinks, got %d", len(ms.Sinks))
	}

	if _, err := metrics.NewPlanSink([]factory.ModuleConfig{{Type: "unknown"}}); err == nil {
		t.Fatal("expected unknown type error")
	}
}
