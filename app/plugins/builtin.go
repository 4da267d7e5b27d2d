package plugins

import (
	"github.com/kilianp07/rote/core/factory"
	coremetrics "github.com/kilianp07/rote/core/metrics"
	inframetrics "github.com/kilianp07/rote/infra/metrics"
)

func init() {
	_ = coremetrics.RegisterPlanSink("nop", func(map[string]any) (coremetrics.PlanSink, error) {
		return coremetrics.NopSink{}, nil
	})
	_ = coremetrics.RegisterPlanSink("prometheus", func(conf map[string]any) (coremetrics.PlanSink, error) {
		var c inframetrics.PromConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return inframetrics.NewPromSink(c)
	})
	_ = coremetrics.RegisterPlanSink("influx", func(conf map[string]any) (coremetrics.PlanSink, error) {
		var c inframetrics.InfluxConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return inframetrics.NewInfluxSinkWithFallback(c), nil
	})
}
