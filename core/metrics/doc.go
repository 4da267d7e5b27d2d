// Package metrics defines the sink interface plans are reported to. Sinks
// like the Prometheus textfile sink and the InfluxDB sink live in
// infra/metrics and register themselves by type name; NewPlanSink builds a
// MultiSink automatically when several sinks are configured.
package metrics
