package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/kilianp07/rote/app/plugins"
	"github.com/kilianp07/rote/config"
	"github.com/kilianp07/rote/core/assign"
	coremetrics "github.com/kilianp07/rote/core/metrics"
	"github.com/kilianp07/rote/core/model"
	"github.com/kilianp07/rote/core/monitoring"
	coremqtt "github.com/kilianp07/rote/core/mqtt"
	"github.com/kilianp07/rote/infra/history"
	"github.com/kilianp07/rote/infra/logger"
	"github.com/kilianp07/rote/infra/mqtt"
	"github.com/kilianp07/rote/infra/tables"
	"github.com/kilianp07/rote/pkg/export"
)

// Service runs the plan pipeline: load tables, assign, write outputs, then
// record history, metrics and the broker notice.
type Service struct {
	cfg        *config.Config
	assigner   *assign.Assigner
	assignOpts []assign.Option
	history    history.Store
	sink       coremetrics.PlanSink
	notifier   coremqtt.Client
	stdout     io.Writer
	log        logger.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithNotifier replaces the MQTT client built from the notify section.
func WithNotifier(c coremqtt.Client) Option {
	return func(s *Service) { s.notifier = c }
}

// WithStdout sets the writer used when an output path is "-".
func WithStdout(w io.Writer) Option {
	return func(s *Service) { s.stdout = w }
}

// WithAssignOptions forwards options to the assigner.
func WithAssignOptions(opts ...assign.Option) Option {
	return func(s *Service) { s.assignOpts = append(s.assignOpts, opts...) }
}

// New creates a Service from the configuration. The history store, metrics
// sinks and notifier are opened here and released by Close.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	svc := &Service{
		cfg:        cfg,
		stdout:     os.Stdout,
		log:        logger.New("service"),
		assignOpts: []assign.Option{assign.WithLogger(logger.New("assigner"))},
	}
	for _, opt := range opts {
		opt(svc)
	}
	a, err := assign.New(cfg.Assign, svc.assignOpts...)
	if err != nil {
		return nil, fmt.Errorf("assigner: %w", err)
	}
	svc.assigner = a

	svc.history, err = history.Open(cfg.History)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}
	svc.sink, err = coremetrics.NewPlanSink(cfg.Metrics.Sinks)
	if err != nil {
		_ = svc.history.Close()
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	if svc.notifier == nil && cfg.Notify.Enabled {
		client, err := mqtt.NewPahoClient(cfg.Notify)
		if err != nil {
			_ = svc.Close()
			return nil, fmt.Errorf("mqtt client: %w", err)
		}
		svc.notifier = client
	}
	return svc, nil
}

// Plan runs the full pipeline and returns the plan. Output and history
// failures are returned; metrics and notification failures are logged only.
func (s *Service) Plan(ctx context.Context) (model.Plan, error) {
	in, err := tables.Load(ctx, s.cfg.Tables)
	if err != nil {
		monitoring.CaptureException(err, map[string]string{"stage": "load"})
		return model.Plan{}, fmt.Errorf("load tables: %w", err)
	}
	plan, err := s.assigner.Assign(ctx, in)
	if err != nil {
		return model.Plan{}, err
	}
	sum := plan.Summary
	s.log.Infof("plan %s: %d/%d requirements assigned (%.1f%%), %d unfilled",
		plan.RunID, sum.Assigned, sum.Requirements, sum.FillRate*100, sum.Unfilled)
	for _, p := range sum.Periods {
		s.log.Debugw("period summary", map[string]any{
			"period":       p.Period,
			"assignments":  p.Assignments,
			"participants": p.Participants,
			"load_mean":    p.LoadMean,
			"load_stddev":  p.LoadStdDev,
		})
	}

	if err := s.writeOutputs(plan); err != nil {
		monitoring.CaptureException(err, map[string]string{"stage": "output", "run_id": plan.RunID})
		return plan, err
	}
	if err := s.history.Append(ctx, history.NewRecord(plan)); err != nil {
		monitoring.CaptureException(err, map[string]string{"stage": "history", "run_id": plan.RunID})
		return plan, fmt.Errorf("history: %w", err)
	}
	if err := s.sink.RecordPlan(ctx, plan); err != nil {
		s.log.Errorf("metrics: %v", err)
		monitoring.CaptureException(err, map[string]string{"stage": "metrics", "run_id": plan.RunID})
	}
	if s.notifier != nil {
		if err := s.notifier.PublishPlan(ctx, plan); err != nil {
			s.log.Errorf("notify: %v", err)
			monitoring.CaptureException(err, map[string]string{"stage": "notify", "run_id": plan.RunID})
		}
	}
	return plan, nil
}

// Check loads the tables and reports their statistics.
func (s *Service) Check(ctx context.Context) (tables.Stats, error) {
	in, err := tables.Load(ctx, s.cfg.Tables)
	if err != nil {
		return tables.Stats{}, fmt.Errorf("load tables: %w", err)
	}
	return tables.ComputeStats(in), nil
}

// History returns recorded runs matching q.
func (s *Service) History(ctx context.Context, q history.Query) ([]history.Record, error) {
	return s.history.Query(ctx, q)
}

func (s *Service) writeOutputs(plan model.Plan) error {
	out := s.cfg.Output
	if err := s.writeTo(out.Path, func(w io.Writer) error {
		return export.Write(w, out.Format, plan)
	}); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	if out.UnfilledPath == "" {
		return nil
	}
	if err := s.writeTo(out.UnfilledPath, func(w io.Writer) error {
		return export.WriteUnfilledCSV(w, plan.Unfilled)
	}); err != nil {
		return fmt.Errorf("write unfilled: %w", err)
	}
	return nil
}

func (s *Service) writeTo(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(s.stdout)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	var errs []error
	if s.history != nil {
		errs = append(errs, s.history.Close())
	}
	if c, ok := s.sink.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := s.notifier.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
