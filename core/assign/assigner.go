package assign

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/rote/core/logger"
	"github.com/kilianp07/rote/core/model"
	"github.com/kilianp07/rote/core/roster"
)

// Input holds the normalized tables of one run.
type Input struct {
	Participants []model.Participant
	Characters   []model.Ownership
	// Ships is accepted for completeness; no requirement references ships yet.
	Ships        []model.ShipOwnership
	Requirements []model.Requirement
}

// Assigner runs the first-fit placement described in the package doc.
type Assigner struct {
	cfg   Config
	log   logger.Logger
	now   func() time.Time
	runID func() string
}

// New creates an Assigner. Unset config fields receive their defaults.
func New(cfg Config, opts ...Option) (*Assigner, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Assigner{
		cfg:   cfg,
		log:   logger.Nop{},
		now:   time.Now,
		runID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Config returns the effective configuration.
func (a *Assigner) Config() Config { return a.cfg }

// Assign builds a plan for in. The only errors are context cancellation;
// requirements that cannot be placed end up in Plan.Unfilled.
func (a *Assigner) Assign(ctx context.Context, in Input) (model.Plan, error) {
	start := time.Now()
	idx := roster.NewCapabilityIndex(in.Characters)
	ranked := roster.Rank(in.Participants, idx)
	state := NewPeriodState()

	a.log.Infof("assigning %d requirements to %d participants over %d periods", len(in.Requirements), len(ranked), a.cfg.Periods)
	if len(in.Ships) > 0 {
		a.log.Debugf("ignoring %d ship records", len(in.Ships))
	}

	plan := model.Plan{
		RunID:       a.runID(),
		CreatedAt:   a.now(),
		Assignments: make([]model.Assignment, 0, len(in.Requirements)),
	}
	for _, req := range in.Requirements {
		if err := ctx.Err(); err != nil {
			return model.Plan{}, fmt.Errorf("assign: %w", err)
		}
		requirementsProcessed.Inc()
		asn, ok := a.place(req, idx, ranked, state)
		if !ok {
			reason := a.classify(req, idx, ranked)
			plan.Unfilled = append(plan.Unfilled, model.Unfilled{Requirement: req, Reason: reason})
			unfilledTotal.WithLabelValues(string(reason)).Inc()
			a.log.Debugw("requirement unfilled", map[string]any{
				"index":      req.Index,
				"operation":  req.Operation,
				"capability": req.Capability,
				"min_level":  req.MinLevel,
				"reason":     string(reason),
			})
			continue
		}
		plan.Assignments = append(plan.Assignments, asn)
		assignmentsTotal.WithLabelValues(strconv.Itoa(asn.Period)).Inc()
	}
	plan.Summary = Summarize(plan, a.cfg.Periods, len(in.Participants), len(in.Requirements))
	assignDuration.Observe(time.Since(start).Seconds())
	a.log.Infof("assigned %d of %d requirements (%d unfilled)", len(plan.Assignments), len(in.Requirements), len(plan.Unfilled))
	return plan, nil
}

// place scans periods then ranked participants and commits the first
// eligible pair.
func (a *Assigner) place(req model.Requirement, idx *roster.CapabilityIndex, ranked []model.Participant, state *PeriodState) (model.Assignment, bool) {
	for period := 1; period <= a.cfg.Periods; period++ {
		for _, p := range ranked {
			if !a.eligible(req, p, period, idx, state) {
				continue
			}
			state.RecordUse(period, p.Code, req.Capability)
			return model.Assignment{
				Period:           period,
				ParticipantName:  p.Name,
				ParticipantCode:  p.Code,
				Alignment:        req.Alignment,
				Phase:            req.Phase,
				Location:         req.Location,
				Operation:        req.Operation,
				Capability:       req.Capability,
				MinLevel:         req.MinLevel,
				RequirementIndex: req.Index,
			}, true
		}
	}
	return model.Assignment{}, false
}

func (a *Assigner) qualifies(req model.Requirement, p model.Participant, idx *roster.CapabilityIndex) bool {
	level, owned := idx.Level(p.Code, req.Capability)
	if a.cfg.RequireOwnership && !owned {
		return false
	}
	return level >= req.MinLevel
}

func (a *Assigner) eligible(req model.Requirement, p model.Participant, period int, idx *roster.CapabilityIndex, state *PeriodState) bool {
	if !a.qualifies(req, p, idx) {
		return false
	}
	if state.HasUsed(period, p.Code, req.Capability) {
		return false
	}
	return state.Consumed(period, p.Code) < a.cfg.MaxPerPeriod
}

// classify explains why req could not be placed.
func (a *Assigner) classify(req model.Requirement, idx *roster.CapabilityIndex, ranked []model.Participant) model.UnfilledReason {
	for _, p := range ranked {
		if a.qualifies(req, p, idx) {
			return model.ReasonExhausted
		}
	}
	if idx.Owners(req.Capability) == 0 {
		return model.ReasonNoOwner
	}
	return model.ReasonBelowMinimum
}
