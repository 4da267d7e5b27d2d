package mqtt

import (
	"context"
	"time"

	"github.com/kilianp07/rote/core/model"
)

// Client publishes plan notices to a broker.
type Client interface {
	// PublishPlan sends the notice built from plan. It returns once the
	// broker accepted the message or the retries are exhausted.
	PublishPlan(ctx context.Context, plan model.Plan) error
}

// Notice is the message published after a plan run.
type Notice struct {
	RunID     string                       `json:"run_id"`
	CreatedAt time.Time                    `json:"created_at"`
	Summary   model.Summary                `json:"summary"`
	Unfilled  map[model.UnfilledReason]int `json:"unfilled_by_reason,omitempty"`
}

// NewNotice summarizes plan for publication. Assignments are not included.
func NewNotice(plan model.Plan) Notice {
	n := Notice{RunID: plan.RunID, CreatedAt: plan.CreatedAt, Summary: plan.Summary}
	if len(plan.Unfilled) > 0 {
		n.Unfilled = make(map[model.UnfilledReason]int)
		for _, u := range plan.Unfilled {
			n.Unfilled[u.Reason]++
		}
	}
	return n
}
