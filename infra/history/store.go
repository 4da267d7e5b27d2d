// Package history keeps a record of every plan run so officers can check
// who was assigned what in earlier phases.
package history

import (
	"context"
	"time"

	"github.com/kilianp07/rote/core/model"
)

// Record captures one assignment run.
type Record struct {
	RunID       string             `json:"run_id"`
	Timestamp   time.Time          `json:"timestamp"`
	Summary     model.Summary      `json:"summary"`
	Assignments []model.Assignment `json:"assignments"`
	Unfilled    []model.Unfilled   `json:"unfilled"`
}

// NewRecord converts a plan into a history record.
func NewRecord(plan model.Plan) Record {
	return Record{
		RunID:       plan.RunID,
		Timestamp:   plan.CreatedAt,
		Summary:     plan.Summary,
		Assignments: plan.Assignments,
		Unfilled:    plan.Unfilled,
	}
}

// Participants returns the distinct ally codes assigned in the record, in
// first-assignment order.
func (r Record) Participants() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range r.Assignments {
		if !seen[a.ParticipantCode] {
			seen[a.ParticipantCode] = true
			out = append(out, a.ParticipantCode)
		}
	}
	return out
}

// Query defines filters for retrieving records. Zero fields match everything.
type Query struct {
	Start           time.Time
	End             time.Time
	RunID           string
	ParticipantCode string
}

// Matches reports whether r satisfies every filter of q.
func (q Query) Matches(r Record) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.RunID != "" && r.RunID != q.RunID {
		return false
	}
	if q.ParticipantCode != "" {
		for _, a := range r.Assignments {
			if a.ParticipantCode == q.ParticipantCode {
				return true
			}
		}
		return false
	}
	return true
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// NopStore drops records. It backs the "none" backend.
type NopStore struct{}

func (NopStore) Append(context.Context, Record) error          { return nil }
func (NopStore) Query(context.Context, Query) ([]Record, error) { return nil, nil }
func (NopStore) Close() error                                   { return nil }
