package model

import "time"

// Assignment commits one requirement to a participant for a period.
type Assignment struct {
	Period           int    `json:"day" yaml:"day"`
	ParticipantName  string `json:"player_name" yaml:"player_name"`
	ParticipantCode  string `json:"ally_code" yaml:"ally_code"`
	Alignment        string `json:"alignment" yaml:"alignment"`
	Phase            string `json:"phase" yaml:"phase"`
	Location         string `json:"planet" yaml:"planet"`
	Operation        string `json:"operation" yaml:"operation"`
	Capability       string `json:"character_name" yaml:"character_name"`
	MinLevel         int    `json:"relic_required" yaml:"relic_required"`
	RequirementIndex int    `json:"requirement_index" yaml:"requirement_index"`
}

// PeriodSummary aggregates the load placed on participants in one period.
type PeriodSummary struct {
	Period       int     `json:"period" yaml:"period"`
	Assignments  int     `json:"assignments" yaml:"assignments"`
	Participants int     `json:"participants" yaml:"participants"`
	LoadMean     float64 `json:"load_mean" yaml:"load_mean"`
	LoadStdDev   float64 `json:"load_stddev" yaml:"load_stddev"`
}

// Summary describes a finished plan.
type Summary struct {
	Requirements int             `json:"requirements" yaml:"requirements"`
	Assigned     int             `json:"assigned" yaml:"assigned"`
	Unfilled     int             `json:"unfilled" yaml:"unfilled"`
	FillRate     float64         `json:"fill_rate" yaml:"fill_rate"`
	Periods      []PeriodSummary `json:"periods" yaml:"periods"`
}

// Plan is the result of one assignment run.
type Plan struct {
	RunID       string       `json:"run_id" yaml:"run_id"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
	Assignments []Assignment `json:"assignments" yaml:"assignments"`
	Unfilled    []Unfilled   `json:"unfilled" yaml:"unfilled"`
	Summary     Summary      `json:"summary" yaml:"summary"`
}
