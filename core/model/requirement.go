package model

// Requirement is one slot of an operation that needs a capability at a
// minimum proficiency. Index is the position in the input table and is the
// only ordering the assigner honours.
type Requirement struct {
	Index      int    `json:"index" yaml:"index"`
	Alignment  string `json:"alignment" yaml:"alignment"`
	Phase      string `json:"phase" yaml:"phase"`
	Location   string `json:"planet" yaml:"planet"`
	Operation  string `json:"operation" yaml:"operation"`
	Capability string `json:"character_name" yaml:"character_name"`
	MinLevel   int    `json:"relic_required" yaml:"relic_required"`
}

// UnfilledReason explains why a requirement produced no assignment.
type UnfilledReason string

const (
	// ReasonNoOwner means no participant owns the capability at all.
	ReasonNoOwner UnfilledReason = "no_owner"
	// ReasonBelowMinimum means owners exist but none meets the minimum level.
	ReasonBelowMinimum UnfilledReason = "below_minimum"
	// ReasonExhausted means qualified participants exist but every one of them
	// is at capacity or already used the capability in every period.
	ReasonExhausted UnfilledReason = "exhausted"
)

// Unfilled pairs a dropped requirement with the reason it was dropped.
type Unfilled struct {
	Requirement Requirement    `json:"requirement" yaml:"requirement"`
	Reason      UnfilledReason `json:"reason" yaml:"reason"`
}
