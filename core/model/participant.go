package model

// Participant is a roster member identified by its ally code.
type Participant struct {
	Code     string `json:"ally_code" yaml:"ally_code"`
	Name     string `json:"player_name" yaml:"player_name"`
	Strength int    `json:"gp" yaml:"gp"` // galactic power, informational only
}

// Ownership records the proficiency a participant holds for one capability
// (a character and its relic tier).
type Ownership struct {
	Code       string `json:"ally_code" yaml:"ally_code"`
	Capability string `json:"character_name" yaml:"character_name"`
	Level      int    `json:"relic_level" yaml:"relic_level"`
}

// ShipOwnership belongs to the secondary ownership domain. It is loaded with
// the roster but never consulted when assigning.
type ShipOwnership struct {
	Code  string `json:"ally_code" yaml:"ally_code"`
	Ship  string `json:"ship_name" yaml:"ship_name"`
	Stars int    `json:"stars" yaml:"stars"`
}
