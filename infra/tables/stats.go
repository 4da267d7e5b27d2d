package tables

import (
	"sort"

	"github.com/kilianp07/rote/core/assign"
	"github.com/kilianp07/rote/core/roster"
)

// Stats summarizes loaded tables without assigning anything.
type Stats struct {
	Participants       int            `json:"participants"`
	TotalStrength      int64          `json:"total_strength"`
	CharacterRecords   int            `json:"character_records"`
	DistinctCharacters int            `json:"distinct_characters"`
	ShipRecords        int            `json:"ship_records"`
	Requirements       int            `json:"requirements"`
	RequirementsByArea map[string]int `json:"requirements_by_area"`
	// UnownedCapabilities lists required capabilities nobody in the roster owns.
	UnownedCapabilities []string `json:"unowned_capabilities"`
	// UnknownCodes counts ownership records whose code is not in the roster.
	UnknownCodes int `json:"unknown_codes"`
}

// ComputeStats derives table statistics from in. Areas are keyed
// "alignment/phase".
func ComputeStats(in assign.Input) Stats {
	st := Stats{
		Participants:       len(in.Participants),
		CharacterRecords:   len(in.Characters),
		ShipRecords:        len(in.Ships),
		Requirements:       len(in.Requirements),
		RequirementsByArea: make(map[string]int),
	}
	known := make(map[string]bool, len(in.Participants))
	for _, p := range in.Participants {
		known[p.Code] = true
		st.TotalStrength += int64(p.Strength)
	}
	chars := make(map[string]bool)
	for _, o := range in.Characters {
		chars[o.Capability] = true
		if !known[o.Code] {
			st.UnknownCodes++
		}
	}
	st.DistinctCharacters = len(chars)

	idx := roster.NewCapabilityIndex(in.Characters)
	unowned := make(map[string]bool)
	for _, r := range in.Requirements {
		st.RequirementsByArea[r.Alignment+"/"+r.Phase]++
		if idx.Owners(r.Capability) == 0 {
			unowned[r.Capability] = true
		}
	}
	for c := range unowned {
		st.UnownedCapabilities = append(st.UnownedCapabilities, c)
	}
	sort.Strings(st.UnownedCapabilities)
	return st
}

