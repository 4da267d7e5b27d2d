package roster

import "github.com/kilianp07/rote/core/model"

// CapabilityIndex maps participant code to capability name to proficiency.
type CapabilityIndex struct {
	levels map[string]map[string]int
}

// NewCapabilityIndex builds the index from ownership records. A repeated
// (participant, capability) pair overwrites the earlier level.
func NewCapabilityIndex(records []model.Ownership) *CapabilityIndex {
	idx := &CapabilityIndex{levels: make(map[string]map[string]int)}
	for _, r := range records {
		caps, ok := idx.levels[r.Code]
		if !ok {
			caps = make(map[string]int)
			idx.levels[r.Code] = caps
		}
		caps[r.Capability] = r.Level
	}
	return idx
}

// Level returns the proficiency of code for capability. Unknown pairs report
// level 0 and owned=false.
func (i *CapabilityIndex) Level(code, capability string) (level int, owned bool) {
	if i == nil {
		return 0, false
	}
	level, owned = i.levels[code][capability]
	return level, owned
}

// Count returns the number of distinct capabilities owned by code.
func (i *CapabilityIndex) Count(code string) int {
	if i == nil {
		return 0
	}
	return len(i.levels[code])
}

// Owners returns how many participants own capability at any level.
func (i *CapabilityIndex) Owners(capability string) int {
	if i == nil {
		return 0
	}
	n := 0
	for _, caps := range i.levels {
		if _, ok := caps[capability]; ok {
			n++
		}
	}
	return n
}

// Participants returns the number of participants with at least one record.
func (i *CapabilityIndex) Participants() int {
	if i == nil {
		return 0
	}
	return len(i.levels)
}
