package roster

import (
	"sort"

	"github.com/kilianp07/rote/core/model"
)

// Rank orders participants by ascending number of owned capabilities so that
// participants with many options are kept as fallbacks. Ties keep their input
// order. The input slice is not modified.
func Rank(participants []model.Participant, idx *CapabilityIndex) []model.Participant {
	ranked := make([]model.Participant, len(participants))
	copy(ranked, participants)
	sort.SliceStable(ranked, func(a, b int) bool {
		return idx.Count(ranked[a].Code) < idx.Count(ranked[b].Code)
	})
	return ranked
}
