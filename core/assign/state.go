package assign

type slotKey struct {
	period int
	code   string
}

type usage struct {
	consumed int
	used     map[string]struct{}
}

// PeriodState tracks, per period and participant, how many slots were filled
// and which capabilities were used. It performs no validation: enforcing the
// capacity and uniqueness rules is the caller's job. Pairs that were never
// touched report zero consumption and an empty set.
type PeriodState struct {
	slots map[slotKey]*usage
}

// NewPeriodState returns an empty state.
func NewPeriodState() *PeriodState {
	return &PeriodState{slots: make(map[slotKey]*usage)}
}

// Consumed returns the number of slots code filled in period.
func (s *PeriodState) Consumed(period int, code string) int {
	if u, ok := s.slots[slotKey{period, code}]; ok {
		return u.consumed
	}
	return 0
}

// HasUsed reports whether code already used capability in period.
func (s *PeriodState) HasUsed(period int, code, capability string) bool {
	u, ok := s.slots[slotKey{period, code}]
	if !ok {
		return false
	}
	_, used := u.used[capability]
	return used
}

// RecordUse marks capability as used by code in period and consumes one slot.
func (s *PeriodState) RecordUse(period int, code, capability string) {
	k := slotKey{period, code}
	u, ok := s.slots[k]
	if !ok {
		u = &usage{used: make(map[string]struct{})}
		s.slots[k] = u
	}
	u.used[capability] = struct{}{}
	u.consumed++
}
