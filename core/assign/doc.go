// Package assign places requirements on participants across scheduling
// periods.
//
// The search is a single first-fit pass: requirements are taken in input
// order, periods in ascending order and participants in the order produced by
// roster.Rank. The first participant that owns the capability at the
// required level, has not used it in that period and still has capacity is
// selected. Requirements nobody can take are reported in Plan.Unfilled.
// Identical input always yields an identical plan.
package assign
