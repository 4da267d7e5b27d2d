package assign

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/rote/core/model"
)

// Summarize computes fill rate and per-period load statistics. Load is the
// number of slots each roster member fills in a period, members without an
// assignment counting as zero.
func Summarize(plan model.Plan, periods, rosterSize, requirements int) model.Summary {
	sum := model.Summary{
		Requirements: requirements,
		Assigned:     len(plan.Assignments),
		Unfilled:     len(plan.Unfilled),
		Periods:      make([]model.PeriodSummary, 0, periods),
	}
	if requirements > 0 {
		sum.FillRate = float64(sum.Assigned) / float64(requirements)
	}
	perPeriod := make(map[int]map[string]int, periods)
	for _, asn := range plan.Assignments {
		loads, ok := perPeriod[asn.Period]
		if !ok {
			loads = make(map[string]int)
			perPeriod[asn.Period] = loads
		}
		loads[asn.ParticipantCode]++
	}
	for period := 1; period <= periods; period++ {
		ps := model.PeriodSummary{Period: period}
		loads := perPeriod[period]
		ps.Participants = len(loads)
		for _, n := range loads {
			ps.Assignments += n
		}
		if rosterSize > 0 {
			codes := make([]string, 0, len(loads))
			for code := range loads {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			vals := make([]float64, rosterSize)
			for i, code := range codes {
				if i == rosterSize {
					break
				}
				vals[i] = float64(loads[code])
			}
			ps.LoadMean, ps.LoadStdDev = stat.MeanStdDev(vals, nil)
			if rosterSize < 2 {
				ps.LoadStdDev = 0
			}
		}
		sum.Periods = append(sum.Periods, ps)
	}
	return sum
}
