package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/rote/app"
	"github.com/kilianp07/rote/infra/history"
)

var historyFlags struct {
	participant string
	run         string
	since       string
	until       string
	details     bool
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded plan runs",
	RunE:  runHistory,
}

func init() {
	f := historyCmd.Flags()
	f.StringVar(&historyFlags.participant, "participant", "", "only runs assigning this ally code")
	f.StringVar(&historyFlags.run, "run", "", "only the run with this id")
	f.StringVar(&historyFlags.since, "since", "", "only runs at or after this time (RFC3339 or YYYY-MM-DD)")
	f.StringVar(&historyFlags.until, "until", "", "only runs at or before this time (RFC3339 or YYYY-MM-DD)")
	f.BoolVar(&historyFlags.details, "details", false, "print the participant's assignments of each run")
	rootCmd.AddCommand(historyCmd)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func historyQuery() (history.Query, error) {
	start, err := parseTime(historyFlags.since)
	if err != nil {
		return history.Query{}, fmt.Errorf("--since: %w", err)
	}
	end, err := parseTime(historyFlags.until)
	if err != nil {
		return history.Query{}, fmt.Errorf("--until: %w", err)
	}
	if len(historyFlags.until) == len(time.DateOnly) {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	return history.Query{
		Start:           start,
		End:             end,
		RunID:           historyFlags.run,
		ParticipantCode: historyFlags.participant,
	}, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	q, err := historyQuery()
	if err != nil {
		return err
	}
	return withService(func(ctx context.Context, svc *app.Service) error {
		recs, err := svc.History(ctx, q)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "RUN\tTIME\tASSIGNED\tUNFILLED\tFILL")
		for _, r := range recs {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.1f%%\n", r.RunID, r.Timestamp.Format(time.RFC3339),
				r.Summary.Assigned, r.Summary.Unfilled, r.Summary.FillRate*100)
			if !historyFlags.details || q.ParticipantCode == "" {
				continue
			}
			for _, a := range r.Assignments {
				if a.ParticipantCode != q.ParticipantCode {
					continue
				}
				_, _ = fmt.Fprintf(tw, "\tday %d\t%s/%s %s op %s\t%s (R%d)\t\n",
					a.Period, a.Alignment, a.Phase, a.Location, a.Operation, a.Capability, a.MinLevel)
			}
		}
		return tw.Flush()
	})
}
