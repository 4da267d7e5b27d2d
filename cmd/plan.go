package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/rote/app"
	"github.com/kilianp07/rote/core/model"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Assign the roster to the operations and write the plan",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	return withService(func(ctx context.Context, svc *app.Service) error {
		plan, err := svc.Plan(ctx)
		if err != nil {
			return err
		}
		printSummary(cmd, plan)
		return nil
	})
}

func printSummary(cmd *cobra.Command, plan model.Plan) {
	out := cmd.ErrOrStderr()
	sum := plan.Summary
	_, _ = fmt.Fprintf(out, "run %s: %d/%d assigned (%.1f%%), %d unfilled\n",
		plan.RunID, sum.Assigned, sum.Requirements, sum.FillRate*100, sum.Unfilled)
	for _, p := range sum.Periods {
		_, _ = fmt.Fprintf(out, "  day %d: %d slots, %d players, load %.2f±%.2f\n",
			p.Period, p.Assignments, p.Participants, p.LoadMean, p.LoadStdDev)
	}
}
