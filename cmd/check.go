package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kilianp07/rote/app"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the input tables and print their statistics",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return withService(func(ctx context.Context, svc *app.Service) error {
		st, err := svc.Check(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		sty := newStyles(out)
		_, _ = fmt.Fprintf(out, "%s %d (total gp %d)\n", sty.heading.Render("players:"), st.Participants, st.TotalStrength)
		_, _ = fmt.Fprintf(out, "%s %d records, %d distinct\n", sty.heading.Render("characters:"), st.CharacterRecords, st.DistinctCharacters)
		_, _ = fmt.Fprintf(out, "%s %d records\n", sty.heading.Render("ships:"), st.ShipRecords)
		_, _ = fmt.Fprintf(out, "%s %d requirements\n", sty.heading.Render("operations:"), st.Requirements)
		areas := make([]string, 0, len(st.RequirementsByArea))
		for a := range st.RequirementsByArea {
			areas = append(areas, a)
		}
		sort.Strings(areas)
		for _, a := range areas {
			_, _ = fmt.Fprintf(out, "  %s %d\n", sty.muted.Render(a+":"), st.RequirementsByArea[a])
		}
		if st.UnknownCodes > 0 {
			_, _ = fmt.Fprintln(out, sty.warn.Render(fmt.Sprintf("warning: %d character records for unknown ally codes", st.UnknownCodes)))
		}
		for _, c := range st.UnownedCapabilities {
			_, _ = fmt.Fprintln(out, sty.warn.Render("unowned: "+c))
		}
		return nil
	})
}
