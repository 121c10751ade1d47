package ui

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/summary"
)

func (a *App) historyCmd() *cobra.Command {
	var (
		dateFlag string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the saved revisions of a day",
		Long: `Every successful save of a day is kept as a revision. This lists them,
newest first, with the activity count of each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}

			revs, err := a.planner.Revisions(context.Background(), date)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(revs) == 0 {
				fmt.Fprintf(w, "Nenhuma revisão para %s.\n", dateutil.Key(date))
				return nil
			}
			if limit > 0 && len(revs) > limit {
				revs = revs[:limit]
			}

			fmt.Fprintf(w, "=== %s ===\n\n", formatHeader("Revisões de "+dateutil.Key(date)))
			for _, rev := range revs {
				stats := summary.ComputeStats(rev.Activities)
				fmt.Fprintf(w, "  %s  %s  dormir %s, acordar %s  %d atividades\n",
					rev.SavedAt.Local().Format("2006-01-02 15:04:05"),
					formatMuted(rev.ID[:8]),
					rev.PlanData.Sleep, rev.PlanData.Wake, stats.Total)
			}
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n revisions")
	return cmd
}

func (a *App) deleteCmd() *cobra.Command {
	var (
		dateFlag string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a saved day",
		Long: `Remove a saved day. Its revisions are kept and remain visible in
'rotina history'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}

			if !yes && !promptYesNo(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(),
				fmt.Sprintf("Delete the plan of %s?", dateutil.Key(date))) {
				return nil
			}

			if err := a.planner.Delete(context.Background(), date); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dia %s removido.\n", dateutil.Key(date))
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
