package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rotina/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		showIDs   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved days in a date range",
		Long: `List the timelines of all saved days within a date range.

If no dates are specified, lists today.
If only --start is specified, lists that single day.
If both --start and --end are specified, lists that range (inclusive).`,
		Example: `  rotina list
  rotina list --start=2026-10-12
  rotina list --start=2026-10-12 --end=2026-10-18`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			records, err := a.planner.Range(context.Background(), dateRange.Start, dateRange.End)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(w, "Nenhum dia salvo no período.")
				return nil
			}

			for i, rec := range records {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "=== %s %s ===\n", dateutil.Key(rec.Date), formatMuted(rec.DayName))
				PrintTimeline(w, rec.Activities, PrintOpts{ShowIDs: showIDs})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show activity ids")
	return cmd
}
