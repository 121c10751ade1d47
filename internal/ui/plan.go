package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/planner"
	"github.com/javiermolinar/rotina/internal/summary"
)

func (a *App) planCmd() *cobra.Command {
	var (
		dateFlag string
		showIDs  bool
	)

	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Build, validate and save a day from a plan file",
		Long: `Build the timeline of a day from a plan file (.toml or .json), check it
for conflicts within the day and against the previous night's sleep, and
save it when it is clean.

Completed activities, water progress and schedule adjustments of an
already saved day are carried over to the new timeline.

Use 'rotina template' to print an example plan file.`,
		Example: `  rotina plan today.toml
  rotina plan week/monday.json --date monday`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}
			data, err := LoadPlanFile(args[0])
			if err != nil {
				return err
			}

			res, err := a.planner.Finalize(context.Background(), date, *data)
			if err != nil {
				return err
			}
			return a.printResult(cmd, res, PrintOpts{ShowIDs: showIDs})
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show activity ids")
	return cmd
}

func (a *App) checkCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a plan file without saving",
		Long: `Build and validate a plan file exactly like 'rotina plan', but never
write to the database.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}
			data, err := LoadPlanFile(args[0])
			if err != nil {
				return err
			}

			res, err := a.planner.Check(context.Background(), date, *data)
			if err != nil {
				return err
			}
			return a.printResult(cmd, res, PrintOpts{})
		},
	}

	addDateFlag(cmd, &dateFlag)
	return cmd
}

func (a *App) rebuildCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Rebuild a saved day from its stored plan",
		Long: `Rebuild the timeline of a saved day from the plan stored with it. This is
useful after the previous day changed, since its sleep is checked again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}

			res, err := a.planner.Rebuild(context.Background(), date)
			if err != nil {
				return err
			}
			return a.printResult(cmd, res, PrintOpts{})
		},
	}

	addDateFlag(cmd, &dateFlag)
	return cmd
}

// printResult prints the timeline of a clean result or the conflicts of a
// rejected one, in which case ErrConflicts is returned.
func (a *App) printResult(cmd *cobra.Command, res *planner.Result, opts PrintOpts) error {
	w := cmd.OutOrStdout()
	header := dateutil.DayName(res.Date) + ", " + dateutil.FormattedDate(res.Date)

	fmt.Fprintf(w, "=== %s ===\n\n", formatHeader(header))
	if res.HasConflicts() {
		PrintConflicts(w, res.Conflicts)
		return ErrConflicts
	}

	PrintTimeline(w, res.Activities, opts)
	fmt.Fprintln(w)
	PrintStats(w, summary.ComputeStats(res.Activities))

	if res.Saved {
		fmt.Fprintf(w, "\n%s\n", formatDone(fmt.Sprintf("Dia %s salvo.", dateutil.Key(res.Date))))
	} else {
		fmt.Fprintf(w, "\n%s\n", formatMuted("Nenhum conflito. (não salvo)"))
	}
	return nil
}
