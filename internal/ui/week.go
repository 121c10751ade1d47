package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/summary"
)

func (a *App) weekCmd() *cobra.Command {
	var (
		dateFlag string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Summarize the current week",
		Long: `Show one line per day of the Monday-Sunday week containing --date:
completed activities, busy time, free time and water.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}

			week, err := summary.BuildWeekSummary(context.Background(), a.planner, date)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "=== %s ===\n\n", formatHeader(
				fmt.Sprintf("Semana %s - %s", dateutil.FormattedDate(week.Start), dateutil.FormattedDate(week.End))))
			printWeekTable(w, week)
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// printWeekTable prints one summary row per day, then the week totals.
func printWeekTable(w io.Writer, week *summary.WeekSummary) {
	for _, day := range week.Days {
		label := padRight(dateutil.DayName(day.Date), 14) + day.Date.Format("02/01")
		if !day.Planned {
			fmt.Fprintf(w, "  %s  %s\n", label, formatMuted("sem plano"))
			continue
		}

		stats := day.Stats
		row := fmt.Sprintf("  %s  ✓ %2d/%-2d  ocupado %-9s  livre %-9s",
			label, stats.Completed, stats.Total,
			clock.FormatDuration(stats.BusyMinutes), clock.FormatDuration(day.FreeMinutes))
		if stats.WaterGoalML > 0 {
			row += fmt.Sprintf("  água %d/%dml", stats.WaterML, stats.WaterGoalML)
		}
		fmt.Fprintln(w, row)
	}

	total := week.Stats
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Dias planejados: %d | Concluídas: %d/%d (%d%%) | Tempo livre: %s\n",
		week.Planned, total.Completed, total.Total, total.CompletedPercent(),
		clock.FormatDuration(week.FreeMinutes))
	if total.Total > 0 {
		fmt.Fprintf(w, "  Progresso: %s\n", ProgressBar(total.Completed, total.Total, 20))
	}
}
