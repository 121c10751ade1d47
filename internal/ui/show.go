package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/planner"
)

func (a *App) showCmd() *cobra.Command {
	var (
		dateFlag string
		verbose  bool
		showIDs  bool
		noColor  bool
		copyText bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's timeline",
		Long: `Display the saved timeline of a day with completion marks, schedule
adjustments and water progress.

Use --ids to see the activity ids accepted by 'rotina done' and
'rotina override'.`,
		Example: `  rotina show
  rotina show --date yesterday --ids
  rotina show --copy`,
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

			w := cmd.OutOrStdout()
			rec, err := a.planner.Day(context.Background(), date)
			if errors.Is(err, planner.ErrDayNotFound) {
				printNotPlanned(w, date)
				return nil
			}
			if err != nil {
				return err
			}

			PrintDay(w, rec, PrintOpts{Verbose: verbose, ShowIDs: showIDs})

			if copyText {
				if err := clipboard.WriteAll(rec.PlainText()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(w, formatMuted("Copiado para a área de transferência."))
			}
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show notes and full names")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show activity ids")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the timeline as plain text to the clipboard")
	return cmd
}

func (a *App) freeCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "free",
		Short: "Show the free time of a day",
		Long: `List the gaps between the activities of a saved day, with a suggestion
for each. Gaps shorter than planner.min_free_minutes are not shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			slots, err := a.planner.FreeTime(context.Background(), date)
			if errors.Is(err, planner.ErrDayNotFound) {
				printNotPlanned(w, date)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "=== %s ===\n\n", formatHeader("Tempo livre, "+dateutil.FormattedDate(date)))
			PrintFreeSlots(w, slots)
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	return cmd
}

func printNotPlanned(w io.Writer, date time.Time) {
	fmt.Fprintf(w, "Nenhum plano salvo para %s, %s.\n", dateutil.DayName(date), dateutil.FormattedDate(date))
}
