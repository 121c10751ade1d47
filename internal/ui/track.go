package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/plan"
)

func (a *App) doneCmd() *cobra.Command {
	var (
		dateFlag string
		undo     bool
	)

	cmd := &cobra.Command{
		Use:   "done <activity-id>",
		Short: "Mark an activity as completed",
		Long: `Mark an activity of a saved day as completed, or clear the mark with
--undo. Activity ids are shown by 'rotina show --ids'.`,
		Example: `  rotina done work-0-0
  rotina done meal-1 --undo
  rotina done exercise-0 --date yesterday`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}

			act, err := a.planner.SetCompleted(context.Background(), date, args[0], !undo)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if undo {
				fmt.Fprintf(w, "%s %s desmarcado\n", formatMuted("○"), act.Name)
			} else {
				fmt.Fprintf(w, "%s %s concluído\n", formatDone("✓"), act.Name)
			}
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the completion mark")
	return cmd
}

func (a *App) drinkCmd() *cobra.Command {
	var (
		dateFlag string
		id       string
	)

	cmd := &cobra.Command{
		Use:   "drink <ml>",
		Short: "Record water intake",
		Long: `Add water (in ml) to the day's hydration goal. The hydration activity is
marked as completed once the goal is reached.`,
		Example: `  rotina drink 250
  rotina drink 500 --date yesterday`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}

			act, err := a.planner.AddProgress(context.Background(), date, id, amount)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", formatType(act.Type, act.Name), act.WaterProgress())
			progress := 0
			if act.Tracking != nil {
				progress = act.Tracking.Progress
			}
			fmt.Fprintln(w, ProgressBar(progress, act.WaterGoal, 20))
			if act.IsCompleted() {
				fmt.Fprintln(w, formatDone("Meta de hidratação atingida!"))
			}
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().StringVar(&id, "id", plan.IDHydration, "Activity id to record against")
	return cmd
}

func (a *App) overrideCmd() *cobra.Command {
	var (
		dateFlag  string
		start     string
		end       string
		reason    string
		clearFlag bool
	)

	cmd := &cobra.Command{
		Use:   "override <activity-id>",
		Short: "Adjust an activity's time for one day",
		Long: `Move an activity of a saved day without touching its plan. The
adjustment survives rebuilds of the day as long as the activity keeps its
name.`,
		Example: `  rotina override work-0-0 --start 09:00 --end 13:00 --reason "consulta médica"
  rotina override work-0-0 --clear`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearFlag && (start == "" || end == "") {
				return fmt.Errorf("--start and --end are required unless --clear is set")
			}
			if !clearFlag && (!clock.Valid(start) || !clock.Valid(end)) {
				return fmt.Errorf("--start and --end must be HH:MM, got %q and %q", start, end)
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			date, err := a.resolveDate(dateFlag)
			if err != nil {
				return err
			}

			ctx := context.Background()
			w := cmd.OutOrStdout()
			if clearFlag {
				act, err := a.planner.ClearOverride(ctx, date, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s voltou para %s\n", act.Name, act.Interval())
				return nil
			}

			act, err := a.planner.SetOverride(ctx, date, args[0], start, end, reason)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s %s %s\n", act.Name, formatMuted(act.Interval()+" →"), formatOverride(start+"-"+end))
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM)")
	cmd.Flags().StringVar(&reason, "reason", "", "Why the activity moved")
	cmd.Flags().BoolVar(&clearFlag, "clear", false, "Remove the adjustment")
	return cmd
}
