package ui

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/rotina/internal/plan"
)

// SamplePlan returns an example day touching every category.
func SamplePlan() plan.PlanData {
	water := 2000
	return plan.PlanData{
		Sleep: "23:00",
		Wake:  "06:30",
		Jobs: []plan.Item{
			{Name: "PADARIA", Times: []plan.TimeRange{{Start: "07:30", End: "12:00"}, {Start: "13:30", End: "16:00"}}},
		},
		Studies: []plan.Item{
			{Name: "Inglês", Times: []plan.TimeRange{{Start: "19:00", End: "20:00"}}},
		},
		Hobbies: []plan.Item{
			{Name: "Violão", Times: []plan.TimeRange{{Start: "21:00", End: "21:45"}}},
		},
		Projects: []plan.Item{
			{Name: "Horta", Times: []plan.TimeRange{{Start: "16:30", End: "17:30"}}},
		},
		Cleaning:  &plan.Block{Start: "17:30", End: "18:00", Notes: "cozinha"},
		Exercise:  &plan.Block{Start: "06:45", End: "07:15", Type: "corrida"},
		Meals:     []string{"07:15", "12:00", "18:30"},
		Hydration: &water,
	}
}

func (a *App) templateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print an example plan file",
		Long: `Print an example plan file covering every category. Save it, edit it and
pass it to 'rotina plan'.`,
		Example: `  rotina template > today.toml
  rotina template --json > today.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				data []byte
				err  error
			)
			if asJSON {
				data, err = json.MarshalIndent(SamplePlan(), "", "  ")
				data = append(data, '\n')
			} else {
				data, err = toml.Marshal(SamplePlan())
			}
			if err != nil {
				return fmt.Errorf("encoding template: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of TOML")
	return cmd
}
