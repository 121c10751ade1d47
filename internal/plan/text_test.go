package plan

import (
	"strings"
	"testing"
)

func TestActivity_DisplayInterval(t *testing.T) {
	tests := []struct {
		name string
		a    Activity
		want string
	}{
		{"block", Activity{Type: TypeWork, StartTime: "08:00", EndTime: "12:00"}, "08:00-12:00"},
		{"point", Activity{Type: TypeMeal, StartTime: "12:30", EndTime: "12:30"}, "12:30"},
		{"override", Activity{
			Type: TypeWork, StartTime: "08:00", EndTime: "12:00",
			Override: &ScheduleOverride{Start: "09:00", End: "13:00"},
		}, "09:00-13:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DisplayInterval(); got != tt.want {
				t.Errorf("DisplayInterval() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayRecord_PlainText(t *testing.T) {
	goal := 2000
	activities, err := Build(PlanData{
		Sleep:     "23:00",
		Wake:      "06:00",
		Jobs:      []Item{{Name: "PADARIA", Times: []TimeRange{{Start: "08:00", End: "12:00"}}}},
		Meals:     []string{"12:30"},
		Hydration: &goal,
	}, 0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	activities[FindActivity(activities, "work-0-0")].Tracking = &TrackingState{Completed: true}
	activities[FindActivity(activities, IDHydration)].Tracking = &TrackingState{Progress: 500}

	rec := &DayRecord{DayName: "sexta-feira", FormattedDate: "16/10/2026", Activities: activities}
	text := rec.PlainText()

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if lines[0] != "sexta-feira, 16/10/2026" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != len(activities)+1 {
		t.Errorf("got %d lines, want %d", len(lines), len(activities)+1)
	}
	for _, want := range []string{
		"08:00-12:00 Trabalho: PADARIA ✓",
		"12:30 Refeição: Refeição 1",
		"23:59 Hidratação: Hidratação (500/2000ml)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
}
