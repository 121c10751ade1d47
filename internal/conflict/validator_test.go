package conflict

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/plan"
)

func act(id string, typ plan.ActivityType, name, start, end string) plan.Activity {
	return plan.Activity{ID: id, Type: typ, Name: name, StartTime: start, EndTime: end}
}

// friday is 2026-10-16; the previous day is a Thursday.
var friday = time.Date(2026, 10, 16, 0, 0, 0, 0, time.Local)

func lookupFor(dates map[string]*plan.PlanData) LookupFunc {
	return func(date time.Time) (*plan.PlanData, error) {
		return dates[dateutil.Key(date)], nil
	}
}

func TestValidate_SameDay(t *testing.T) {
	tests := []struct {
		name       string
		activities []plan.Activity
		wantPairs  [][2]string
	}{
		{
			name: "containment",
			activities: []plan.Activity{
				act("work-0-0", plan.TypeWork, "A", "08:00", "09:00"),
				act("study-0-0", plan.TypeStudy, "B", "08:30", "08:45"),
			},
			wantPairs: [][2]string{{"work-0-0", "study-0-0"}},
		},
		{
			name: "identical",
			activities: []plan.Activity{
				act("work-0-0", plan.TypeWork, "A", "09:00", "12:00"),
				act("hobby-0-0", plan.TypeHobby, "B", "09:00", "12:00"),
			},
			wantPairs: [][2]string{{"work-0-0", "hobby-0-0"}},
		},
		{
			name: "back-to-back chain",
			activities: []plan.Activity{
				act("work-0-0", plan.TypeWork, "A", "08:00", "12:00"),
				act("work-0-1", plan.TypeWork, "A", "12:00", "13:00"),
				act("study-0-0", plan.TypeStudy, "B", "13:00", "15:00"),
			},
		},
		{
			name: "sleep pairs are skipped",
			activities: []plan.Activity{
				act("sleep-acordar", plan.TypeSleep, "Acordar", "00:00", "08:00"),
				act("work-0-0", plan.TypeWork, "PADARIA", "06:26", "08:26"),
				act("sleep-dormir", plan.TypeSleep, "Dormir", "22:00", "23:59"),
			},
		},
		{
			name: "meal inside a job",
			activities: []plan.Activity{
				act("work-0-0", plan.TypeWork, "A", "08:00", "12:00"),
				act("meal-0", plan.TypeMeal, "Refeição 1", "10:00", "10:00"),
			},
			wantPairs: [][2]string{{"work-0-0", "meal-0"}},
		},
		{
			name: "meal at a job boundary",
			activities: []plan.Activity{
				act("work-0-0", plan.TypeWork, "A", "08:00", "12:00"),
				act("meal-0", plan.TypeMeal, "Refeição 1", "12:00", "12:00"),
			},
		},
		{
			name: "wrapping activity",
			activities: []plan.Activity{
				act("project-0-0", plan.TypeProject, "Deploy", "23:00", "01:00"),
				act("hobby-0-0", plan.TypeHobby, "Game", "23:30", "23:45"),
			},
			wantPairs: [][2]string{{"project-0-0", "hobby-0-0"}},
		},
		{
			name: "three-way overlap",
			activities: []plan.Activity{
				act("work-0-0", plan.TypeWork, "A", "08:00", "10:00"),
				act("study-0-0", plan.TypeStudy, "B", "09:00", "11:00"),
				act("hobby-0-0", plan.TypeHobby, "C", "09:30", "09:45"),
			},
			wantPairs: [][2]string{
				{"work-0-0", "study-0-0"},
				{"work-0-0", "hobby-0-0"},
				{"study-0-0", "hobby-0-0"},
			},
		},
	}

	v := NewValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(tt.activities, friday)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if len(got) != len(tt.wantPairs) {
				t.Fatalf("got %d conflicts (%v), want %d", len(got), got, len(tt.wantPairs))
			}
			for i, pair := range tt.wantPairs {
				if got[i].A.ID != pair[0] || got[i].B.ID != pair[1] {
					t.Errorf("conflict %d = %s/%s, want %s/%s", i, got[i].A.ID, got[i].B.ID, pair[0], pair[1])
				}
				if got[i].CrossDay {
					t.Errorf("conflict %d should not be cross-day", i)
				}
			}
		})
	}
}

func TestValidate_CrossDay(t *testing.T) {
	thursday := dateutil.Key(dateutil.PreviousDay(friday))
	v := NewValidator(lookupFor(map[string]*plan.PlanData{
		thursday: {Sleep: "23:00", Wake: "08:00"},
	}))

	activities := []plan.Activity{
		act("work-0-0", plan.TypeWork, "PADARIA", "06:26", "08:26"),
		act("study-0-0", plan.TypeStudy, "Inglês", "08:26", "09:30"),
		act("work-1-0", plan.TypeWork, "Loja", "13:00", "17:00"),
	}

	got, err := v.Validate(activities, friday)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d conflicts (%v), want 1", len(got), got)
	}

	c := got[0]
	if !c.CrossDay || !c.A.Synthetic {
		t.Errorf("conflict should be cross-day with a synthetic sleep: %+v", c)
	}
	if c.A.Name != "Dormir (quinta-feira)" {
		t.Errorf("A.Name = %q, want Dormir (quinta-feira)", c.A.Name)
	}
	if c.B.ID != "work-0-0" {
		t.Errorf("B = %s, want work-0-0", c.B.ID)
	}
	want := "Dormir (quinta-feira) (23:00-08:00) conflita com PADARIA (06:26-08:26)"
	if c.String() != want {
		t.Errorf("String() = %q\nwant %q", c.String(), want)
	}
}

func TestValidate_CrossDayCutoff(t *testing.T) {
	thursday := dateutil.Key(dateutil.PreviousDay(friday))
	lookup := lookupFor(map[string]*plan.PlanData{
		thursday: {Sleep: "02:00", Wake: "13:00"},
	})

	activities := []plan.Activity{
		act("work-0-0", plan.TypeWork, "Manhã", "11:00", "12:30"),
		act("study-0-0", plan.TypeStudy, "Tarde", "12:30", "12:45"),
		act("hydration-daily", plan.TypeHydration, "Hidratação", "23:59", "23:59"),
	}

	got, err := NewValidator(lookup).Validate(activities, friday)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	// Only the activity touching the morning window is checked.
	if len(got) != 1 || got[0].B.ID != "work-0-0" {
		t.Fatalf("got %v, want only work-0-0", got)
	}

	got, err = NewValidator(lookup, WithEarlyMorningCutoff(13*60)).Validate(activities, friday)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("with 13:00 cutoff got %d conflicts (%v), want 2", len(got), got)
	}
}

func TestValidate_NoPreviousDay(t *testing.T) {
	v := NewValidator(lookupFor(nil))
	got, err := v.Validate([]plan.Activity{
		act("work-0-0", plan.TypeWork, "PADARIA", "06:26", "08:26"),
	}, friday)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestValidate_EndToEndScenario(t *testing.T) {
	p := plan.PlanData{
		Sleep: "05:30",
		Wake:  "08:00",
		Jobs:  []plan.Item{{Name: "PADARIA", Times: []plan.TimeRange{{Start: "06:26", End: "08:26"}}}},
	}
	activities, err := plan.Build(p, 0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Same-day: the sleep/work pair is skipped.
	got, err := NewValidator(nil).Validate(activities, friday)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("same-day conflicts = %v, want none", got)
	}

	// Cross-day: the previous day used the same plan.
	thursday := dateutil.Key(dateutil.PreviousDay(friday))
	got, err = NewValidator(lookupFor(map[string]*plan.PlanData{thursday: &p})).Validate(activities, friday)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(got) != 1 || got[0].B.ID != "work-0-0" || !got[0].CrossDay {
		t.Fatalf("cross-day conflicts = %v, want PADARIA", got)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Run("malformed activity", func(t *testing.T) {
		_, err := NewValidator(nil).Validate([]plan.Activity{
			act("work-0-0", plan.TypeWork, "A", "8:00", "09:00"),
		}, friday)
		if !errors.Is(err, clock.ErrMalformedTime) {
			t.Errorf("error = %v, want ErrMalformedTime", err)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		boom := errors.New("boom")
		v := NewValidator(func(time.Time) (*plan.PlanData, error) { return nil, boom })
		_, err := v.Validate(nil, friday)
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want boom", err)
		}
	})

	t.Run("malformed previous wake", func(t *testing.T) {
		thursday := dateutil.Key(dateutil.PreviousDay(friday))
		v := NewValidator(lookupFor(map[string]*plan.PlanData{thursday: {Sleep: "23:00", Wake: "8h"}}))
		_, err := v.Validate(nil, friday)
		if !errors.Is(err, clock.ErrMalformedTime) {
			t.Errorf("error = %v, want ErrMalformedTime", err)
		}
	})
}

func TestFormatConflicts(t *testing.T) {
	if got := FormatConflicts(nil); got != "" {
		t.Errorf("FormatConflicts(nil) = %q, want empty", got)
	}

	got := FormatConflicts([]Conflict{{
		A: act("work-0-0", plan.TypeWork, "X", "08:00", "09:00"),
		B: act("study-0-0", plan.TypeStudy, "Y", "08:30", "10:00"),
	}})
	if !strings.Contains(got, "X (08:00-09:00) conflita com Y (08:30-10:00)") {
		t.Errorf("FormatConflicts = %q", got)
	}
}
