package planner

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/rotina/internal/config"
	"github.com/javiermolinar/rotina/internal/db"
	"github.com/javiermolinar/rotina/internal/plan"
)

var (
	thursday = time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local)
	friday   = time.Date(2026, 10, 16, 0, 0, 0, 0, time.Local)
)

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()

	repo, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	p := New(repo, nil)
	p.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.Local) }
	return p
}

func dayPlan(jobName, start, end string) plan.PlanData {
	goal := 2000
	return plan.PlanData{
		Sleep: "23:00",
		Wake:  "06:00",
		Jobs: []plan.Item{
			{Name: jobName, Times: []plan.TimeRange{{Start: start, End: end}}},
		},
		Meals:     []string{"12:30"},
		Hydration: &goal,
	}
}

func TestFinalize_Saves(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	res, err := p.Finalize(ctx, friday.Add(15*time.Hour), dayPlan("PADARIA", "08:00", "12:00"))
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if res.HasConflicts() {
		t.Fatalf("unexpected conflicts: %v", res.Conflicts)
	}
	if !res.Saved {
		t.Error("expected Saved")
	}
	if !res.Date.Equal(friday) {
		t.Errorf("Date = %v, want midnight %v", res.Date, friday)
	}

	rec, err := p.Day(ctx, friday)
	if err != nil {
		t.Fatalf("Day failed: %v", err)
	}
	if !rec.IsPlanned || rec.DayName != "sexta-feira" || rec.FormattedDate != "16/10/2026" {
		t.Errorf("unexpected metadata: %+v", rec)
	}
	if len(rec.Activities) != len(res.Activities) {
		t.Errorf("persisted %d activities, built %d", len(rec.Activities), len(res.Activities))
	}
}

func TestFinalize_ConflictsAbortSave(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	if _, err := p.Finalize(ctx, friday, dayPlan("PADARIA", "08:00", "12:00")); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	data := dayPlan("PADARIA", "08:00", "12:00")
	data.Studies = []plan.Item{{Name: "INGLÊS", Times: []plan.TimeRange{{Start: "11:00", End: "13:00"}}}}

	res, err := p.Finalize(ctx, friday, data)
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if !res.HasConflicts() {
		t.Fatal("expected conflicts")
	}
	if res.Saved {
		t.Error("conflicting day must not be saved")
	}

	rec, _ := p.Day(ctx, friday)
	if len(rec.PlanData.Studies) != 0 {
		t.Error("previous record was overwritten")
	}
	revs, _ := p.Revisions(ctx, friday)
	if len(revs) != 1 {
		t.Errorf("got %d revisions, want 1", len(revs))
	}
}

func TestFinalize_CrossDay(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	prev := plan.PlanData{Sleep: "23:00", Wake: "07:00"}
	if _, err := p.Finalize(ctx, thursday, prev); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	data := plan.PlanData{
		Sleep: "05:30",
		Wake:  "08:00",
		Jobs:  []plan.Item{{Name: "PADARIA", Times: []plan.TimeRange{{Start: "06:26", End: "08:26"}}}},
	}
	res, err := p.Check(ctx, friday, data)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(res.Conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1: %v", len(res.Conflicts), res.Conflicts)
	}
	c := res.Conflicts[0]
	if !c.CrossDay || c.B.Name != "PADARIA" {
		t.Errorf("unexpected conflict %+v", c)
	}
	if c.A.Name != "Dormir (quinta-feira)" {
		t.Errorf("A.Name = %q", c.A.Name)
	}
	if res.Saved {
		t.Error("Check must not save")
	}
	if _, err := p.Day(ctx, friday); !errors.Is(err, ErrDayNotFound) {
		t.Errorf("Check wrote the day: %v", err)
	}
}

func TestFinalize_PreservesTracking(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	if _, err := p.Finalize(ctx, friday, dayPlan("PADARIA", "08:00", "12:00")); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	created, _ := p.Day(ctx, friday)

	if _, err := p.SetCompleted(ctx, friday, "work-0-0", true); err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}

	p.now = func() time.Time { return time.Date(2026, 10, 16, 10, 0, 0, 0, time.Local) }
	res, err := p.Finalize(ctx, friday, dayPlan("PADARIA", "07:00", "12:00"))
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if res.HasConflicts() || !res.Saved {
		t.Fatalf("rebuild rejected: %v", res.Conflicts)
	}
	work := res.Activities[plan.FindActivity(res.Activities, "work-0-0")]
	if !work.IsCompleted() {
		t.Error("completion lost on rebuild")
	}
	if work.StartTime != "07:00" {
		t.Errorf("StartTime = %s, want 07:00", work.StartTime)
	}

	rec, _ := p.Day(ctx, friday)
	if !rec.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", created.CreatedAt, rec.CreatedAt)
	}
	if !rec.LastSaved.After(created.LastSaved) {
		t.Error("LastSaved was not bumped")
	}

	renamed, err := p.Finalize(ctx, friday, dayPlan("MERCADO", "07:00", "12:00"))
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if renamed.HasConflicts() || !renamed.Saved {
		t.Fatalf("rename rejected: %v", renamed.Conflicts)
	}
	if renamed.Activities[plan.FindActivity(renamed.Activities, "work-0-0")].Tracking != nil {
		t.Error("renamed job should not inherit tracking")
	}
}

func TestRebuild(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	if _, err := p.Rebuild(ctx, friday); !errors.Is(err, ErrDayNotFound) {
		t.Fatalf("error = %v, want ErrDayNotFound", err)
	}

	if _, err := p.Finalize(ctx, friday, dayPlan("PADARIA", "08:00", "12:00")); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if _, err := p.AddProgress(ctx, friday, plan.IDHydration, 500); err != nil {
		t.Fatalf("AddProgress failed: %v", err)
	}

	res, err := p.Rebuild(ctx, friday)
	if err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	hyd := res.Activities[plan.FindActivity(res.Activities, plan.IDHydration)]
	if hyd.Tracking == nil || hyd.Tracking.Progress != 500 {
		t.Errorf("progress lost on rebuild: %+v", hyd.Tracking)
	}

	revs, _ := p.Revisions(ctx, friday)
	if len(revs) != 2 {
		t.Errorf("got %d revisions, want 2", len(revs))
	}
}

func TestFinalize_DefaultHydration(t *testing.T) {
	repo, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	cfg := config.Default()
	cfg.Planner.DefaultHydrationML = 3000
	p := New(repo, cfg)

	data := dayPlan("PADARIA", "08:00", "12:00")
	data.Hydration = nil
	res, err := p.Finalize(context.Background(), friday, data)
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	i := plan.FindActivity(res.Activities, plan.IDHydration)
	if i < 0 || res.Activities[i].WaterGoal != 3000 {
		t.Errorf("expected hydration goal 3000 from config")
	}
}

func TestFinalize_InvalidData(t *testing.T) {
	p := newTestPlanner(t)

	_, err := p.Finalize(context.Background(), friday, plan.PlanData{Wake: "06:00"})
	if !errors.Is(err, plan.ErrMissingField) {
		t.Errorf("error = %v, want ErrMissingField", err)
	}
}

func TestSetCompleted(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	if _, err := p.Finalize(ctx, friday, dayPlan("PADARIA", "08:00", "12:00")); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	a, err := p.SetCompleted(ctx, friday, "meal-0", true)
	if err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}
	if !a.IsCompleted() || a.Tracking.CompletedAt == nil {
		t.Errorf("unexpected tracking %+v", a.Tracking)
	}

	a, err = p.SetCompleted(ctx, friday, "meal-0", false)
	if err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}
	if a.Tracking != nil {
		t.Errorf("empty tracking should be cleared, got %+v", a.Tracking)
	}

	rec, _ := p.Day(ctx, friday)
	if rec.Activities[plan.FindActivity(rec.Activities, "meal-0")].IsCompleted() {
		t.Error("undo was not persisted")
	}

	tests := []struct {
		name string
		date time.Time
		id   string
		want error
	}{
		{"unknown day", thursday, "meal-0", ErrDayNotFound},
		{"unknown activity", friday, "meal-9", ErrActivityNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := p.SetCompleted(ctx, tc.date, tc.id, true); !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAddProgress(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	if _, err := p.Finalize(ctx, friday, dayPlan("PADARIA", "08:00", "12:00")); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	a, err := p.AddProgress(ctx, friday, plan.IDHydration, 1500)
	if err != nil {
		t.Fatalf("AddProgress failed: %v", err)
	}
	if a.IsCompleted() {
		t.Error("goal not reached yet")
	}

	a, err = p.AddProgress(ctx, friday, plan.IDHydration, 500)
	if err != nil {
		t.Fatalf("AddProgress failed: %v", err)
	}
	if a.Tracking.Progress != 2000 || len(a.Tracking.Log) != 2 {
		t.Errorf("unexpected tracking %+v", a.Tracking)
	}
	if !a.IsCompleted() {
		t.Error("reaching the goal should complete hydration")
	}

	if _, err := p.AddProgress(ctx, friday, plan.IDHydration, 0); !errors.Is(err, ErrInvalidProgress) {
		t.Errorf("error = %v, want ErrInvalidProgress", err)
	}
	if _, err := p.AddProgress(ctx, friday, "work-0-0", 100); !errors.Is(err, ErrInvalidProgress) {
		t.Errorf("error = %v, want ErrInvalidProgress", err)
	}
}

func TestOverride(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	if _, err := p.Finalize(ctx, friday, dayPlan("PADARIA", "08:00", "12:00")); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	a, err := p.SetOverride(ctx, friday, "work-0-0", "09:00", "13:00", "atraso")
	if err != nil {
		t.Fatalf("SetOverride failed: %v", err)
	}
	if start, end := a.Effective(); start != "09:00" || end != "13:00" {
		t.Errorf("Effective = %s-%s", start, end)
	}

	if _, err := p.SetOverride(ctx, friday, "work-0-0", "9:00", "13:00", ""); err == nil {
		t.Error("expected error for malformed override")
	}

	a, err = p.ClearOverride(ctx, friday, "work-0-0")
	if err != nil {
		t.Fatalf("ClearOverride failed: %v", err)
	}
	if a.Override != nil {
		t.Error("override not cleared")
	}
}

func TestFreeTime(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	if _, err := p.FreeTime(ctx, friday); !errors.Is(err, ErrDayNotFound) {
		t.Fatalf("error = %v, want ErrDayNotFound", err)
	}

	if _, err := p.Finalize(ctx, friday, dayPlan("PADARIA", "08:00", "12:00")); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	slots, err := p.FreeTime(ctx, friday)
	if err != nil {
		t.Fatalf("FreeTime failed: %v", err)
	}
	if len(slots) != 1 || slots[0].StartTime != "12:00" || slots[0].EndTime != "12:30" {
		t.Errorf("unexpected slots %v", slots)
	}
}

func TestWeekDeleteImport(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	for _, d := range []time.Time{thursday, friday} {
		if _, err := p.Finalize(ctx, d, dayPlan("PADARIA", "08:00", "12:00")); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
	}

	week, err := p.Week(ctx, friday)
	if err != nil {
		t.Fatalf("Week failed: %v", err)
	}
	if len(week) != 2 {
		t.Fatalf("got %d days, want 2", len(week))
	}

	if err := p.Delete(ctx, thursday); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := p.Delete(ctx, thursday); !errors.Is(err, ErrDayNotFound) {
		t.Errorf("error = %v, want ErrDayNotFound", err)
	}

	imported, skipped, err := p.Import(ctx, week)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imported != 1 || skipped != 1 {
		t.Errorf("imported=%d skipped=%d, want 1 and 1", imported, skipped)
	}
	if _, err := p.Day(ctx, thursday); err != nil {
		t.Errorf("imported day missing: %v", err)
	}
}
