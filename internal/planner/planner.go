// Package planner runs the day pipeline: build the timeline, check it for
// conflicts, carry tracking state over and persist the result.
// Both CLI and TUI use this package.
package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/config"
	"github.com/javiermolinar/rotina/internal/conflict"
	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/freetime"
	"github.com/javiermolinar/rotina/internal/logger"
	"github.com/javiermolinar/rotina/internal/plan"
	"github.com/javiermolinar/rotina/internal/tracking"
)

var (
	// ErrDayNotFound is returned when no record exists for the requested date.
	ErrDayNotFound = errors.New("day not planned")
	// ErrActivityNotFound is returned when the day has no activity with the id.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidProgress is returned for progress updates that cannot apply.
	ErrInvalidProgress = errors.New("invalid progress update")
)

// Planner orchestrates building, validating and persisting days.
type Planner struct {
	repo          plan.Repository
	freetime      *freetime.Calculator
	cutoff        int
	hydrationGoal int
	now           func() time.Time
}

// New creates a Planner. A nil cfg selects the defaults.
func New(repo plan.Repository, cfg *config.Config) *Planner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Planner{
		repo:          repo,
		freetime:      freetime.New(cfg.Planner.MinFreeMinutes),
		cutoff:        cfg.CutoffMinutes(),
		hydrationGoal: cfg.Planner.DefaultHydrationML,
		now:           time.Now,
	}
}

// Result is the outcome of Finalize or Check.
type Result struct {
	Date       time.Time
	Activities []plan.Activity
	Conflicts  []conflict.Conflict
	Saved      bool
}

// HasConflicts returns true if the build was rejected.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Finalize builds the day from data and persists it when it has no conflicts.
// On conflicts nothing is written and the previous record stays untouched.
func (p *Planner) Finalize(ctx context.Context, date time.Time, data plan.PlanData) (*Result, error) {
	res, existing, err := p.evaluate(ctx, date, data)
	if err != nil {
		return nil, err
	}
	if res.HasConflicts() {
		logger.Warn("day rejected", "date", dateutil.Key(res.Date), "conflicts", len(res.Conflicts))
		return res, nil
	}

	now := p.now()
	rec := &plan.DayRecord{
		Date:          res.Date,
		DayName:       dateutil.DayName(res.Date),
		FormattedDate: dateutil.FormattedDate(res.Date),
		PlanData:      data,
		Activities:    res.Activities,
		CreatedAt:     now,
		LastSaved:     now,
		IsPlanned:     true,
	}
	if existing != nil {
		rec.CreatedAt = existing.CreatedAt
	}

	if err := p.repo.SaveDay(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving day: %w", err)
	}
	res.Saved = true

	logger.Info("day saved", "date", dateutil.Key(res.Date), "activities", len(res.Activities))
	return res, nil
}

// Check runs Finalize without writing anything.
func (p *Planner) Check(ctx context.Context, date time.Time, data plan.PlanData) (*Result, error) {
	res, _, err := p.evaluate(ctx, date, data)
	return res, err
}

// Rebuild re-runs Finalize from the persisted PlanData of the date.
func (p *Planner) Rebuild(ctx context.Context, date time.Time) (*Result, error) {
	rec, err := p.Day(ctx, date)
	if err != nil {
		return nil, err
	}
	logger.Debug("rebuilding day", "date", dateutil.Key(rec.Date))
	return p.Finalize(ctx, rec.Date, rec.PlanData)
}

func (p *Planner) evaluate(ctx context.Context, date time.Time, data plan.PlanData) (*Result, *plan.DayRecord, error) {
	day := dateutil.TruncateToDay(date)

	activities, err := plan.Build(data, p.hydrationGoal)
	if err != nil {
		return nil, nil, fmt.Errorf("building day: %w", err)
	}
	logger.Debug("day built", "date", dateutil.Key(day), "activities", len(activities))

	v := conflict.NewValidator(p.lookup(ctx), conflict.WithEarlyMorningCutoff(p.cutoff))
	conflicts, err := v.Validate(activities, day)
	if err != nil {
		return nil, nil, fmt.Errorf("validating day: %w", err)
	}

	existing, err := p.repo.GetDay(ctx, day)
	if err != nil {
		return nil, nil, fmt.Errorf("loading day: %w", err)
	}
	if existing != nil && len(conflicts) == 0 {
		activities = tracking.Preserve(activities, existing.Activities)
	}

	return &Result{Date: day, Activities: activities, Conflicts: conflicts}, existing, nil
}

func (p *Planner) lookup(ctx context.Context) conflict.LookupFunc {
	return func(date time.Time) (*plan.PlanData, error) {
		rec, err := p.repo.GetDay(ctx, date)
		if err != nil || rec == nil {
			return nil, err
		}
		return &rec.PlanData, nil
	}
}

// Day returns the persisted record of the date.
func (p *Planner) Day(ctx context.Context, date time.Time) (*plan.DayRecord, error) {
	rec, err := p.repo.GetDay(ctx, dateutil.TruncateToDay(date))
	if err != nil {
		return nil, fmt.Errorf("loading day: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, dateutil.Key(date))
	}
	return rec, nil
}

// Week returns the persisted records of the Monday-Sunday week containing date.
func (p *Planner) Week(ctx context.Context, date time.Time) ([]*plan.DayRecord, error) {
	monday, sunday := dateutil.WeekRange(date)
	return p.Range(ctx, monday, sunday)
}

// Range returns the persisted records from start to end inclusive, oldest first.
func (p *Planner) Range(ctx context.Context, start, end time.Time) ([]*plan.DayRecord, error) {
	days, err := p.repo.ListDays(ctx, dateutil.TruncateToDay(start), dateutil.TruncateToDay(end))
	if err != nil {
		return nil, fmt.Errorf("listing days: %w", err)
	}
	return days, nil
}

// FreeTime returns the free slots of the persisted day.
func (p *Planner) FreeTime(ctx context.Context, date time.Time) ([]freetime.FreeSlot, error) {
	rec, err := p.Day(ctx, date)
	if err != nil {
		return nil, err
	}
	return p.freetime.Compute(rec.Activities)
}

// Revisions returns the saved snapshots of the date, newest first.
func (p *Planner) Revisions(ctx context.Context, date time.Time) ([]*plan.Revision, error) {
	revs, err := p.repo.ListRevisions(ctx, dateutil.TruncateToDay(date))
	if err != nil {
		return nil, fmt.Errorf("listing revisions: %w", err)
	}
	return revs, nil
}

// Delete removes the persisted record of the date.
func (p *Planner) Delete(ctx context.Context, date time.Time) error {
	if _, err := p.Day(ctx, date); err != nil {
		return err
	}
	if err := p.repo.DeleteDay(ctx, dateutil.TruncateToDay(date)); err != nil {
		return fmt.Errorf("deleting day: %w", err)
	}
	logger.Info("day deleted", "date", dateutil.Key(date))
	return nil
}

// Import saves records whose dates are not yet planned. Existing dates are
// skipped. Returns the number of imported and skipped records.
func (p *Planner) Import(ctx context.Context, records []*plan.DayRecord) (imported, skipped int, err error) {
	for _, rec := range records {
		existing, err := p.repo.GetDay(ctx, rec.Date)
		if err != nil {
			return imported, skipped, fmt.Errorf("loading day: %w", err)
		}
		if existing != nil {
			skipped++
			continue
		}
		if err := p.repo.SaveDay(ctx, rec); err != nil {
			return imported, skipped, fmt.Errorf("importing %s: %w", dateutil.Key(rec.Date), err)
		}
		imported++
	}
	logger.Info("days imported", "imported", imported, "skipped", skipped)
	return imported, skipped, nil
}

// SetCompleted marks an activity of the persisted day as done or not done.
func (p *Planner) SetCompleted(ctx context.Context, date time.Time, id string, done bool) (*plan.Activity, error) {
	return p.mutate(ctx, date, id, func(a *plan.Activity) error {
		if done {
			if a.Tracking == nil {
				a.Tracking = &plan.TrackingState{}
			}
			at := p.now()
			a.Tracking.Completed = true
			a.Tracking.CompletedAt = &at
			return nil
		}
		if a.Tracking == nil {
			return nil
		}
		a.Tracking.Completed = false
		a.Tracking.CompletedAt = nil
		if a.Tracking.Progress == 0 && len(a.Tracking.Log) == 0 {
			a.Tracking = nil
		}
		return nil
	})
}

// AddProgress records amount ml of water against the hydration activity.
// The activity completes once its goal is reached.
func (p *Planner) AddProgress(ctx context.Context, date time.Time, id string, amount int) (*plan.Activity, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidProgress, amount)
	}
	return p.mutate(ctx, date, id, func(a *plan.Activity) error {
		if a.Type != plan.TypeHydration {
			return fmt.Errorf("%w: %s does not track progress", ErrInvalidProgress, a.ID)
		}
		if a.Tracking == nil {
			a.Tracking = &plan.TrackingState{}
		}
		now := p.now()
		a.Tracking.Progress += amount
		a.Tracking.Log = append(a.Tracking.Log, plan.ProgressEntry{At: now, Amount: amount})
		if a.WaterGoal > 0 && a.Tracking.Progress >= a.WaterGoal && !a.Tracking.Completed {
			a.Tracking.Completed = true
			a.Tracking.CompletedAt = &now
		}
		return nil
	})
}

// SetOverride moves an activity for this day only. The PlanData is unchanged.
func (p *Planner) SetOverride(ctx context.Context, date time.Time, id, start, end, reason string) (*plan.Activity, error) {
	if _, _, err := clock.Span(start, end); err != nil {
		return nil, fmt.Errorf("override %s-%s: %w", start, end, err)
	}
	return p.mutate(ctx, date, id, func(a *plan.Activity) error {
		a.Override = &plan.ScheduleOverride{Start: start, End: end, Reason: reason}
		return nil
	})
}

// ClearOverride removes a schedule override.
func (p *Planner) ClearOverride(ctx context.Context, date time.Time, id string) (*plan.Activity, error) {
	return p.mutate(ctx, date, id, func(a *plan.Activity) error {
		a.Override = nil
		return nil
	})
}

func (p *Planner) mutate(ctx context.Context, date time.Time, id string, fn func(*plan.Activity) error) (*plan.Activity, error) {
	rec, err := p.Day(ctx, date)
	if err != nil {
		return nil, err
	}

	i := plan.FindActivity(rec.Activities, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrActivityNotFound, id)
	}
	if err := fn(&rec.Activities[i]); err != nil {
		return nil, err
	}

	if err := p.repo.UpdateActivities(ctx, rec.Date, rec.Activities); err != nil {
		return nil, fmt.Errorf("updating activities: %w", err)
	}
	logger.Debug("activity updated", "date", dateutil.Key(rec.Date), "id", id)

	a := rec.Activities[i]
	return &a, nil
}
