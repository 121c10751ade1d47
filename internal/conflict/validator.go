// Package conflict detects overlapping activities within a day and against
// the previous day's sleep window. Conflicts are reported, never resolved.
package conflict

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/plan"
)

// IDPreviousSleep is the id of the synthetic previous-night sleep activity.
const IDPreviousSleep = "sleep-previous"

// DefaultEarlyMorningCutoff is the latest minute of day an activity may touch
// to be checked against the previous night's wake-up (12:00).
const DefaultEarlyMorningCutoff = clock.Noon

// Conflict is a pair of entries whose intervals overlap.
type Conflict struct {
	A        plan.Activity // may be synthetic (A.Synthetic)
	B        plan.Activity
	CrossDay bool // A is the previous day's sleep
}

// String renders the conflict for display.
func (c Conflict) String() string {
	return fmt.Sprintf("%s (%s) conflita com %s (%s)",
		c.A.Name, c.A.Interval(), c.B.Name, c.B.Interval())
}

// FormatConflicts returns a human-readable list of conflicts.
func FormatConflicts(conflicts []Conflict) string {
	if len(conflicts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Conflitos de horário:\n")
	for _, c := range conflicts {
		fmt.Fprintf(&b, "- %s\n", c.String())
	}
	return b.String()
}

// LookupFunc returns the persisted PlanData of a date, or nil if the date has
// no saved plan.
type LookupFunc func(date time.Time) (*plan.PlanData, error)

// Option configures a Validator.
type Option func(*Validator)

// WithEarlyMorningCutoff sets the cutoff (minutes since midnight) for the
// previous-night sleep check.
func WithEarlyMorningCutoff(minutes int) Option {
	return func(v *Validator) {
		v.cutoff = minutes
	}
}

// Validator checks a built day for overlapping activities.
type Validator struct {
	lookup LookupFunc
	cutoff int
}

// NewValidator creates a Validator. lookup may be nil, which disables the
// previous-day sleep check.
func NewValidator(lookup LookupFunc, opts ...Option) *Validator {
	v := &Validator{
		lookup: lookup,
		cutoff: DefaultEarlyMorningCutoff,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate returns every conflict in the day's activities. An empty result
// means the day is safe to save.
// It checks:
// - Every pair of non-sleep activities for half-open overlap
// - Early-morning activities against the previous day's wake time
func (v *Validator) Validate(activities []plan.Activity, date time.Time) ([]Conflict, error) {
	conflicts, err := sameDay(activities)
	if err != nil {
		return nil, err
	}

	cross, err := v.crossDay(activities, date)
	if err != nil {
		return nil, err
	}
	return append(conflicts, cross...), nil
}

// sameDay checks every unordered pair where neither side is sleep.
func sameDay(activities []plan.Activity) ([]Conflict, error) {
	type span struct{ s, e int }
	spans := make([]span, len(activities))
	for i, a := range activities {
		s, e, err := clock.Span(a.StartTime, a.EndTime)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", a.ID, err)
		}
		spans[i] = span{s, e}
	}

	var conflicts []Conflict
	for i := 0; i < len(activities); i++ {
		if activities[i].IsSleep() {
			continue
		}
		for j := i + 1; j < len(activities); j++ {
			if activities[j].IsSleep() {
				continue
			}
			if clock.Overlaps(spans[i].s, spans[i].e, spans[j].s, spans[j].e) {
				conflicts = append(conflicts, Conflict{A: activities[i], B: activities[j]})
			}
		}
	}
	return conflicts, nil
}

// crossDay flags early-morning activities that start before the previous
// day's wake time.
func (v *Validator) crossDay(activities []plan.Activity, date time.Time) ([]Conflict, error) {
	if v.lookup == nil {
		return nil, nil
	}

	prevDate := dateutil.PreviousDay(date)
	prev, err := v.lookup(prevDate)
	if err != nil {
		return nil, fmt.Errorf("looking up %s: %w", dateutil.Key(prevDate), err)
	}
	if prev == nil || prev.Wake == "" {
		return nil, nil
	}

	sleepEnd, err := clock.ToMinutes(prev.Wake)
	if err != nil {
		return nil, fmt.Errorf("previous day wake: %w", err)
	}

	previous := plan.Activity{
		ID:        IDPreviousSleep,
		Type:      plan.TypeSleep,
		Name:      fmt.Sprintf("%s (%s)", plan.NameSleepStart, dateutil.DayName(prevDate)),
		StartTime: prev.Sleep,
		EndTime:   prev.Wake,
		Synthetic: true,
	}
	if previous.StartTime == "" {
		previous.StartTime = clock.StartOfDay
	}

	var conflicts []Conflict
	for _, a := range activities {
		if a.IsSleep() {
			continue
		}
		start, err := clock.ToMinutes(a.StartTime)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", a.ID, err)
		}
		end, err := clock.ToMinutes(a.EndTime)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", a.ID, err)
		}
		// Anything after the cutoff cannot collide with last night's sleep.
		if start > v.cutoff && end > v.cutoff {
			continue
		}
		if start < sleepEnd {
			conflicts = append(conflicts, Conflict{A: previous, B: a, CrossDay: true})
		}
	}
	return conflicts, nil
}
