// Package summary aggregates tracking statistics for days and weeks.
package summary

import (
	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/plan"
)

// Stats holds aggregated tracking statistics for one or more built days.
type Stats struct {
	Total          int
	Completed      int
	BusyMinutes    int // non-sleep block time
	WaterML        int
	WaterGoalML    int
	Overridden     int
	ShiftedMinutes int // planned minutes an override moved out of the original slot
}

// CompletedPercent returns the share of completed activities.
func (s Stats) CompletedPercent() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Completed * 100) / s.Total
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Total += other.Total
	s.Completed += other.Completed
	s.BusyMinutes += other.BusyMinutes
	s.WaterML += other.WaterML
	s.WaterGoalML += other.WaterGoalML
	s.Overridden += other.Overridden
	s.ShiftedMinutes += other.ShiftedMinutes
}

// ComputeStats aggregates the activities of a day. Synthetic activities
// are not counted.
func ComputeStats(activities []plan.Activity) Stats {
	var stats Stats
	for _, a := range activities {
		if a.Synthetic {
			continue
		}
		stats.Total++
		if a.IsCompleted() {
			stats.Completed++
		}
		if a.Override != nil {
			stats.Overridden++
		}
		if a.Type == plan.TypeHydration {
			stats.WaterGoalML += a.WaterGoal
			if a.Tracking != nil {
				stats.WaterML += a.Tracking.Progress
			}
		}
		if a.IsSleep() || a.Type.IsPoint() {
			continue
		}
		start, end := a.Effective()
		if s, e, err := clock.Span(start, end); err == nil {
			stats.BusyMinutes += e - s
		}
		if a.Override != nil {
			if s, e, err := clock.Span(a.StartTime, a.EndTime); err == nil {
				stats.ShiftedMinutes += e - s - clock.OverlapMinutes(a.StartTime, a.EndTime, start, end)
			}
		}
	}
	return stats
}
