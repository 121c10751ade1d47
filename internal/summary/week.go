package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/freetime"
	"github.com/javiermolinar/rotina/internal/plan"
)

// Source is the subset of the planner a week summary reads from.
type Source interface {
	Week(ctx context.Context, date time.Time) ([]*plan.DayRecord, error)
	FreeTime(ctx context.Context, date time.Time) ([]freetime.FreeSlot, error)
}

// DaySummary is one day of a week summary.
type DaySummary struct {
	Date        time.Time
	Planned     bool
	Stats       Stats
	FreeMinutes int
}

// WeekSummary holds aggregated week data.
type WeekSummary struct {
	Start       time.Time // Monday
	End         time.Time // Sunday
	Days        []DaySummary
	Planned     int
	Stats       Stats
	FreeMinutes int
}

// SummarizeWeek builds the summary of the week containing date from its
// records. free maps date keys to free minutes; missing keys count as zero.
func SummarizeWeek(date time.Time, records []*plan.DayRecord, free map[string]int) *WeekSummary {
	start, end := dateutil.WeekRange(date)

	byDate := make(map[string]*plan.DayRecord, len(records))
	for _, rec := range records {
		byDate[dateutil.Key(rec.Date)] = rec
	}

	summary := &WeekSummary{Start: start, End: end, Days: make([]DaySummary, 0, 7)}
	for i := range 7 {
		day := start.AddDate(0, 0, i)
		key := dateutil.Key(day)

		ds := DaySummary{Date: day}
		if rec, ok := byDate[key]; ok {
			ds.Planned = true
			ds.Stats = ComputeStats(rec.Activities)
			ds.FreeMinutes = free[key]

			summary.Planned++
			summary.Stats.Add(ds.Stats)
			summary.FreeMinutes += ds.FreeMinutes
		}
		summary.Days = append(summary.Days, ds)
	}
	return summary
}

// BuildWeekSummary loads the records and free time of the week containing
// date and summarizes them.
func BuildWeekSummary(ctx context.Context, src Source, date time.Time) (*WeekSummary, error) {
	records, err := src.Week(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetching week: %w", err)
	}

	free := make(map[string]int, len(records))
	for _, rec := range records {
		slots, err := src.FreeTime(ctx, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("free time for %s: %w", dateutil.Key(rec.Date), err)
		}
		free[dateutil.Key(rec.Date)] = freetime.TotalMinutes(slots)
	}

	return SummarizeWeek(date, records, free), nil
}
