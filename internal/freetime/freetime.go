// Package freetime derives idle gaps between the activities of a built day
// and suggests what to do with them.
package freetime

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/plan"
)

// DefaultMinMinutes is the shortest gap reported as free time.
const DefaultMinMinutes = 15

// Suggestion classifies a free slot by its length.
type Suggestion string

const (
	ShortBreak       Suggestion = "short_break"
	MediumBreak      Suggestion = "medium_break"
	FreeTime         Suggestion = "free_time"
	LongInterval     Suggestion = "long_interval"
	ExtendedFreeTime Suggestion = "extended_free_time"
)

// Suggest buckets a duration in minutes.
func Suggest(minutes int) Suggestion {
	switch {
	case minutes < 20:
		return ShortBreak
	case minutes < 45:
		return MediumBreak
	case minutes < 90:
		return FreeTime
	case minutes < 180:
		return LongInterval
	default:
		return ExtendedFreeTime
	}
}

// Label returns the display label of the suggestion.
func (s Suggestion) Label() string {
	switch s {
	case ShortBreak:
		return "Pausa curta"
	case MediumBreak:
		return "Pausa média"
	case FreeTime:
		return "Tempo livre"
	case LongInterval:
		return "Intervalo longo"
	case ExtendedFreeTime:
		return "Tempo livre estendido"
	default:
		return string(s)
	}
}

// Hint returns a suggested activity for the slot.
func (s Suggestion) Hint() string {
	switch s {
	case ShortBreak:
		return "alongar-se e beber água"
	case MediumBreak:
		return "um lanche ou uma caminhada rápida"
	case FreeTime:
		return "ler ou adiantar uma tarefa pequena"
	case LongInterval:
		return "avançar em um projeto ou hobby"
	case ExtendedFreeTime:
		return "planejar algo novo ou descansar de verdade"
	default:
		return ""
	}
}

// FreeSlot is an idle gap between two activities.
type FreeSlot struct {
	StartTime       string // "HH:MM", end of the previous activity
	EndTime         string // "HH:MM", start of the next activity
	DurationMinutes int
	Duration        string // e.g. "1h 30min"
	Suggestion      Suggestion
}

// String renders the slot for display.
func (f FreeSlot) String() string {
	return fmt.Sprintf("%s-%s %s: %s", f.StartTime, f.EndTime, f.Duration, f.Suggestion.Label())
}

// Calculator computes free slots.
type Calculator struct {
	minMinutes int
}

// New creates a Calculator reporting gaps of at least minMinutes.
// A non-positive value selects DefaultMinMinutes.
func New(minMinutes int) *Calculator {
	if minMinutes <= 0 {
		minMinutes = DefaultMinMinutes
	}
	return &Calculator{minMinutes: minMinutes}
}

// Compute returns the ordered idle gaps between adjacent activities.
// Sleep segments and the end-of-day hydration marker are not activities
// in time and are left out.
func (c *Calculator) Compute(activities []plan.Activity) ([]FreeSlot, error) {
	type span struct {
		start, end int
		startStr   string
		endStr     string
	}

	spans := make([]span, 0, len(activities))
	for _, a := range activities {
		if a.IsSleep() || a.Type == plan.TypeHydration {
			continue
		}
		s, e, err := clock.Span(a.StartTime, a.EndTime)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", a.ID, err)
		}
		spans = append(spans, span{start: s, end: e, startStr: a.StartTime, endStr: a.EndTime})
	}

	slices.SortStableFunc(spans, func(a, b span) int {
		return cmp.Compare(a.start, b.start)
	})

	var slots []FreeSlot
	for i := 0; i+1 < len(spans); i++ {
		cur, next := spans[i], spans[i+1]
		gap := next.start - cur.end
		if gap < c.minMinutes {
			continue
		}
		slots = append(slots, FreeSlot{
			StartTime:       cur.endStr,
			EndTime:         next.startStr,
			DurationMinutes: gap,
			Duration:        clock.FormatDuration(gap),
			Suggestion:      Suggest(gap),
		})
	}
	return slots, nil
}

// TotalMinutes sums the duration of the slots.
func TotalMinutes(slots []FreeSlot) int {
	total := 0
	for _, s := range slots {
		total += s.DurationMinutes
	}
	return total
}
