package plan

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/javiermolinar/rotina/internal/clock"
)

// Fixed activity ids.
const (
	IDSleepStart = "sleep-dormir"
	IDSleepEnd   = "sleep-acordar"
	IDCleaning   = "cleaning-0"
	IDExercise   = "exercise-0"
	IDHydration  = "hydration-daily"
)

// Default display names.
const (
	NameSleepStart = "Dormir"
	NameSleepEnd   = "Acordar"
	NameCleaning   = "Limpeza"
	NameExercise   = "Exercício"
	NameMeal       = "Refeição"
	NameHydration  = "Hidratação"
)

// Build expands a PlanData into the day's timeline, sorted by start time.
// hydrationGoal, when positive, overrides the plan's own hydration goal.
//
// Ids are derived from list positions only, so building the same PlanData
// twice yields identical timelines.
func Build(p PlanData, hydrationGoal int) ([]Activity, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var out []Activity

	sleep, err := buildSleep(p.Sleep, p.Wake)
	if err != nil {
		return nil, err
	}
	out = append(out, sleep...)

	lists := []struct {
		field string
		typ   ActivityType
		items []Item
	}{
		{"jobs", TypeWork, p.Jobs},
		{"studies", TypeStudy, p.Studies},
		{"hobbies", TypeHobby, p.Hobbies},
		{"projects", TypeProject, p.Projects},
	}
	for _, l := range lists {
		for i, item := range l.items {
			for j, r := range item.Times {
				field := fmt.Sprintf("%s[%d].times[%d]", l.field, i, j)
				if err := checkRange(field, r.Start, r.End); err != nil {
					return nil, err
				}
				out = append(out, Activity{
					ID:        fmt.Sprintf("%s-%d-%d", l.typ, i, j),
					Type:      l.typ,
					Name:      item.Name,
					StartTime: r.Start,
					EndTime:   r.End,
				})
			}
		}
	}

	if p.Cleaning != nil {
		a, err := buildBlock("cleaning", IDCleaning, TypeCleaning, NameCleaning, p.Cleaning)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if p.Exercise != nil {
		a, err := buildBlock("exercise", IDExercise, TypeExercise, NameExercise, p.Exercise)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	for k, at := range p.Meals {
		if _, err := clock.ToMinutes(at); err != nil {
			return nil, fmt.Errorf("meals[%d]: %w", k, err)
		}
		out = append(out, Activity{
			ID:        fmt.Sprintf("meal-%d", k),
			Type:      TypeMeal,
			Name:      fmt.Sprintf("%s %d", NameMeal, k+1),
			StartTime: at,
			EndTime:   at,
		})
	}

	goal := hydrationGoal
	if goal <= 0 && p.Hydration != nil {
		goal = *p.Hydration
	}
	if goal > 0 {
		// Pinned to the end of the day: tracked across the whole day, not a slot.
		out = append(out, Activity{
			ID:        IDHydration,
			Type:      TypeHydration,
			Name:      NameHydration,
			StartTime: clock.EndOfDay,
			EndTime:   clock.EndOfDay,
			WaterGoal: goal,
		})
	}

	SortActivities(out)
	return out, nil
}

// SortActivities sorts in place by start time. The sort is stable so equal
// start times keep their emission order.
func SortActivities(activities []Activity) {
	slices.SortStableFunc(activities, func(a, b Activity) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})
}

// buildSleep splits a sleep window that crosses midnight into two segments,
// since a day is represented as the closed window [00:00, 23:59].
func buildSleep(sleep, wake string) ([]Activity, error) {
	s, err := clock.ToMinutes(sleep)
	if err != nil {
		return nil, fmt.Errorf("sleep: %w", err)
	}
	w, err := clock.ToMinutes(wake)
	if err != nil {
		return nil, fmt.Errorf("wake: %w", err)
	}

	if w < s {
		return []Activity{
			{ID: IDSleepStart, Type: TypeSleep, Name: NameSleepStart, StartTime: sleep, EndTime: clock.EndOfDay},
			{ID: IDSleepEnd, Type: TypeSleep, Name: NameSleepEnd, StartTime: clock.StartOfDay, EndTime: wake},
		}, nil
	}
	return []Activity{
		{ID: IDSleepStart, Type: TypeSleep, Name: NameSleepStart, StartTime: sleep, EndTime: wake},
	}, nil
}

func buildBlock(field, id string, typ ActivityType, name string, b *Block) (Activity, error) {
	if err := checkRange(field, b.Start, b.End); err != nil {
		return Activity{}, err
	}
	if b.Type != "" {
		name = b.Type
	}
	return Activity{
		ID:        id,
		Type:      typ,
		Name:      name,
		StartTime: b.Start,
		EndTime:   b.End,
		Notes:     b.Notes,
	}, nil
}

func checkRange(field, start, end string) error {
	if _, err := clock.ToMinutes(start); err != nil {
		return fmt.Errorf("%s.start: %w", field, err)
	}
	if _, err := clock.ToMinutes(end); err != nil {
		return fmt.Errorf("%s.end: %w", field, err)
	}
	return nil
}
