// Package tracking carries per-activity completion and progress state from a
// previous build of a day into a fresh one.
package tracking

import (
	"github.com/javiermolinar/rotina/internal/plan"
)

type identity struct {
	typ  plan.ActivityType
	name string
}

// Preserve copies tracking state and schedule overrides from oldActivities
// onto the matching entries of newActivities and returns newActivities.
//
// A new activity matches the old activity with the same id, provided it still
// has the same type and name; otherwise it matches the first unclaimed old
// activity with the same type and name. Each old activity is claimed at most
// once. Start and end times always come from the fresh build.
func Preserve(newActivities, oldActivities []plan.Activity) []plan.Activity {
	if len(oldActivities) == 0 {
		return newActivities
	}

	byID := make(map[string]int, len(oldActivities))
	byIdentity := make(map[identity][]int, len(oldActivities))
	for i, old := range oldActivities {
		if !hasState(old) {
			continue
		}
		byID[old.ID] = i
		key := identity{old.Type, old.Name}
		byIdentity[key] = append(byIdentity[key], i)
	}

	claimed := make([]bool, len(oldActivities))
	matched := make([]int, len(newActivities))

	// Id matches first, so a positional match is never stolen by a name
	// fallback from an earlier activity.
	for i, a := range newActivities {
		matched[i] = -1
		if j, ok := byID[a.ID]; ok && sameIdentity(oldActivities[j], a) {
			matched[i] = j
			claimed[j] = true
		}
	}
	for i, a := range newActivities {
		if matched[i] >= 0 {
			continue
		}
		for _, j := range byIdentity[identity{a.Type, a.Name}] {
			if !claimed[j] {
				matched[i] = j
				claimed[j] = true
				break
			}
		}
	}

	for i := range newActivities {
		if matched[i] < 0 {
			continue
		}
		old := oldActivities[matched[i]]
		newActivities[i].Tracking = old.Tracking.Clone()
		if old.Override != nil {
			o := *old.Override
			newActivities[i].Override = &o
		}
	}
	return newActivities
}

func hasState(a plan.Activity) bool {
	return a.Tracking != nil || a.Override != nil
}

func sameIdentity(a, b plan.Activity) bool {
	return a.Type == b.Type && a.Name == b.Name
}
