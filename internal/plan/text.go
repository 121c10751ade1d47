package plan

import (
	"fmt"
	"strings"
)

// DisplayInterval returns the effective "HH:MM-HH:MM", or a single "HH:MM"
// for point activities.
func (a Activity) DisplayInterval() string {
	start, end := a.Effective()
	if a.Type.IsPoint() {
		return start
	}
	return start + "-" + end
}

// WaterProgress returns "progress/goalml" for hydration activities.
func (a Activity) WaterProgress() string {
	progress := 0
	if a.Tracking != nil {
		progress = a.Tracking.Progress
	}
	return fmt.Sprintf("%d/%dml", progress, a.WaterGoal)
}

// PlainText renders the record without styling, one activity per line.
func (r *DayRecord) PlainText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s\n", r.DayName, r.FormattedDate)
	for _, a := range r.Activities {
		fmt.Fprintf(&b, "%s %s: %s", a.DisplayInterval(), a.Type.Label(), a.Name)
		if a.Type == TypeHydration {
			fmt.Fprintf(&b, " (%s)", a.WaterProgress())
		}
		if a.IsCompleted() {
			b.WriteString(" ✓")
		}
		b.WriteString("\n")
	}
	return b.String()
}
