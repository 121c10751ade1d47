// Package plan defines the core domain types for rotina: the raw per-day
// category configuration (PlanData), the built timeline (Activity) and the
// persisted day record.
package plan

import (
	"time"
)

// ActivityType is the category of a timeline entry.
type ActivityType string

const (
	TypeSleep     ActivityType = "sleep"
	TypeWork      ActivityType = "work"
	TypeStudy     ActivityType = "study"
	TypeCleaning  ActivityType = "cleaning"
	TypeHobby     ActivityType = "hobby"
	TypeProject   ActivityType = "project"
	TypeMeal      ActivityType = "meal"
	TypeExercise  ActivityType = "exercise"
	TypeHydration ActivityType = "hydration"
)

// Valid returns true if the type is a known activity type.
func (t ActivityType) Valid() bool {
	switch t {
	case TypeSleep, TypeWork, TypeStudy, TypeCleaning, TypeHobby,
		TypeProject, TypeMeal, TypeExercise, TypeHydration:
		return true
	default:
		return false
	}
}

var typeLabels = map[ActivityType]string{
	TypeSleep:     "Sono",
	TypeWork:      "Trabalho",
	TypeStudy:     "Estudo",
	TypeCleaning:  "Limpeza",
	TypeHobby:     "Hobby",
	TypeProject:   "Projeto",
	TypeMeal:      "Refeição",
	TypeExercise:  "Exercício",
	TypeHydration: "Hidratação",
}

// Label returns the display label of the type.
func (t ActivityType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// IsPoint reports whether activities of this type are zero-duration points.
func (t ActivityType) IsPoint() bool {
	return t == TypeMeal || t == TypeHydration
}

// TimeRange is a start/end pair in "HH:MM" format.
type TimeRange struct {
	Start string `json:"start" toml:"start" validate:"required"`
	End   string `json:"end" toml:"end" validate:"required"`
}

// Item is one entry of a list category (a job, a course, a hobby, a project).
type Item struct {
	Name  string      `json:"name" toml:"name" validate:"required"`
	Times []TimeRange `json:"times" toml:"times" validate:"required,min=1,dive"`
}

// Block is a single optional time block (cleaning, exercise).
type Block struct {
	Start string `json:"start" toml:"start" validate:"required"`
	End   string `json:"end" toml:"end" validate:"required"`
	Notes string `json:"notes,omitempty" toml:"notes,omitempty"`
	Type  string `json:"type,omitempty" toml:"type,omitempty"`
}

// PlanData is one day's raw category configuration, the builder's input.
// An empty list or nil pointer means the category is not configured.
type PlanData struct {
	Sleep     string   `json:"sleep" toml:"sleep" validate:"required"`
	Wake      string   `json:"wake" toml:"wake" validate:"required"`
	Jobs      []Item   `json:"jobs,omitempty" toml:"jobs,omitempty" validate:"dive"`
	Studies   []Item   `json:"studies,omitempty" toml:"studies,omitempty" validate:"dive"`
	Hobbies   []Item   `json:"hobbies,omitempty" toml:"hobbies,omitempty" validate:"dive"`
	Projects  []Item   `json:"projects,omitempty" toml:"projects,omitempty" validate:"dive"`
	Cleaning  *Block   `json:"cleaning,omitempty" toml:"cleaning,omitempty"`
	Exercise  *Block   `json:"exercise,omitempty" toml:"exercise,omitempty"`
	Meals     []string `json:"meals,omitempty" toml:"meals,omitempty" validate:"dive,required"`
	Hydration *int     `json:"hydration,omitempty" toml:"hydration,omitempty" validate:"omitempty,min=0"`
}

// TrackingState is user-entered completion and progress metadata.
type TrackingState struct {
	Completed   bool            `json:"completed"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	Progress    int             `json:"progress,omitempty"` // e.g. ml of water consumed
	Log         []ProgressEntry `json:"log,omitempty"`
}

// ProgressEntry records one incremental progress update.
type ProgressEntry struct {
	At     time.Time `json:"at"`
	Amount int       `json:"amount"`
}

// Clone returns a deep copy of the tracking state.
func (s *TrackingState) Clone() *TrackingState {
	if s == nil {
		return nil
	}
	c := *s
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		c.CompletedAt = &at
	}
	if s.Log != nil {
		c.Log = make([]ProgressEntry, len(s.Log))
		copy(c.Log, s.Log)
	}
	return &c
}

// ScheduleOverride is a manual start/end adjustment for a single day.
type ScheduleOverride struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason,omitempty"`
}

// Activity is one entry of the built timeline.
type Activity struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Name      string       `json:"name"`
	StartTime string       `json:"startTime"` // "HH:MM"
	EndTime   string       `json:"endTime"`   // "HH:MM", equal to StartTime for points
	Notes     string       `json:"notes,omitempty"`
	WaterGoal int          `json:"waterGoal,omitempty"` // ml, hydration only

	// Synthetic marks read-only stand-ins such as the previous night's sleep.
	Synthetic bool `json:"-"`

	Tracking *TrackingState    `json:"trackingState,omitempty"`
	Override *ScheduleOverride `json:"scheduleOverride,omitempty"`
}

// IsSleep returns true if the activity is a sleep segment.
func (a Activity) IsSleep() bool {
	return a.Type == TypeSleep
}

// IsPoint returns true for zero-duration activities (meals, hydration).
func (a Activity) IsPoint() bool {
	return a.StartTime == a.EndTime
}

// IsCompleted returns true if tracking marks the activity as done.
func (a Activity) IsCompleted() bool {
	return a.Tracking != nil && a.Tracking.Completed
}

// Effective returns the start and end to display for today, honouring any
// schedule override.
func (a Activity) Effective() (start, end string) {
	if a.Override != nil && a.Override.Start != "" && a.Override.End != "" {
		return a.Override.Start, a.Override.End
	}
	return a.StartTime, a.EndTime
}

// Interval returns "HH:MM-HH:MM".
func (a Activity) Interval() string {
	return a.StartTime + "-" + a.EndTime
}

// FindActivity returns the index of the activity with the given id, or -1.
func FindActivity(activities []Activity, id string) int {
	for i := range activities {
		if activities[i].ID == id {
			return i
		}
	}
	return -1
}
