package plan

import (
	"context"
	"time"
)

// DayRecord is the persisted state of one date: the raw PlanData, the built
// timeline and collaborator metadata.
type DayRecord struct {
	Date          time.Time
	DayName       string // e.g. "sexta-feira"
	FormattedDate string // e.g. "16/10/2026"
	PlanData      PlanData
	Activities    []Activity
	CreatedAt     time.Time
	LastSaved     time.Time
	IsPlanned     bool
}

// Revision is an immutable snapshot appended on each successful save.
type Revision struct {
	ID         string
	Date       time.Time
	PlanData   PlanData
	Activities []Activity
	SavedAt    time.Time
}

// Repository defines the date-keyed storage interface for day records.
type Repository interface {
	// GetDay retrieves the record for a date. Returns nil, nil if none exists.
	GetDay(ctx context.Context, date time.Time) (*DayRecord, error)

	// SaveDay inserts or replaces the record for its date and appends a revision.
	SaveDay(ctx context.Context, rec *DayRecord) error

	// UpdateActivities replaces the activities of an existing record in place,
	// without appending a revision. Used for tracking updates.
	UpdateActivities(ctx context.Context, date time.Time, activities []Activity) error

	// ListDays returns all records within the date range (inclusive), oldest first.
	ListDays(ctx context.Context, start, end time.Time) ([]*DayRecord, error)

	// ListRevisions returns the revisions of a date, newest first.
	ListRevisions(ctx context.Context, date time.Time) ([]*Revision, error)

	// DeleteDay removes the record of a date. Revisions are kept.
	DeleteDay(ctx context.Context, date time.Time) error

	// Close releases any resources held by the repository.
	Close() error
}
