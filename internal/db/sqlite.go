// Package db provides SQLite storage for day records.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/plan"
)

// SQLite implements plan.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// GetDay retrieves the record for a date. Returns nil, nil if none exists.
func (s *SQLite) GetDay(ctx context.Context, date time.Time) (*plan.DayRecord, error) {
	query := `
		SELECT date, day_name, formatted_date, plan_data, activities,
		       created_at, last_saved, is_planned
		FROM days
		WHERE date = ?
	`

	rec, err := scanDay(s.db.QueryRowContext(ctx, query, dateutil.Key(date)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying day: %w", err)
	}
	return rec, nil
}

// SaveDay inserts or replaces the record for its date and appends a revision.
// The original CreatedAt of an existing record is kept.
func (s *SQLite) SaveDay(ctx context.Context, rec *plan.DayRecord) error {
	planData, err := json.Marshal(rec.PlanData)
	if err != nil {
		return fmt.Errorf("encoding plan data: %w", err)
	}
	activities, err := json.Marshal(rec.Activities)
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}

	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.LastSaved.IsZero() {
		rec.LastSaved = now
	}
	key := dateutil.Key(rec.Date)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO days (
			date, day_name, formatted_date, plan_data, activities,
			created_at, last_saved, is_planned
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			day_name       = excluded.day_name,
			formatted_date = excluded.formatted_date,
			plan_data      = excluded.plan_data,
			activities     = excluded.activities,
			last_saved     = excluded.last_saved,
			is_planned     = excluded.is_planned
	`
	if _, err := tx.ExecContext(ctx, query,
		key,
		rec.DayName,
		rec.FormattedDate,
		string(planData),
		string(activities),
		rec.CreatedAt.Format(time.RFC3339),
		rec.LastSaved.Format(time.RFC3339),
		rec.IsPlanned,
	); err != nil {
		return fmt.Errorf("saving day: %w", err)
	}

	revQuery := `
		INSERT INTO day_revisions (id, date, plan_data, activities, saved_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, revQuery,
		uuid.NewString(),
		key,
		string(planData),
		string(activities),
		rec.LastSaved.Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("saving revision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// UpdateActivities replaces the activities of an existing record in place.
func (s *SQLite) UpdateActivities(ctx context.Context, date time.Time, activities []plan.Activity) error {
	data, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}

	query := `UPDATE days SET activities = ?, last_saved = ? WHERE date = ?`
	result, err := s.db.ExecContext(ctx, query,
		string(data),
		time.Now().Format(time.RFC3339),
		dateutil.Key(date),
	)
	if err != nil {
		return fmt.Errorf("updating activities: %w", err)
	}

	return requireRow(result, date)
}

// ListDays returns all records within the date range (inclusive), oldest first.
func (s *SQLite) ListDays(ctx context.Context, start, end time.Time) ([]*plan.DayRecord, error) {
	query := `
		SELECT date, day_name, formatted_date, plan_data, activities,
		       created_at, last_saved, is_planned
		FROM days
		WHERE date >= ? AND date <= ?
		ORDER BY date
	`
	return s.queryDays(ctx, query, dateutil.Key(start), dateutil.Key(end))
}

// ListAllDays returns every stored record, oldest first.
func (s *SQLite) ListAllDays(ctx context.Context) ([]*plan.DayRecord, error) {
	query := `
		SELECT date, day_name, formatted_date, plan_data, activities,
		       created_at, last_saved, is_planned
		FROM days
		ORDER BY date
	`
	return s.queryDays(ctx, query)
}

func (s *SQLite) queryDays(ctx context.Context, query string, args ...any) ([]*plan.DayRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying days: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []*plan.DayRecord
	for rows.Next() {
		rec, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning day: %w", err)
		}
		days = append(days, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating days: %w", err)
	}
	return days, nil
}

// ListRevisions returns the revisions of a date, newest first.
func (s *SQLite) ListRevisions(ctx context.Context, date time.Time) ([]*plan.Revision, error) {
	query := `
		SELECT id, date, plan_data, activities, saved_at
		FROM day_revisions
		WHERE date = ?
		ORDER BY saved_at DESC, rowid DESC
	`
	rows, err := s.db.QueryContext(ctx, query, dateutil.Key(date))
	if err != nil {
		return nil, fmt.Errorf("querying revisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var revisions []*plan.Revision
	for rows.Next() {
		var (
			rev        plan.Revision
			dateKey    string
			planData   string
			activities string
			savedAt    string
		)
		if err := rows.Scan(&rev.ID, &dateKey, &planData, &activities, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		if rev.Date, err = parseDate(dateKey); err != nil {
			return nil, fmt.Errorf("parsing revision date: %w", err)
		}
		if err := json.Unmarshal([]byte(planData), &rev.PlanData); err != nil {
			return nil, fmt.Errorf("decoding revision plan data: %w", err)
		}
		if err := json.Unmarshal([]byte(activities), &rev.Activities); err != nil {
			return nil, fmt.Errorf("decoding revision activities: %w", err)
		}
		if rev.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt); err != nil {
			return nil, fmt.Errorf("parsing saved at: %w", err)
		}
		revisions = append(revisions, &rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revisions: %w", err)
	}
	return revisions, nil
}

// DeleteDay removes the record of a date. Revisions are kept.
func (s *SQLite) DeleteDay(ctx context.Context, date time.Time) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM days WHERE date = ?`, dateutil.Key(date))
	if err != nil {
		return fmt.Errorf("deleting day: %w", err)
	}

	return requireRow(result, date)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDay(row scanner) (*plan.DayRecord, error) {
	var (
		rec        plan.DayRecord
		dateKey    string
		planData   string
		activities string
		createdAt  string
		lastSaved  string
	)

	err := row.Scan(
		&dateKey,
		&rec.DayName,
		&rec.FormattedDate,
		&planData,
		&activities,
		&createdAt,
		&lastSaved,
		&rec.IsPlanned,
	)
	if err != nil {
		return nil, err
	}

	if rec.Date, err = parseDate(dateKey); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if err := json.Unmarshal([]byte(planData), &rec.PlanData); err != nil {
		return nil, fmt.Errorf("decoding plan data: %w", err)
	}
	if err := json.Unmarshal([]byte(activities), &rec.Activities); err != nil {
		return nil, fmt.Errorf("decoding activities: %w", err)
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if rec.LastSaved, err = time.Parse(time.RFC3339, lastSaved); err != nil {
		return nil, fmt.Errorf("parsing last saved: %w", err)
	}
	return &rec, nil
}

// parseDate reads a date key as local midnight, so keys round-trip with
// dates derived from time.Now().
func parseDate(s string) (time.Time, error) {
	if len(s) >= 10 {
		if t, err := time.ParseInLocation(dateutil.KeyFormat, s[:10], time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}

// requireRow fails when result touched no row of the day at date.
func requireRow(result sql.Result, date time.Time) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("day %s not found", dateutil.Key(date))
	}
	return nil
}
