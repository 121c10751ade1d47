package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS days (
			date           TEXT PRIMARY KEY,
			day_name       TEXT NOT NULL DEFAULT '',
			formatted_date TEXT NOT NULL DEFAULT '',
			plan_data      TEXT NOT NULL,
			activities     TEXT NOT NULL,
			created_at     TEXT NOT NULL,
			last_saved     TEXT NOT NULL,
			is_planned     BOOLEAN NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS day_revisions (
			id         TEXT PRIMARY KEY,
			date       TEXT NOT NULL,
			plan_data  TEXT NOT NULL,
			activities TEXT NOT NULL,
			saved_at   TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_day_revisions_date ON day_revisions(date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
