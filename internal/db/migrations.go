package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS invocations (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			context    TEXT NOT NULL,
			key        TEXT NOT NULL,
			command    TEXT NOT NULL,
			invoked_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_invocations_invoked_at ON invocations(invoked_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating invocations table: %w", err)
	}

	return nil
}
