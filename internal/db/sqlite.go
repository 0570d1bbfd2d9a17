// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/chrisbarrett/hydramenu/internal/history"
)

// SQLite implements history.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

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

// Record stores an invocation and fills in its ID.
func (s *SQLite) Record(ctx context.Context, inv *history.Invocation) error {
	if inv.InvokedAt.IsZero() {
		inv.InvokedAt = time.Now()
	}

	query := `
		INSERT INTO invocations (context, key, command, invoked_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		inv.Context,
		inv.Key,
		inv.Command,
		inv.InvokedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting invocation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	inv.ID = id

	return nil
}

// ListRecent returns the most recent invocations, newest first.
func (s *SQLite) ListRecent(ctx context.Context, limit int) ([]*history.Invocation, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, context, key, command, invoked_at
		FROM invocations
		ORDER BY invoked_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying invocations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*history.Invocation
	for rows.Next() {
		var (
			inv       history.Invocation
			invokedAt string
		)
		if err := rows.Scan(&inv.ID, &inv.Context, &inv.Key, &inv.Command, &invokedAt); err != nil {
			return nil, fmt.Errorf("scanning invocation: %w", err)
		}
		inv.InvokedAt, err = time.Parse(time.RFC3339, invokedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing invoked at: %w", err)
		}
		out = append(out, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invocations: %w", err)
	}

	return out, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
