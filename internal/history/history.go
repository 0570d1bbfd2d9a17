// Package history records menu head invocations for later review.
package history

import (
	"context"
	"time"
)

// Invocation is one dispatched head: which key ran which command under
// which context.
type Invocation struct {
	ID        int64
	Context   string
	Key       string
	Command   string
	InvokedAt time.Time
}

// Repository defines the storage interface for invocations.
type Repository interface {
	// Record stores an invocation and fills in its ID.
	Record(ctx context.Context, inv *Invocation) error

	// ListRecent returns the most recent invocations, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Invocation, error)

	// Close releases any resources held by the repository.
	Close() error
}
