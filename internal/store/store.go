// Package store persists a parsed schedule.Schedule so a host can re-query
// or re-serve it without re-parsing the source file. Schedules are
// serialized to JSON and stored as a blob alongside a summary row (project
// name, task count, parse timestamp, DCMA score) for cheap listing.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

// ErrNotFound is returned by Load when no entry matches the given ID.
var ErrNotFound = errors.New("store: entry not found")

// Summary is a saved schedule's metadata, without its payload — enough to
// list what's cached without deserializing every blob.
type Summary struct {
	ID          string
	ProjectName string
	TaskCount   int
	ParsedAt    time.Time
	DCMAScore   float64
}

// Store persists parsed schedules keyed by an opaque, generated ID.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save inserts sched and returns its generated ID.
	Save(ctx context.Context, sched *schedule.Schedule) (id string, err error)

	// Load retrieves a previously saved schedule by ID.
	Load(ctx context.Context, id string) (*schedule.Schedule, error)

	// List returns every saved schedule's summary, most recent first.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes a saved schedule. Deleting a nonexistent ID is not
	// an error.
	Delete(ctx context.Context, id string) error

	Close() error
}
