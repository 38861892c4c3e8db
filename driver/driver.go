// Package driver defines the persistence contract for context snapshots.
//
// A Store persists the opaque Snapshot produced by Context.State under a
// caller-chosen ID and hands it back for Context.Restore. Stores never touch
// a live Context: loading a snapshot is free of summarization or any other
// side effect, by construction.
//
// Implementations are provided for PostgreSQL via pgx (driver/pgxv5),
// database/sql (driver/databasesql), and MongoDB (driver/mongodb).
package driver

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/convoctx/convoctx"
)

// ErrSnapshotNotFound is returned when loading or deleting a snapshot that
// does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Store persists context snapshots keyed by ID.
type Store interface {
	// SaveSnapshot persists the snapshot under id, replacing any previous
	// snapshot stored under the same id.
	SaveSnapshot(ctx context.Context, id string, snapshot convoctx.Snapshot) error

	// LoadSnapshot retrieves the snapshot stored under id.
	// Returns ErrSnapshotNotFound if no such snapshot exists.
	LoadSnapshot(ctx context.Context, id string) (convoctx.Snapshot, error)

	// DeleteSnapshot removes the snapshot stored under id.
	// Returns ErrSnapshotNotFound if no such snapshot exists.
	DeleteSnapshot(ctx context.Context, id string) error

	// ListSnapshots returns the IDs of all stored snapshots.
	ListSnapshots(ctx context.Context) ([]string, error)
}

// NewSnapshotID generates a unique snapshot ID for callers that do not key
// snapshots by their own session identifiers.
func NewSnapshotID() string {
	return uuid.NewString()
}
