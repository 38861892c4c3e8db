// Package databasesql provides a PostgreSQL snapshot store over database/sql,
// for applications standardized on *sql.DB (e.g. with github.com/lib/pq).
package databasesql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/convoctx/convoctx"
	"github.com/convoctx/convoctx/driver"
)

// Schema is the DDL for the snapshot table. Applied by EnsureSchema; exposed
// so callers running their own migrations can embed it.
const Schema = `
CREATE TABLE IF NOT EXISTS convoctx_snapshots (
	id TEXT PRIMARY KEY,
	old_messages JSONB NOT NULL,
	recent_messages JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Store implements driver.Store using database/sql.
type Store struct {
	db *sql.DB
}

// New creates a snapshot store over the given database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the snapshot table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}
	return nil
}

// SaveSnapshot upserts the snapshot under id.
func (s *Store) SaveSnapshot(ctx context.Context, id string, snapshot convoctx.Snapshot) error {
	if id == "" {
		return fmt.Errorf("snapshot id is required")
	}

	oldJSON, err := json.Marshal(snapshot.OldMessages)
	if err != nil {
		return fmt.Errorf("failed to marshal old messages: %w", err)
	}
	recentJSON, err := json.Marshal(snapshot.RecentMessages)
	if err != nil {
		return fmt.Errorf("failed to marshal recent messages: %w", err)
	}

	query := `
		INSERT INTO convoctx_snapshots (id, old_messages, recent_messages, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			old_messages = EXCLUDED.old_messages,
			recent_messages = EXCLUDED.recent_messages,
			updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, id, oldJSON, recentJSON); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", id, err)
	}
	return nil
}

// LoadSnapshot retrieves the snapshot stored under id.
func (s *Store) LoadSnapshot(ctx context.Context, id string) (convoctx.Snapshot, error) {
	query := `SELECT old_messages, recent_messages FROM convoctx_snapshots WHERE id = $1`

	var oldJSON, recentJSON []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(&oldJSON, &recentJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return convoctx.Snapshot{}, fmt.Errorf("%w: %q", driver.ErrSnapshotNotFound, id)
	}
	if err != nil {
		return convoctx.Snapshot{}, fmt.Errorf("failed to load snapshot %q: %w", id, err)
	}

	var snapshot convoctx.Snapshot
	if err := json.Unmarshal(oldJSON, &snapshot.OldMessages); err != nil {
		return convoctx.Snapshot{}, fmt.Errorf("failed to unmarshal old messages: %w", err)
	}
	if err := json.Unmarshal(recentJSON, &snapshot.RecentMessages); err != nil {
		return convoctx.Snapshot{}, fmt.Errorf("failed to unmarshal recent messages: %w", err)
	}
	return snapshot, nil
}

// DeleteSnapshot removes the snapshot stored under id.
func (s *Store) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM convoctx_snapshots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", driver.ErrSnapshotNotFound, id)
	}
	return nil
}

// ListSnapshots returns the IDs of all stored snapshots, oldest first.
func (s *Store) ListSnapshots(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM convoctx_snapshots ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return ids, nil
}

var _ driver.Store = (*Store)(nil)
