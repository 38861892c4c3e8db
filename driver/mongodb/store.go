// Package mongodb provides a MongoDB snapshot store.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/convoctx/convoctx"
	"github.com/convoctx/convoctx/driver"
	"github.com/convoctx/convoctx/types"
)

// DefaultCollection is the collection name used when none is supplied.
const DefaultCollection = "convoctx_snapshots"

type snapshotDocument struct {
	ID             string          `bson:"_id"`
	OldMessages    []types.Message `bson:"old_messages"`
	RecentMessages []types.Message `bson:"recent_messages"`
	UpdatedAt      time.Time       `bson:"updated_at"`
}

// Store implements driver.Store using MongoDB.
type Store struct {
	collection *mongo.Collection
}

// New creates a MongoDB snapshot store.
// collectionName defaults to DefaultCollection if empty.
func New(db *mongo.Database, collectionName string) *Store {
	if collectionName == "" {
		collectionName = DefaultCollection
	}
	return &Store{collection: db.Collection(collectionName)}
}

// SaveSnapshot upserts the snapshot under id.
func (s *Store) SaveSnapshot(ctx context.Context, id string, snapshot convoctx.Snapshot) error {
	if id == "" {
		return fmt.Errorf("snapshot id is required")
	}

	doc := snapshotDocument{
		ID:             id,
		OldMessages:    snapshot.OldMessages,
		RecentMessages: snapshot.RecentMessages,
		UpdatedAt:      time.Now().UTC(),
	}

	filter := bson.M{"_id": id}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	if _, err := s.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", id, err)
	}
	return nil
}

// LoadSnapshot retrieves the snapshot stored under id.
func (s *Store) LoadSnapshot(ctx context.Context, id string) (convoctx.Snapshot, error) {
	var doc snapshotDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return convoctx.Snapshot{}, fmt.Errorf("%w: %q", driver.ErrSnapshotNotFound, id)
	}
	if err != nil {
		return convoctx.Snapshot{}, fmt.Errorf("failed to load snapshot %q: %w", id, err)
	}

	return convoctx.Snapshot{
		OldMessages:    doc.OldMessages,
		RecentMessages: doc.RecentMessages,
	}, nil
}

// DeleteSnapshot removes the snapshot stored under id.
func (s *Store) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %q", driver.ErrSnapshotNotFound, id)
	}
	return nil
}

// ListSnapshots returns the IDs of all stored snapshots.
func (s *Store) ListSnapshots(ctx context.Context) ([]string, error) {
	raw, err := s.collection.Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

var _ driver.Store = (*Store)(nil)
