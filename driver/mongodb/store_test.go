package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/convoctx/convoctx"
	"github.com/convoctx/convoctx/driver"
	"github.com/convoctx/convoctx/internal/testutil"
	"github.com/convoctx/convoctx/types"
)

func TestIntegration_Store_SnapshotLifecycle(t *testing.T) {
	db := testutil.NewTestMongo(t, "convoctx_test")
	if db == nil {
		return
	}

	ctx := context.Background()
	store := New(db, "")
	if err := db.Collection(DefaultCollection).Drop(ctx); err != nil {
		t.Fatalf("Failed to drop collection: %v", err)
	}

	snapshot := convoctx.Snapshot{
		OldMessages: []types.Message{
			types.User("old question", "alice"),
			types.Assistant("old answer", "agent"),
		},
		RecentMessages: []types.Message{
			types.User("new question", "alice"),
		},
	}

	id := driver.NewSnapshotID()
	if err := store.SaveSnapshot(ctx, id, snapshot); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, err := store.LoadSnapshot(ctx, id)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(loaded.OldMessages) != 2 || len(loaded.RecentMessages) != 1 {
		t.Fatalf("unexpected snapshot shape: %d old, %d recent",
			len(loaded.OldMessages), len(loaded.RecentMessages))
	}
	if loaded.OldMessages[0] != snapshot.OldMessages[0] {
		t.Errorf("old message mismatch: %+v", loaded.OldMessages[0])
	}

	// Upsert semantics under the same ID
	snapshot.RecentMessages = nil
	if err := store.SaveSnapshot(ctx, id, snapshot); err != nil {
		t.Fatalf("SaveSnapshot overwrite failed: %v", err)
	}
	loaded, err = store.LoadSnapshot(ctx, id)
	if err != nil {
		t.Fatalf("LoadSnapshot after overwrite failed: %v", err)
	}
	if len(loaded.RecentMessages) != 0 {
		t.Errorf("expected empty recent segment after overwrite, got %d", len(loaded.RecentMessages))
	}

	ids, err := store.ListSnapshots(ctx)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != id {
		t.Errorf("expected [%s], got %v", id, ids)
	}

	if err := store.DeleteSnapshot(ctx, id); err != nil {
		t.Fatalf("DeleteSnapshot failed: %v", err)
	}
	if _, err := store.LoadSnapshot(ctx, id); !errors.Is(err, driver.ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound after delete, got %v", err)
	}
	if err := store.DeleteSnapshot(ctx, id); !errors.Is(err, driver.ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound on double delete, got %v", err)
	}
}
