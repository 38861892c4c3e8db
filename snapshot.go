package convoctx

import (
	"fmt"

	"github.com/convoctx/convoctx/types"
)

// Snapshot is an opaque, serializable capture of both segments, sufficient to
// reconstruct the context exactly. It is the payload persisted by the driver
// stores.
type Snapshot struct {
	OldMessages    []types.Message `json:"old_messages"`
	RecentMessages []types.Message `json:"recent_messages"`
}

// State returns a snapshot of the current segment contents. The snapshot does
// not alias the live context; later mutations do not affect it.
func (c *Context) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		OldMessages:    c.snapshotSegment(c.old),
		RecentMessages: c.snapshotSegment(c.recent),
	}
}

// Restore replaces both segments with the snapshotted sequences, bypassing the
// normal eviction and summarization logic. Restoring never invokes the
// summarizer or any other external service, even if the restored old segment
// exceeds its capacity.
//
// A snapshot carrying a message with an unknown role is rejected with
// ErrInvalidSnapshot and leaves the context unchanged.
func (c *Context) Restore(snapshot Snapshot) error {
	if err := validateSegment("old_messages", snapshot.OldMessages); err != nil {
		return NewContextError("restore", err).WithContext("context_id", c.id)
	}
	if err := validateSegment("recent_messages", snapshot.RecentMessages); err != nil {
		return NewContextError("restore", err).WithContext("context_id", c.id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.old = c.snapshotSegment(snapshot.OldMessages)
	c.recent = c.snapshotSegment(snapshot.RecentMessages)
	return nil
}

func validateSegment(name string, segment []types.Message) error {
	for i, msg := range segment {
		if !msg.Role.Valid() {
			return fmt.Errorf("%w: %s[%d] has unknown role %q", ErrInvalidSnapshot, name, i, msg.Role)
		}
	}
	return nil
}
