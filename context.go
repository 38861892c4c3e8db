package convoctx

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/convoctx/convoctx/hooks"
	"github.com/convoctx/convoctx/summarize"
	"github.com/convoctx/convoctx/types"
)

// Context maintains an ordered conversation log split into two capacity-bounded
// segments: a recent segment that always retains verbatim content, and an old
// segment that collects overflow and is collapsed into a single summary message
// once it exceeds capacity.
//
// The exposed ordering is always old segment followed by recent segment, so
// chronological order is preserved across the split.
//
// A Context serializes its operations internally: concurrent callers are safe,
// at the cost of serializing behind the summarizer call when one is in flight.
type Context struct {
	id     string
	config Config

	mu     sync.Mutex
	recent []types.Message
	old    []types.Message

	degradations int
}

// New creates a Context with the given segment capacities.
// It returns ErrInvalidConfig if either capacity is not positive.
//
// Initial messages supplied via WithInitialMessages are distributed into the
// two segments by the same rule used at runtime. Construction never calls the
// summarizer: if the seeded old segment would overflow and a summarizer is
// configured, a placeholder summary stands in for the excess; without a
// summarizer the oldest excess is dropped.
func New(recentCapacity, oldCapacity int, opts ...Option) (*Context, error) {
	config := Config{
		RecentCapacity: recentCapacity,
		OldCapacity:    oldCapacity,
	}
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Context{
		id:     uuid.NewString(),
		config: config,
	}
	c.seed(config.InitialMessages)
	return c, nil
}

// ID returns the unique identifier of this context instance, used for log
// correlation and as a default snapshot key.
func (c *Context) ID() string {
	return c.id
}

// seed distributes initial messages between the two segments.
func (c *Context) seed(initial []types.Message) {
	if len(initial) == 0 {
		return
	}

	if len(initial) <= c.config.RecentCapacity {
		c.recent = append(c.recent, initial...)
		return
	}

	split := len(initial) - c.config.RecentCapacity
	c.recent = append(c.recent, initial[split:]...)

	older := initial[:split]
	switch {
	case len(older) <= c.config.OldCapacity:
		c.old = append(c.old, older...)
	case c.config.Summarizer != nil:
		// Placeholder only; no live summarization during construction.
		c.old = []types.Message{{
			Role:      types.RoleSystem,
			Content:   fmt.Sprintf("[Summary of %d previous messages]", len(older)),
			IsSummary: true,
		}}
		c.config.Logger.Info("elided initial messages with placeholder summary",
			"context_id", c.id, "elided", len(older))
	default:
		dropped := len(older) - c.config.OldCapacity
		c.old = append(c.old, older[dropped:]...)
		c.config.Logger.Warn("dropped excess initial messages",
			"context_id", c.id, "dropped", dropped)
	}
}

// AddMessage appends one message to the context.
//
// When the recent segment exceeds its capacity, the oldest entries are evicted
// into the old segment. When the old segment then exceeds its capacity, it is
// collapsed into a single summary message via the configured summarizer, or
// truncated from the front when no summarizer is configured.
//
// AddMessage never fails: a summarizer error (including cancellation of ctx
// during the summarizer call) degrades the old segment in place and is
// reported only through hooks and logging. Both capacity invariants hold when
// the call returns.
func (c *Context) AddMessage(ctx context.Context, msg types.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recent = append(c.recent, msg)
	if len(c.recent) <= c.config.RecentCapacity {
		return
	}

	overflow := len(c.recent) - c.config.RecentCapacity
	evicted := make([]types.Message, overflow)
	copy(evicted, c.recent[:overflow])
	c.recent = append(c.recent[:0:0], c.recent[overflow:]...)

	c.old = append(c.old, evicted...)
	c.config.Logger.Debug("evicted messages from recent segment",
		"context_id", c.id, "evicted", len(evicted), "old_size", len(c.old))
	c.triggerHooks(func(r *hooks.Registry) error {
		return r.TriggerEvict(ctx, evicted)
	})

	if len(c.old) <= c.config.OldCapacity {
		return
	}

	if c.config.Summarizer == nil {
		drop := len(c.old) - c.config.OldCapacity
		c.old = append(c.old[:0:0], c.old[drop:]...)
		c.config.Logger.Info("truncated old segment, no summarizer configured",
			"context_id", c.id, "dropped", drop)
		c.triggerHooks(func(r *hooks.Registry) error {
			return r.TriggerDegrade(ctx, hooks.DegradeEvent{MessagesDropped: drop})
		})
		return
	}

	c.summarizeOld(ctx)
}

// summarizeOld collapses the whole old segment into one summary message.
// On failure it falls back to degradeOld; it never returns an error.
func (c *Context) summarizeOld(ctx context.Context) {
	start := time.Now()
	replaced := len(c.old)

	c.triggerHooks(func(r *hooks.Registry) error {
		return r.TriggerBeforeSummarize(ctx, c.snapshotSegment(c.old))
	})

	request := summarize.BuildRequest(c.config.SummarizePrompt, c.old)
	text, err := c.config.Summarizer.Summarize(ctx, request)
	if err != nil {
		c.config.Logger.Warn("summarization failed, degrading old segment",
			"context_id", c.id, "error", err)
		c.degradeOld(ctx, err)
		return
	}

	c.old = []types.Message{{
		Role:      types.RoleSystem,
		Content:   fmt.Sprintf("[Summary of previous conversation: %s]", text),
		IsSummary: true,
	}}

	duration := time.Since(start)
	c.config.Logger.Info("summarized old segment",
		"context_id", c.id, "replaced", replaced, "duration_ms", duration.Milliseconds())
	c.triggerHooks(func(r *hooks.Registry) error {
		return r.TriggerAfterSummarize(ctx, hooks.SummaryEvent{
			Summary:          text,
			MessagesReplaced: replaced,
			Duration:         duration,
		})
	})
}

// degradeOld truncates the old segment well below its capacity so the very
// next append does not re-trigger summarization, then prepends a marker
// recording the loss. The marker counts toward the old segment's size.
func (c *Context) degradeOld(ctx context.Context, cause error) {
	keep := c.config.OldCapacity / 2
	if keep > len(c.old) {
		keep = len(c.old)
	}
	dropped := len(c.old) - keep
	c.old = append(c.old[:0:0], c.old[len(c.old)-keep:]...)

	marker := types.Message{
		Role:      types.RoleSystem,
		Content:   fmt.Sprintf("[Failed to summarize %d previous messages: %v]", dropped, cause),
		IsSummary: true,
	}
	c.old = append([]types.Message{marker}, c.old...)

	c.degradations++
	c.triggerHooks(func(r *hooks.Registry) error {
		return r.TriggerDegrade(ctx, hooks.DegradeEvent{MessagesDropped: dropped, Cause: cause})
	})
}

// Messages returns the full ordered message sequence: every message in the old
// segment followed by every message in the recent segment. Pure read.
func (c *Context) Messages() []types.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]types.Message, 0, len(c.old)+len(c.recent))
	out = append(out, c.old...)
	out = append(out, c.recent...)
	return out
}

// Clear empties both segments. Capacities, summarizer, and hooks persist.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent = nil
	c.old = nil
}

// snapshotSegment copies a segment so hooks and snapshots never alias the
// live backing arrays.
func (c *Context) snapshotSegment(segment []types.Message) []types.Message {
	out := make([]types.Message, len(segment))
	copy(out, segment)
	return out
}

// triggerHooks runs fn against the registry if one is configured. Hook errors
// are logged and swallowed: observers must not break the conversation loop.
func (c *Context) triggerHooks(fn func(*hooks.Registry) error) {
	if c.config.Hooks == nil {
		return
	}
	if err := fn(c.config.Hooks); err != nil {
		c.config.Logger.Warn("hook returned error", "context_id", c.id, "error", err)
	}
}
